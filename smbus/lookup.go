package smbus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// sysClassDir is where i2c-dev publishes one entry per adapter.
const sysClassDir = "/sys/class/i2c-dev"

// Device address bounds for regular chips. Addresses below 0x03 are reserved
// by the protocol, addresses above 0x77 collide with 10-bit addressing.
const (
	AddrMin = 0x03
	AddrMax = 0x77
)

// BusInfo describes one adapter registered with i2c-dev.
type BusInfo struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
	Device string `yaml:"device"`
}

// Buses lists the adapters known to the kernel, ordered by bus number.
func Buses() ([]BusInfo, error) {
	return scanBuses(sysClassDir)
}

func scanBuses(dir string) ([]BusInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("smbus: could not scan %s: %w", dir, err)
	}
	var buses []BusInfo
	for _, e := range entries {
		nr, ok := strings.CutPrefix(e.Name(), "i2c-")
		if !ok {
			continue
		}
		number, err := strconv.Atoi(nr)
		if err != nil {
			continue
		}
		name, err := os.ReadFile(filepath.Join(dir, e.Name(), "name"))
		if err != nil {
			continue
		}
		buses = append(buses, BusInfo{
			Number: number,
			Name:   strings.TrimSpace(string(name)),
			Device: fmt.Sprintf("/dev/i2c-%d", number),
		})
	}
	sort.Slice(buses, func(i, j int) bool { return buses[i].Number < buses[j].Number })
	return buses, nil
}

// Lookup resolves a bus argument. A number is taken as the bus number
// directly; any other string is matched against adapter names from the sysfs
// scan and must be unique.
func Lookup(arg string) (int, error) {
	return lookup(sysClassDir, arg)
}

func lookup(dir, arg string) (int, error) {
	if nr, err := strconv.ParseInt(arg, 0, 32); err == nil {
		if nr < 0 || nr > 0xFFFFF {
			return 0, fmt.Errorf("smbus: bus number out of range: %s", arg)
		}
		return int(nr), nil
	}
	buses, err := scanBuses(dir)
	if err != nil {
		return 0, err
	}
	found := -1
	for _, b := range buses {
		if b.Name != arg {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("smbus: bus name %q is not unique", arg)
		}
		found = b.Number
	}
	if found < 0 {
		return 0, fmt.Errorf("smbus: no bus named %q", arg)
	}
	return found, nil
}

// ParseAddr parses a chip address argument in any strconv base-0 notation and
// enforces the regular device range.
func ParseAddr(arg string) (byte, error) {
	addr, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("smbus: chip address %q is not a number", arg)
	}
	if addr < AddrMin || addr > AddrMax {
		return 0, fmt.Errorf("smbus: chip address 0x%02x out of range (0x%02x-0x%02x)", addr, AddrMin, AddrMax)
	}
	return byte(addr), nil
}
