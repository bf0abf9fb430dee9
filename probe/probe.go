// Package probe discovers I2C buses beyond what the kernel's i2c-dev class
// exposes directly: bus references registered by the periph host drivers
// (including platform aliases like "I2C1") and USB HID bridge adapters.
package probe

import (
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/durexyl/i2c-tools/smbus"
)

// BusRef describes one bus reference registered with the periph host.
type BusRef struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
	Number  int      `yaml:"number"`
}

func initHost() error {
	state, err := host.Init()
	if err != nil {
		return fmt.Errorf("probe: could not init host: %w", err)
	}
	for _, driver := range state.Loaded {
		slog.Debug("loaded periph driver", "driver", driver.String())
	}
	return nil
}

// Buses lists the bus references the periph host drivers registered.
func Buses() ([]BusRef, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	refs := i2creg.All()
	buses := make([]BusRef, 0, len(refs))
	for _, ref := range refs {
		buses = append(buses, BusRef{Name: ref.Name, Aliases: ref.Aliases, Number: ref.Number})
	}
	return buses, nil
}

// Lookup resolves a symbolic bus name or alias through the periph registry
// and returns its bus number.
func Lookup(name string) (int, error) {
	if err := initHost(); err != nil {
		return 0, err
	}
	return lookupRefs(i2creg.All(), name)
}

func lookupRefs(refs []*i2creg.Ref, name string) (int, error) {
	for _, ref := range refs {
		if !refMatches(ref, name) {
			continue
		}
		if ref.Number < 0 {
			return 0, fmt.Errorf("probe: bus %q has no number", name)
		}
		return ref.Number, nil
	}
	return 0, fmt.Errorf("probe: no registered bus named %q", name)
}

func refMatches(ref *i2creg.Ref, name string) bool {
	if ref.Name == name {
		return true
	}
	for _, alias := range ref.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// Resolve turns a bus argument into a bus number. Numbers and adapter names
// known to i2c-dev resolve through the sysfs scan; anything else is tried
// against the periph registry, which also knows platform aliases.
func Resolve(arg string) (int, error) {
	nr, err := smbus.Lookup(arg)
	if err == nil {
		return nr, nil
	}
	if nr, perr := Lookup(arg); perr == nil {
		return nr, nil
	}
	return 0, err
}
