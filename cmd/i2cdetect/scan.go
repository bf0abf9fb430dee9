package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"

	i2ctools "github.com/durexyl/i2c-tools"
	"github.com/durexyl/i2c-tools/cmd/internal/console"
	"github.com/durexyl/i2c-tools/probe"
	"github.com/durexyl/i2c-tools/smbus"
)

type probeMode int

const (
	// probeAuto picks the method per address: receive byte for the
	// 0x30-0x37 and 0x50-0x5f blocks, quick write everywhere else. Quick
	// writes corrupt some EEPROMs; receive byte locks up some write-only
	// chips.
	probeAuto probeMode = iota
	probeQuick
	probeRead
)

// prober is the slice of the bus connection the scanner drives.
type prober interface {
	Bind(addr byte, force bool) error
	ReadByte(ctx context.Context) (byte, error)
	WriteQuick(ctx context.Context) error
}

type scanner struct {
	conn  prober
	funcs i2ctools.Funcs
	mode  probeMode
	first byte
	last  byte
}

// run walks the full 7-bit grid and prints one cell per address: blank when
// the address is out of range or the adapter cannot probe it, "UU" when a
// kernel driver owns it, "--" when nothing answered, the address when a
// device acknowledged.
func (s scanner) run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "     0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f")
	for row := 0; row < 0x80; row += 16 {
		fmt.Fprintf(out, "%02x: ", row)
		for col := 0; col < 16; col++ {
			addr := byte(row + col)
			cmd := s.mode
			if cmd == probeAuto {
				if (addr >= 0x30 && addr <= 0x37) || (addr >= 0x50 && addr <= 0x5f) {
					cmd = probeRead
				} else {
					cmd = probeQuick
				}
			}
			if addr < s.first || addr > s.last ||
				(cmd == probeRead && !s.funcs.Has(i2ctools.FuncSMBusReadByte)) ||
				(cmd == probeQuick && !s.funcs.Has(i2ctools.FuncSMBusQuick)) {
				fmt.Fprint(out, "   ")
				continue
			}
			if err := s.conn.Bind(addr, false); err != nil {
				if errors.Is(err, unix.EBUSY) {
					fmt.Fprint(out, "UU ")
					continue
				}
				return err
			}
			if cmd == probeRead {
				_, err := s.conn.ReadByte(ctx)
				s.printCell(out, addr, err)
			} else {
				s.printCell(out, addr, s.conn.WriteQuick(ctx))
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func (s scanner) printCell(out io.Writer, addr byte, err error) {
	if err != nil {
		fmt.Fprint(out, "-- ")
		return
	}
	fmt.Fprintf(out, "%02x ", addr)
}

// checkDetect rejects probing methods the adapter cannot perform before any
// bus traffic happens.
func checkDetect(funcs i2ctools.Funcs, mode probeMode) error {
	switch mode {
	case probeQuick:
		if !funcs.Has(i2ctools.FuncSMBusQuick) {
			return fmt.Errorf("adapter does not have SMBus quick write capability")
		}
	case probeRead:
		if !funcs.Has(i2ctools.FuncSMBusReadByte) {
			return fmt.Errorf("adapter does not have SMBus receive byte capability")
		}
	default:
		if !funcs.Has(i2ctools.FuncSMBusQuick) && !funcs.Has(i2ctools.FuncSMBusReadByte) {
			return fmt.Errorf("adapter does not support probing commands")
		}
	}
	return nil
}

// parseScanBound parses a FIRST or LAST argument and keeps it inside the
// currently allowed window.
func parseScanBound(arg string, lo, hi byte) (byte, error) {
	v, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("scan range bound %q is not a number", arg)
	}
	if v < int64(lo) || v > int64(hi) {
		return 0, fmt.Errorf("scan range bound 0x%02x out of range (0x%02x-0x%02x)", v, lo, hi)
	}
	return byte(v), nil
}

func scanAction(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 3 {
		return usage(c, "expected 1 to 3 arguments, got %d", c.NArg())
	}
	if c.Bool("quick") && c.Bool("read") {
		return usage(c, "--quick and --read are mutually exclusive")
	}
	mode := probeAuto
	switch {
	case c.Bool("quick"):
		mode = probeQuick
	case c.Bool("read"):
		mode = probeRead
	}
	first, last := byte(smbus.AddrMin), byte(smbus.AddrMax)
	if c.Bool("all") {
		first, last = 0x00, 0x7f
	}
	var err error
	if c.NArg() > 1 {
		if first, err = parseScanBound(c.Args().Get(1), first, last); err != nil {
			return usage(c, "%s", console.Red(err))
		}
	}
	if c.NArg() > 2 {
		if last, err = parseScanBound(c.Args().Get(2), first, last); err != nil {
			return usage(c, "%s", console.Red(err))
		}
	}

	nr, err := probe.Resolve(c.Args().Get(0))
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	conn, err := smbus.Open(nr)
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	defer func() { _ = conn.Close() }()

	if err = checkDetect(conn.Funcs(), mode); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	if !c.Bool("yes") && !confirmScan(conn.Path(), mode, first, last) {
		return nil
	}

	s := scanner{conn: conn, funcs: conn.Funcs(), mode: mode, first: first, last: last}
	if err = s.run(context.Background(), os.Stdout); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	return nil
}

func confirmScan(device string, mode probeMode, first, last byte) bool {
	fmt.Fprintln(os.Stderr, console.Yellow("WARNING! This program can confuse your I2C bus, cause data loss and worse!"))
	switch mode {
	case probeQuick:
		fmt.Fprintf(os.Stderr, "I will probe file %s using quick write commands.\n", device)
	case probeRead:
		fmt.Fprintf(os.Stderr, "I will probe file %s using receive byte commands.\n", device)
	default:
		fmt.Fprintf(os.Stderr, "I will probe file %s.\n", device)
	}
	fmt.Fprintf(os.Stderr, "I will probe address range 0x%02x-0x%02x.\n", first, last)
	ok, err := console.Confirm("Continue?", true)
	if err != nil || !ok {
		fmt.Fprintln(os.Stderr, "Aborting on user request.")
		return false
	}
	return true
}
