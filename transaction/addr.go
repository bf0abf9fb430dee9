package transaction

import (
	"fmt"
	"strconv"
)

// RegisterAddr is an optional register ("data") address inside a device.
// The zero value means no address was requested.
type RegisterAddr struct {
	value   int
	present bool
}

// Reg builds a present register address, mostly for wiring and tests.
func Reg(value int) RegisterAddr {
	return RegisterAddr{value: value, present: true}
}

// ParseRegisterAddr accepts any strconv base-0 numeral. Negative or
// non-numeric input is rejected.
func ParseRegisterAddr(arg string) (RegisterAddr, error) {
	v, err := strconv.ParseInt(arg, 0, 32)
	if err != nil || v < 0 {
		return RegisterAddr{}, fmt.Errorf("data address %q invalid", arg)
	}
	return RegisterAddr{value: int(v), present: true}, nil
}

func (a RegisterAddr) Present() bool {
	return a.present
}

func (a RegisterAddr) Value() int {
	return a.value
}

// Width is the number of bytes needed to point a device at the address:
// one shift by 8 per byte of magnitude, capped at 2. Address 0 has width 0,
// so no pointer write happens for register 0x00; scripts rely on that.
func (a RegisterAddr) Width() int {
	if !a.present {
		return 0
	}
	width := 0
	for v := a.value; v != 0; v >>= 8 {
		width++
	}
	if width > 2 {
		width = 2
	}
	return width
}

// Bytes serializes the address most-significant byte first. Addresses wider
// than two bytes keep only the low ones (silent truncation, kept as-is).
func (a RegisterAddr) Bytes() []byte {
	w := a.Width()
	if w == 0 {
		return nil
	}
	buf := make([]byte, w)
	for i := 0; i < w; i++ {
		buf[i] = byte(a.value >> (8 * (w - 1 - i)))
	}
	return buf
}

func (a RegisterAddr) String() string {
	if !a.present {
		return "none"
	}
	return fmt.Sprintf("0x%02x", a.value)
}
