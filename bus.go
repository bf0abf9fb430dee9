package i2ctools

import (
	"context"
	"fmt"
)

var ErrNotOpen = fmt.Errorf("bus handle is not open")

// RegisterReader groups the structured SMBus read primitives. Each call is one
// complete bus transaction with a fixed byte count.
type RegisterReader interface {
	// ReadByte receives a single byte from the device's current register pointer.
	ReadByte(ctx context.Context) (byte, error)
	// ReadByteData reads one byte from the given register.
	ReadByteData(ctx context.Context, reg byte) (byte, error)
	// ReadWordData reads a 16-bit word from the given register.
	ReadWordData(ctx context.Context, reg byte) (uint16, error)
}

// RawReadWriter groups plain I2C transfers that bypass the SMBus protocols.
type RawReadWriter interface {
	Read(ctx context.Context, buffer []byte) (int, error)
	Write(ctx context.Context, buffer []byte) (int, error)
}

// Conn is an open, address-bound connection to one device on one bus. A Conn
// is owned by a single invocation and released exactly once when done.
type Conn interface {
	RegisterReader
	RawReadWriter

	// SetPEC toggles packet error checking on the handle. It is never
	// reverted; the handle is released shortly after.
	SetPEC(ctx context.Context, enable bool) error

	// Funcs reports the adapter functionality matrix captured when the
	// connection was opened.
	Funcs() Funcs
}
