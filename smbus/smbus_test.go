package smbus

import (
	"context"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	i2ctools "github.com/durexyl/i2c-tools"
)

func TestSMBusIoctlDataLayout(t *testing.T) {
	// The struct is handed to the kernel verbatim; offsets must match
	// struct i2c_smbus_ioctl_data.
	var d smbusIoctlData
	assert.Equal(t, uintptr(0), unsafe.Offsetof(d.readWrite))
	assert.Equal(t, uintptr(1), unsafe.Offsetof(d.command))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(d.size))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(d.data))
	assert.Equal(t, uintptr(34), unsafe.Sizeof(smbusData{}))
}

func TestConn_NotOpen(t *testing.T) {
	tests := []struct {
		name string
		op   func(ctx context.Context, c *Conn) error
	}{
		{"receive byte", func(ctx context.Context, c *Conn) error {
			_, err := c.ReadByte(ctx)
			return err
		}},
		{"read byte data", func(ctx context.Context, c *Conn) error {
			_, err := c.ReadByteData(ctx, 0x10)
			return err
		}},
		{"read word data", func(ctx context.Context, c *Conn) error {
			_, err := c.ReadWordData(ctx, 0x10)
			return err
		}},
		{"quick write", func(ctx context.Context, c *Conn) error {
			return c.WriteQuick(ctx)
		}},
		{"raw read", func(ctx context.Context, c *Conn) error {
			_, err := c.Read(ctx, make([]byte, 2))
			return err
		}},
		{"raw write", func(ctx context.Context, c *Conn) error {
			_, err := c.Write(ctx, []byte{0x10})
			return err
		}},
		{"set pec", func(ctx context.Context, c *Conn) error {
			return c.SetPEC(ctx, true)
		}},
		{"bind", func(ctx context.Context, c *Conn) error {
			return c.Bind(0x4d, false)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Conn{}
			assert.ErrorIs(t, tt.op(context.Background(), c), i2ctools.ErrNotOpen)
		})
	}
}

func TestConn_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &Conn{}

	_, err := c.ReadByte(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.Read(ctx, make([]byte, 1))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.Write(ctx, []byte{0x00})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.SetPEC(ctx, true), context.Canceled)
}

func TestConn_CloseWithoutOpen(t *testing.T) {
	c := &Conn{}
	assert.NoError(t, c.Close())
}
