package smbus

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	i2ctools "github.com/durexyl/i2c-tools"
)

// Kernel interface from <linux/i2c-dev.h>.
const (
	ioctlSlave      = 0x0703
	ioctlFuncs      = 0x0705
	ioctlSlaveForce = 0x0706
	ioctlPEC        = 0x0708
	ioctlSMBus      = 0x0720
)

const (
	smbusWrite = 0
	smbusRead  = 1
)

// Transaction sizes for the I2C_SMBUS ioctl.
const (
	sizeQuick    = 0
	sizeByte     = 1
	sizeByteData = 2
	sizeWordData = 3
)

// smbusData mirrors union i2c_smbus_data: a byte, a word, or a block of up to
// 32 bytes preceded by its length.
type smbusData [34]byte

// smbusIoctlData mirrors struct i2c_smbus_ioctl_data. Field order and sizes
// match the kernel ABI; do not reorder.
type smbusIoctlData struct {
	readWrite byte
	command   byte
	size      uint32
	data      unsafe.Pointer
}

var _ i2ctools.Conn = &Conn{}

// Conn is an open handle on an i2c-dev node, optionally bound to a device
// address. It is not safe for concurrent use; the tools here never share one.
type Conn struct {
	f     *os.File
	path  string
	addr  byte
	funcs i2ctools.Funcs
}

// Open obtains a read-write handle on bus number nr. The devfs layout
// /dev/i2c/NR is tried first, then the flat /dev/i2c-NR name. The adapter
// functionality matrix is captured before the handle is returned.
func Open(nr int) (*Conn, error) {
	path := fmt.Sprintf("/dev/i2c/%d", nr)
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil && (errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR)) {
		path = fmt.Sprintf("/dev/i2c-%d", nr)
		f, err = os.OpenFile(path, os.O_RDWR, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("smbus: could not open bus %d: %w", nr, err)
	}
	c := &Conn{f: f, path: path}
	var funcs uint64
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), ioctlFuncs, uintptr(unsafe.Pointer(&funcs))); errno != 0 {
		_ = f.Close()
		return nil, fmt.Errorf("smbus: could not get the adapter functionality matrix: %w", errno)
	}
	c.funcs = i2ctools.Funcs(funcs)
	return c, nil
}

// Bind selects the device address for subsequent transfers. With force set the
// kernel skips its busy check and binds even when a driver owns the address.
func (c *Conn) Bind(addr byte, force bool) error {
	op := uintptr(ioctlSlave)
	if force {
		op = ioctlSlaveForce
	}
	if err := c.ioctl(op, uintptr(addr)); err != nil {
		return fmt.Errorf("smbus: could not set address to 0x%02x: %w", addr, err)
	}
	c.addr = addr
	return nil
}

func (c *Conn) ReadByte(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var data smbusData
	if err := c.access(smbusRead, 0, sizeByte, &data); err != nil {
		return 0, fmt.Errorf("smbus: could not receive byte from 0x%02x: %w", c.addr, err)
	}
	return data[0], nil
}

func (c *Conn) ReadByteData(ctx context.Context, reg byte) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var data smbusData
	if err := c.access(smbusRead, reg, sizeByteData, &data); err != nil {
		return 0, fmt.Errorf("smbus: could not read byte from 0x%02x register 0x%02x: %w", c.addr, reg, err)
	}
	return data[0], nil
}

func (c *Conn) ReadWordData(ctx context.Context, reg byte) (uint16, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var data smbusData
	if err := c.access(smbusRead, reg, sizeWordData, &data); err != nil {
		return 0, fmt.Errorf("smbus: could not read word from 0x%02x register 0x%02x: %w", c.addr, reg, err)
	}
	return binary.NativeEndian.Uint16(data[:2]), nil
}

// WriteQuick sends the bound address with the read/write bit cleared and no
// data byte. Scanners use it where a read could lock up the device.
func (c *Conn) WriteQuick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.access(smbusWrite, 0, sizeQuick, nil); err != nil {
		return fmt.Errorf("smbus: could not quick-write 0x%02x: %w", c.addr, err)
	}
	return nil
}

// Read performs a plain I2C receive into buffer, bypassing the SMBus layer.
func (c *Conn) Read(ctx context.Context, buffer []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.f == nil {
		return 0, i2ctools.ErrNotOpen
	}
	return c.f.Read(buffer)
}

// Write performs a plain I2C send of buffer, bypassing the SMBus layer.
func (c *Conn) Write(ctx context.Context, buffer []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.f == nil {
		return 0, i2ctools.ErrNotOpen
	}
	return c.f.Write(buffer)
}

// SetPEC toggles packet error checking on the handle.
func (c *Conn) SetPEC(ctx context.Context, enable bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var arg uintptr
	if enable {
		arg = 1
	}
	if err := c.ioctl(ioctlPEC, arg); err != nil {
		return fmt.Errorf("smbus: could not set PEC: %w", err)
	}
	return nil
}

// Funcs returns the functionality matrix captured at open time.
func (c *Conn) Funcs() i2ctools.Funcs {
	return c.funcs
}

// Path returns the device node backing the connection.
func (c *Conn) Path() string {
	return c.path
}

// Addr returns the currently bound device address.
func (c *Conn) Addr() byte {
	return c.addr
}

func (c *Conn) Close() error {
	if c.f == nil {
		return nil
	}
	return c.f.Close()
}

func (c *Conn) access(readWrite byte, command byte, size uint32, data *smbusData) error {
	if c.f == nil {
		return i2ctools.ErrNotOpen
	}
	args := smbusIoctlData{
		readWrite: readWrite,
		command:   command,
		size:      size,
		data:      unsafe.Pointer(data),
	}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, c.f.Fd(), ioctlSMBus, uintptr(unsafe.Pointer(&args))); errno != 0 {
		return errno
	}
	return nil
}

// ioctl issues a scalar-argument ioctl on the handle.
func (c *Conn) ioctl(op, arg uintptr) error {
	if c.f == nil {
		return i2ctools.ErrNotOpen
	}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, c.f.Fd(), op, arg); errno != 0 {
		return errno
	}
	return nil
}
