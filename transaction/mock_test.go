package transaction

import (
	"context"

	"github.com/stretchr/testify/mock"

	i2ctools "github.com/durexyl/i2c-tools"
)

var _ i2ctools.Conn = &MockConn{}

// MockConn is a mock implementation of i2ctools.Conn using testify/mock.
type MockConn struct {
	mock.Mock
	funcs i2ctools.Funcs
}

func (m *MockConn) ReadByte(ctx context.Context) (byte, error) {
	args := m.Called(ctx)
	return args.Get(0).(byte), args.Error(1)
}

func (m *MockConn) ReadByteData(ctx context.Context, reg byte) (byte, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(byte), args.Error(1)
}

func (m *MockConn) ReadWordData(ctx context.Context, reg byte) (uint16, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(uint16), args.Error(1)
}

func (m *MockConn) Read(ctx context.Context, buffer []byte) (int, error) {
	args := m.Called(ctx, buffer)
	n := 0
	// Copy mock data into the buffer if provided; the returned count is the
	// number of bytes actually copied, so short reads are easy to stage.
	if data, ok := args.Get(0).([]byte); ok {
		n = copy(buffer, data)
	}
	return n, args.Error(1)
}

func (m *MockConn) Write(ctx context.Context, buffer []byte) (int, error) {
	args := m.Called(ctx, buffer)
	return args.Int(0), args.Error(1)
}

func (m *MockConn) SetPEC(ctx context.Context, enable bool) error {
	args := m.Called(ctx, enable)
	return args.Error(0)
}

func (m *MockConn) Funcs() i2ctools.Funcs {
	return m.funcs
}
