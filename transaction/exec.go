package transaction

import (
	"context"
	"fmt"
	"log/slog"

	i2ctools "github.com/durexyl/i2c-tools"
)

var ErrSetPEC = fmt.Errorf("could not set PEC")
var ErrReadFailed = fmt.Errorf("read failed")

// Result carries the outcome of one executed plan. Structured reads fill
// Value, raw reads fill Raw.
type Result struct {
	Mode  Mode
	Value uint16
	Raw   []byte
}

// Execute runs the plan against an open connection. PEC is enabled first when
// requested and never reverted; the caller releases the handle right after.
// There are no retries: a failed transaction on a shared bus is surfaced, not
// repeated.
func Execute(ctx context.Context, conn i2ctools.Conn, plan Plan) (Result, error) {
	if plan.PEC {
		if err := conn.SetPEC(ctx, true); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrSetPEC, err)
		}
	}
	switch plan.Mode {
	case RawRead:
		writeAddr(ctx, conn, plan.Reg)
		buf := make([]byte, plan.Length)
		n, err := conn.Read(ctx, buf)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		if n != plan.Length {
			return Result{}, fmt.Errorf("%w: got %d of %d bytes", ErrReadFailed, n, plan.Length)
		}
		return Result{Mode: RawRead, Raw: buf}, nil
	case CurrentByte:
		writeAddr(ctx, conn, plan.Reg)
		v, err := conn.ReadByte(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		return Result{Mode: CurrentByte, Value: uint16(v)}, nil
	case WordData:
		v, err := conn.ReadWordData(ctx, byte(plan.Reg.Value()))
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		return Result{Mode: WordData, Value: v}, nil
	default:
		v, err := conn.ReadByteData(ctx, byte(plan.Reg.Value()))
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		return Result{Mode: ByteData, Value: uint16(v)}, nil
	}
}

// writeAddr points the device at the requested register before a plain read.
// A failed or short write is reported but the read is still attempted.
func writeAddr(ctx context.Context, conn i2ctools.Conn, reg RegisterAddr) {
	buf := reg.Bytes()
	if len(buf) == 0 {
		return
	}
	n, err := conn.Write(ctx, buf)
	if err != nil {
		slog.Warn("data address write failed, reading anyway", "register", reg, "error", err)
	} else if n != len(buf) {
		slog.Warn("short data address write, reading anyway", "register", reg, "written", n, "expected", len(buf))
	}
}
