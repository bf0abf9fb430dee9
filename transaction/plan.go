package transaction

import (
	"fmt"
)

// Mode is the bus transaction type used for the read.
type Mode int

const (
	// CurrentByte reads whatever register the device's internal pointer
	// currently references.
	CurrentByte Mode = iota
	// ByteData writes the register address and reads one byte back.
	ByteData
	// WordData writes the register address and reads a 16-bit word back.
	WordData
	// RawRead bypasses the structured protocols and reads a caller-chosen
	// number of bytes straight off the bus.
	RawRead
)

func (m Mode) String() string {
	switch m {
	case CurrentByte:
		return "current byte"
	case ByteData:
		return "byte data"
	case WordData:
		return "word data"
	case RawRead:
		return "raw read"
	default:
		return "unknown"
	}
}

// Plan is the complete description of one register read. Select builds it
// once per invocation; everything downstream only consumes it.
type Plan struct {
	Mode   Mode
	Reg    RegisterAddr
	Length int
	PEC    bool
}

// Describe names the transaction in operator terms.
func (p Plan) Describe() string {
	switch p.Mode {
	case CurrentByte:
		if p.Reg.Present() {
			return "write byte/read byte"
		}
		return "read byte"
	case ByteData:
		return "read byte data"
	case WordData:
		return "read word data"
	default:
		return fmt.Sprintf("raw read of %d bytes", p.Length)
	}
}

// Select maps the decoded request onto a plan, first match wins:
//
//  1. an explicit raw length selects RawRead, whatever the mode says
//  2. no register address selects CurrentByte
//  3. a register address without a mode selects ByteData
//  4. otherwise the mode character decides: b, w or c
//
// The mode argument is validated even when it loses to a raw length, so a
// typo never goes unnoticed, and its p suffix still enables PEC. Non-positive
// lengths mean no length was requested.
func Select(reg RegisterAddr, modeArg string, length int) (Plan, error) {
	mode := CurrentByte
	pec := false
	if modeArg != "" {
		switch modeArg[0] {
		case 'b':
			mode = ByteData
		case 'w':
			mode = WordData
		case 'c':
			mode = CurrentByte
		default:
			return Plan{}, fmt.Errorf("invalid mode %q", modeArg)
		}
		pec = len(modeArg) > 1 && modeArg[1] == 'p'
	}
	switch {
	case length > 0:
		return Plan{Mode: RawRead, Reg: reg, Length: length, PEC: pec}, nil
	case !reg.Present():
		return Plan{Mode: CurrentByte, Reg: reg, PEC: pec}, nil
	case modeArg == "":
		return Plan{Mode: ByteData, Reg: reg, PEC: pec}, nil
	default:
		return Plan{Mode: mode, Reg: reg, PEC: pec}, nil
	}
}
