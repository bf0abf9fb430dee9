package transaction

import (
	"fmt"
	"log/slog"

	i2ctools "github.com/durexyl/i2c-tools"
)

// CapabilityError reports an adapter that cannot perform the selected
// transaction. It is raised before any bus traffic happens.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("adapter does not have %s capability", e.Capability)
}

// Check validates the plan against the adapter functionality matrix. Raw
// reads are plain file I/O and have no structural requirement. A PEC request
// the adapter does not advertise is only a warning.
func Check(plan Plan, funcs i2ctools.Funcs) error {
	switch plan.Mode {
	case CurrentByte:
		if !funcs.Has(i2ctools.FuncSMBusReadByte) {
			return &CapabilityError{Capability: "SMBus receive byte"}
		}
		if plan.Reg.Present() && !funcs.Has(i2ctools.FuncSMBusWriteByte) {
			return &CapabilityError{Capability: "SMBus send byte"}
		}
	case ByteData:
		if !funcs.Has(i2ctools.FuncSMBusReadByteData) {
			return &CapabilityError{Capability: "SMBus read byte"}
		}
	case WordData:
		if !funcs.Has(i2ctools.FuncSMBusReadWordData) {
			return &CapabilityError{Capability: "SMBus read word"}
		}
	}
	if plan.PEC && !funcs.Has(i2ctools.FuncSMBusPEC) && !funcs.Has(i2ctools.FuncI2C) {
		slog.Warn("adapter does not seem to support PEC")
	}
	return nil
}
