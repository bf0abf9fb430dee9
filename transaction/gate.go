package transaction

import (
	"fmt"
	"io"
)

// EEPROM address block where a PEC request is refused outright. PEC on
// I2C-only devices can end up trashing their contents.
const (
	eepromFirst = 0x50
	eepromLast  = 0x57
)

// Gate describes the pending transaction on Out and collects operator
// approval through the injected Confirm before any bus traffic happens.
// Callers running non-interactively skip the gate instead of stubbing it.
type Gate struct {
	Out     io.Writer
	Confirm func(question string, def bool) (bool, error)
}

// Approve walks the operator through the transaction the plan describes on
// device (a device file path) at chip address addr. It returns false for the
// hard EEPROM+PEC refusal and for any non-affirmative reply.
func (g *Gate) Approve(plan Plan, device string, addr byte) (bool, error) {
	fmt.Fprintln(g.Out, "WARNING! This program can confuse your I2C bus, cause data loss and worse!")

	if plan.PEC && addr >= eepromFirst && addr <= eepromLast {
		fmt.Fprintln(g.Out, "STOP! EEPROMs are I2C devices, not SMBus devices. Using PEC")
		fmt.Fprintln(g.Out, "on I2C devices may result in unexpected results, such as")
		fmt.Fprintln(g.Out, "trashing the contents of EEPROMs. We can't let you do that, sorry.")
		return false, nil
	}

	def := true
	if plan.Mode == CurrentByte && plan.Reg.Present() && plan.PEC {
		fmt.Fprintln(g.Out, "WARNING! All I2C chips and some SMBus chips will interpret a write")
		fmt.Fprintln(g.Out, "byte command with PEC as a write byte data command, effectively writing a")
		fmt.Fprintln(g.Out, "value into a register!")
		def = false
	}

	target := "current data address"
	if plan.Reg.Present() {
		target = fmt.Sprintf("data address 0x%02x", plan.Reg.Value())
	}
	fmt.Fprintf(g.Out, "I will read from device file %s, chip address 0x%02x, %s, using %s.\n",
		device, addr, target, plan.Describe())
	if plan.PEC {
		fmt.Fprintln(g.Out, "PEC checking enabled.")
	}

	ok, err := g.Confirm("Continue?", def)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(g.Out, "Aborting on user request.")
		return false, nil
	}
	return true, nil
}
