package i2ctools

// Funcs is the adapter functionality bitmask reported by the kernel for an
// open bus handle. The flag values mirror the I2C_FUNC_* constants from
// <linux/i2c.h> and never change across kernel versions.
type Funcs uint64

const (
	FuncI2C                 Funcs = 0x00000001
	FuncTenBitAddr          Funcs = 0x00000002
	FuncProtocolMangling    Funcs = 0x00000004
	FuncSMBusPEC            Funcs = 0x00000008
	FuncNoStart             Funcs = 0x00000010
	FuncSlave               Funcs = 0x00000020
	FuncSMBusBlockProcCall  Funcs = 0x00008000
	FuncSMBusQuick          Funcs = 0x00010000
	FuncSMBusReadByte       Funcs = 0x00020000
	FuncSMBusWriteByte      Funcs = 0x00040000
	FuncSMBusReadByteData   Funcs = 0x00080000
	FuncSMBusWriteByteData  Funcs = 0x00100000
	FuncSMBusReadWordData   Funcs = 0x00200000
	FuncSMBusWriteWordData  Funcs = 0x00400000
	FuncSMBusProcCall       Funcs = 0x00800000
	FuncSMBusReadBlockData  Funcs = 0x01000000
	FuncSMBusWriteBlockData Funcs = 0x02000000
	FuncSMBusReadI2CBlock   Funcs = 0x04000000
	FuncSMBusWriteI2CBlock  Funcs = 0x08000000
	FuncSMBusHostNotify     Funcs = 0x10000000
)

// Has reports whether every bit of flag is present in the matrix.
func (f Funcs) Has(flag Funcs) bool {
	return f&flag == flag
}

// FuncName pairs one capability flag with its display label.
type FuncName struct {
	Flag Funcs
	Name string
}

// FuncNames lists the capabilities in the order the functionality report
// prints them.
var FuncNames = []FuncName{
	{FuncI2C, "I2C"},
	{FuncSMBusQuick, "SMBus Quick Command"},
	{FuncSMBusWriteByte, "SMBus Send Byte"},
	{FuncSMBusReadByte, "SMBus Receive Byte"},
	{FuncSMBusWriteByteData, "SMBus Write Byte"},
	{FuncSMBusReadByteData, "SMBus Read Byte"},
	{FuncSMBusWriteWordData, "SMBus Write Word"},
	{FuncSMBusReadWordData, "SMBus Read Word"},
	{FuncSMBusProcCall, "SMBus Process Call"},
	{FuncSMBusWriteBlockData, "SMBus Block Write"},
	{FuncSMBusReadBlockData, "SMBus Block Read"},
	{FuncSMBusBlockProcCall, "SMBus Block Process Call"},
	{FuncSMBusPEC, "SMBus PEC"},
	{FuncSMBusWriteI2CBlock, "I2C Block Write"},
	{FuncSMBusReadI2CBlock, "I2C Block Read"},
}
