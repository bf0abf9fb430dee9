package probe

import (
	"testing"

	"github.com/karalabe/hid"
	"github.com/stretchr/testify/assert"
)

func TestMatchBridges(t *testing.T) {
	devices := []hid.DeviceInfo{
		{Path: "0001:0004:00", VendorID: 0x04D8, ProductID: 0x00DD, Serial: "A1", Manufacturer: "Microchip", Product: "MCP2221 USB-I2C/UART Combo"},
		{Path: "0001:0005:00", VendorID: 0x046D, ProductID: 0xC31C, Product: "Keyboard"},
		{Path: "0001:0006:00", VendorID: 0x10C4, ProductID: 0xEA90, Product: "CP2112 HID USB-to-SMBus Bridge"},
		{Path: "0001:0007:00", VendorID: 0x0403, ProductID: 0x6030},
	}

	found := matchBridges(devices)
	assert.Equal(t, []BridgeInfo{
		{Bridge: "MCP2221", Path: "0001:0004:00", Serial: "A1", Manufacturer: "Microchip", Product: "MCP2221 USB-I2C/UART Combo"},
		{Bridge: "CP2112", Path: "0001:0006:00", Product: "CP2112 HID USB-to-SMBus Bridge"},
		{Bridge: "FT260", Path: "0001:0007:00"},
	}, found)
}

func TestMatchBridges_NoneAttached(t *testing.T) {
	assert.Empty(t, matchBridges(nil))
	assert.Empty(t, matchBridges([]hid.DeviceInfo{
		{Path: "0001:0005:00", VendorID: 0x046D, ProductID: 0xC31C},
	}))
}
