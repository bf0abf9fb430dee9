package probe

import (
	"github.com/karalabe/hid"
)

// bridge identifies one known USB HID to I2C bridge controller family.
type bridge struct {
	name      string
	vendorID  uint16
	productID uint16
}

// The bridge chips this tool knows how to spot on the HID enumeration.
var knownBridges = []bridge{
	{name: "MCP2221", vendorID: 0x04D8, productID: 0x00DD},
	{name: "CP2112", vendorID: 0x10C4, productID: 0xEA90},
	{name: "FT260", vendorID: 0x0403, productID: 0x6030},
}

// BridgeInfo describes one attached USB I2C bridge adapter.
type BridgeInfo struct {
	Bridge       string `yaml:"bridge"`
	Path         string `yaml:"path"`
	Serial       string `yaml:"serial,omitempty"`
	Manufacturer string `yaml:"manufacturer,omitempty"`
	Product      string `yaml:"product,omitempty"`
}

// Bridges enumerates the attached USB HID devices and returns the ones that
// are known I2C bridge controllers.
func Bridges() []BridgeInfo {
	return matchBridges(hid.Enumerate(0, 0))
}

func matchBridges(devices []hid.DeviceInfo) []BridgeInfo {
	var found []BridgeInfo
	for _, dev := range devices {
		for _, b := range knownBridges {
			if dev.VendorID != b.vendorID || dev.ProductID != b.productID {
				continue
			}
			found = append(found, BridgeInfo{
				Bridge:       b.name,
				Path:         dev.Path,
				Serial:       dev.Serial,
				Manufacturer: dev.Manufacturer,
				Product:      dev.Product,
			})
		}
	}
	return found
}
