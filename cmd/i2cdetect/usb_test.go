package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/durexyl/i2c-tools/probe"
)

func TestRenderBridges(t *testing.T) {
	bridges := []probe.BridgeInfo{
		{
			Bridge:       "MCP2221",
			Path:         "0004:0008:00",
			Serial:       "0001",
			Manufacturer: "Microchip",
			Product:      "MCP2221 USB-I2C/UART Combo",
		},
		{Bridge: "CP2112", Path: "0004:0011:00"},
	}

	var out bytes.Buffer
	assert.NoError(t, renderBridges(&out, bridges))

	expected := column("BRIDGE") + column("PATH") + column("SERIAL") + column("MANUFACTURER") + "PRODUCT\n" +
		column("MCP2221") + column("0004:0008:00") + column("0001") + column("Microchip") + "MCP2221 USB-I2C/UART Combo\n" +
		column("CP2112") + column("0004:0011:00") + column("") + column("") + "\n"
	assert.Equal(t, expected, out.String())
}
