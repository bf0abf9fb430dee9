package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/i2c/i2creg"
)

func TestLookupRefs(t *testing.T) {
	refs := []*i2creg.Ref{
		{Name: "/dev/i2c-1", Aliases: []string{"I2C1"}, Number: 1},
		{Name: "/dev/i2c-20", Aliases: []string{"I2C20", "DDC"}, Number: 20},
		{Name: "ftdi", Number: -1},
	}

	tests := []struct {
		name     string
		arg      string
		expected int
		wantErr  string
	}{
		{name: "by name", arg: "/dev/i2c-1", expected: 1},
		{name: "by alias", arg: "I2C1", expected: 1},
		{name: "by second alias", arg: "DDC", expected: 20},
		{name: "unnumbered bus", arg: "ftdi", wantErr: "has no number"},
		{name: "unknown", arg: "I2C9", wantErr: "no registered bus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nr, err := lookupRefs(refs, tt.arg)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, nr)
		})
	}
}

func TestResolve_Number(t *testing.T) {
	// numeric arguments never touch sysfs or the periph registry
	nr, err := Resolve("7")
	assert.NoError(t, err)
	assert.Equal(t, 7, nr)

	nr, err = Resolve("0x0a")
	assert.NoError(t, err)
	assert.Equal(t, 10, nr)
}
