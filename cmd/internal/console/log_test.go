package console

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)

	Print("0x42")
	Printf("0x%02x\n", 0x2f)
	Error("bus is gone")
	Errorf("no bus named %q", "nope")
	Warn("adapter reported nothing")
	Warnf("short write of %d bytes", 1)

	assert.Equal(t, "0x42\n0x2f\n", out.String())
	assert.Contains(t, errOut.String(), "ERROR")
	assert.Contains(t, errOut.String(), "bus is gone")
	assert.Contains(t, errOut.String(), `no bus named "nope"`)
	assert.Contains(t, errOut.String(), "WARN")
	assert.Contains(t, errOut.String(), "adapter reported nothing")
	assert.Contains(t, errOut.String(), "short write of 1 bytes")
	assert.NotContains(t, out.String(), "ERROR")
}
