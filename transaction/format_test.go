package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		res      Result
		expected string
	}{
		{
			name:     "byte result is two lowercase digits",
			res:      Result{Mode: CurrentByte, Value: 0x2f},
			expected: "0x2f",
		},
		{
			name:     "byte result is zero padded",
			res:      Result{Mode: ByteData, Value: 0x05},
			expected: "0x05",
		},
		{
			name:     "word result is four lowercase digits",
			res:      Result{Mode: WordData, Value: 0xbeef},
			expected: "0xbeef",
		},
		{
			name:     "word result is zero padded",
			res:      Result{Mode: WordData, Value: 0x00ff},
			expected: "0x00ff",
		},
		{
			name:     "one raw byte packs into a single numeral",
			res:      Result{Mode: RawRead, Raw: []byte{0xab}},
			expected: "0xAB",
		},
		{
			name:     "two raw bytes pack",
			res:      Result{Mode: RawRead, Raw: []byte{0xab, 0x01}},
			expected: "0xAB01",
		},
		{
			name:     "four raw bytes pack",
			res:      Result{Mode: RawRead, Raw: []byte{0x01, 0x02, 0x03, 0x04}},
			expected: "0x01020304",
		},
		{
			name:     "eight raw bytes pack",
			res:      Result{Mode: RawRead, Raw: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
			expected: "0x0102030405060708",
		},
		{
			name:     "three raw bytes print separately",
			res:      Result{Mode: RawRead, Raw: []byte{0x01, 0x02, 0x03}},
			expected: "0x01 0x02 0x03",
		},
		{
			name:     "five raw bytes print separately",
			res:      Result{Mode: RawRead, Raw: []byte{0xde, 0xad, 0xbe, 0xef, 0x00}},
			expected: "0xDE 0xAD 0xBE 0xEF 0x00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.res))
		})
	}
}
