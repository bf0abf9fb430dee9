package transaction

import (
	"fmt"
	"strings"
)

// Format renders the result the way scripts expect it on stdout. Structured
// reads print as one lowercase hex numeral, zero-padded to the transfer
// width. Raw reads of 1, 2, 4 or 8 bytes pack into a single numeral; any
// other length prints one numeral per byte, space-separated, in read order.
func Format(res Result) string {
	if res.Mode != RawRead {
		if res.Mode == WordData {
			return fmt.Sprintf("0x%04x", res.Value)
		}
		return fmt.Sprintf("0x%02x", res.Value)
	}
	switch len(res.Raw) {
	case 1, 2, 4, 8:
		var out strings.Builder
		out.WriteString("0x")
		for _, b := range res.Raw {
			fmt.Fprintf(&out, "%02X", b)
		}
		return out.String()
	default:
		parts := make([]string, len(res.Raw))
		for i, b := range res.Raw {
			parts[i] = fmt.Sprintf("0x%02X", b)
		}
		return strings.Join(parts, " ")
	}
}
