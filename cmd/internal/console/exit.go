package console

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Exit wraps a formatted message into a coded cli exit error. The code maps
// the failure class: 1 for anything that stopped the tool before or while
// reaching the bus, 2 for a transaction that already produced bus traffic.
func Exit(code int, msg string, args ...interface{}) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf(msg, args...), code)
}
