package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/durexyl/i2c-tools/cmd/internal/console"
	"github.com/durexyl/i2c-tools/probe"
	"github.com/durexyl/i2c-tools/smbus"
	"github.com/durexyl/i2c-tools/transaction"
)

// usage rejects bad arguments the way the tool's help describes them.
func usage(c *cli.Context, msg string, args ...interface{}) error {
	_ = cli.ShowAppHelp(c)
	return console.Exit(1, msg, args...)
}

func getAction(c *cli.Context) error {
	if c.NArg() < 2 || c.NArg() > 4 {
		return usage(c, "expected 2 to 4 arguments, got %d", c.NArg())
	}
	length := c.Int("length")
	if c.IsSet("length") && length <= 0 {
		return usage(c, "length must be a positive number of bytes")
	}

	nr, err := probe.Resolve(c.Args().Get(0))
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	addr, err := smbus.ParseAddr(c.Args().Get(1))
	if err != nil {
		return usage(c, "%s", console.Red(err))
	}
	var reg transaction.RegisterAddr
	if c.NArg() > 2 {
		reg, err = transaction.ParseRegisterAddr(c.Args().Get(2))
		if err != nil {
			return usage(c, "%s", console.Red(err))
		}
	}
	plan, err := transaction.Select(reg, c.Args().Get(3), length)
	if err != nil {
		return usage(c, "%s", console.Red(err))
	}

	conn, err := smbus.Open(nr)
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	defer func() { _ = conn.Close() }()

	if err = transaction.Check(plan, conn.Funcs()); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	if err = conn.Bind(addr, c.Bool("force")); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}

	if !c.Bool("yes") {
		gate := &transaction.Gate{Out: os.Stderr, Confirm: console.Confirm}
		ok, err := gate.Approve(plan, conn.Path(), addr)
		if err != nil {
			return console.Exit(1, "confirmation failed: %s", console.Red(err))
		}
		if !ok {
			// a declined read is a deliberate no-op, not an error
			return nil
		}
	}

	res, err := transaction.Execute(context.Background(), conn, plan)
	if err != nil {
		if errors.Is(err, transaction.ErrSetPEC) {
			return console.Exit(1, "%s", console.Red(err))
		}
		return console.Exit(2, "%s", console.Red(err))
	}
	console.Print(transaction.Format(res))
	return nil
}
