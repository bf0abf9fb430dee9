package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	i2ctools "github.com/durexyl/i2c-tools"
	"github.com/durexyl/i2c-tools/cmd/internal/console"
	"github.com/durexyl/i2c-tools/probe"
	"github.com/durexyl/i2c-tools/smbus"
)

type funcReport struct {
	Name      string `yaml:"name"`
	Supported bool   `yaml:"supported"`
}

func funcMatrix(funcs i2ctools.Funcs) []funcReport {
	report := make([]funcReport, 0, len(i2ctools.FuncNames))
	for _, fn := range i2ctools.FuncNames {
		report = append(report, funcReport{Name: fn.Name, Supported: funcs.Has(fn.Flag)})
	}
	return report
}

func renderFuncs(w io.Writer, device string, funcs i2ctools.Funcs) {
	fmt.Fprintf(w, "Functionalities implemented by %s:\n", device)
	for _, fn := range funcMatrix(funcs) {
		supported := "no"
		if fn.Supported {
			supported = "yes"
		}
		fmt.Fprintf(w, "%-32s %s\n", fn.Name, supported)
	}
}

func showFuncs(c *cli.Context) error {
	if c.NArg() != 1 {
		return usage(c, "expected 1 argument, got %d", c.NArg())
	}
	nr, err := probe.Resolve(c.Args().Get(0))
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	conn, err := smbus.Open(nr)
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	defer func() { _ = conn.Close() }()

	if c.Bool("yaml") {
		enc := yaml.NewEncoder(os.Stdout)
		if err = enc.Encode(funcMatrix(conn.Funcs())); err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	}
	renderFuncs(os.Stdout, conn.Path(), conn.Funcs())
	return nil
}
