package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/durexyl/i2c-tools/cmd/internal/console"
	"github.com/durexyl/i2c-tools/probe"
)

func listBridges(c *cli.Context) error {
	bridges := probe.Bridges()
	if c.Bool("yaml") {
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(bridges); err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	}
	if err := renderBridges(os.Stdout, bridges); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	return nil
}

func renderBridges(w io.Writer, bridges []probe.BridgeInfo) error {
	tw := tabwriter.NewWriter(w, 24, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "BRIDGE\tPATH\tSERIAL\tMANUFACTURER\tPRODUCT\n")
	for _, b := range bridges {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.Bridge, b.Path, b.Serial, b.Manufacturer, b.Product)
	}
	return tw.Flush()
}
