package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/durexyl/i2c-tools/cmd/internal/console"
	"github.com/durexyl/i2c-tools/probe"
	"github.com/durexyl/i2c-tools/smbus"
)

func listBuses(c *cli.Context) error {
	buses, err := smbus.Buses()
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	if c.Bool("yaml") {
		enc := yaml.NewEncoder(os.Stdout)
		if err = enc.Encode(buses); err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	}
	if err = renderBuses(os.Stdout, buses); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	return nil
}

func renderBuses(w io.Writer, buses []smbus.BusInfo) error {
	tw := tabwriter.NewWriter(w, 24, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "BUS\tNAME\tDEVICE\n")
	for _, b := range buses {
		_, _ = fmt.Fprintf(tw, "i2c-%d\t%s\t%s\n", b.Number, b.Name, b.Device)
	}
	return tw.Flush()
}

func listRefs(c *cli.Context) error {
	refs, err := probe.Buses()
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	if c.Bool("yaml") {
		enc := yaml.NewEncoder(os.Stdout)
		if err = enc.Encode(refs); err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	}
	if err = renderRefs(os.Stdout, refs); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	return nil
}

func renderRefs(w io.Writer, refs []probe.BusRef) error {
	tw := tabwriter.NewWriter(w, 24, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "NAME\tALIASES\tNUMBER\n")
	for _, ref := range refs {
		number := ""
		if ref.Number >= 0 {
			number = fmt.Sprintf("%d", ref.Number)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", ref.Name, strings.Join(ref.Aliases, ","), number)
	}
	return tw.Flush()
}
