package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	chlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/durexyl/i2c-tools/cmd/internal/console"
)

var version string
var commit string
var date string

func main() {
	os.Exit(run())
}

func run() int {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version and exit",
	}
	app := cli.NewApp()
	app.Name = "i2cdetect"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s-%s-%s", version, date, commit)
	app.Usage = "scan an I2C bus for devices"
	app.ArgsUsage = "I2CBUS [FIRST LAST]"
	// the probe grid and the listings own stdout; everything else is a
	// diagnostic
	app.Writer = os.Stderr
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "list buses known to i2c-dev and exit",
		},
		&cli.BoolFlag{
			Name:  "periph",
			Usage: "list bus references registered by the periph host drivers and exit",
		},
		&cli.BoolFlag{
			Name:  "usb",
			Usage: "list attached USB HID I2C bridge adapters and exit",
		},
		&cli.BoolFlag{
			Name:    "funcs",
			Aliases: []string{"F"},
			Usage:   "print the functionality matrix of I2CBUS and exit",
		},
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: "print listings as yaml",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "answer all confirmations with yes",
		},
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "probe non-regular addresses too (0x00-0x7f)",
		},
		&cli.BoolFlag{
			Name:    "quick",
			Aliases: []string{"q"},
			Usage:   "probe with SMBus quick write only",
		},
		&cli.BoolFlag{
			Name:    "read",
			Aliases: []string{"r"},
			Usage:   "probe with SMBus receive byte only",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable verbose logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		charm := chlog.NewWithOptions(os.Stderr, chlog.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
		})
		charm.SetColorProfile(termenv.TrueColor)
		charm.SetLevel(chlog.InfoLevel)
		if ctx.Bool("verbose") {
			charm.SetLevel(chlog.DebugLevel)
		}
		slog.SetDefault(slog.New(charm))
		return nil
	}
	app.Action = func(c *cli.Context) error {
		switch {
		case c.Bool("list"):
			return listBuses(c)
		case c.Bool("periph"):
			return listRefs(c)
		case c.Bool("usb"):
			return listBridges(c)
		case c.Bool("funcs"):
			return showFuncs(c)
		default:
			return scanAction(c)
		}
	}
	err := app.Run(os.Args)
	if err != nil {
		var exerr cli.ExitCoder
		if errors.As(err, &exerr) {
			log.Printf("unexpected error: %v", err)
			return exerr.ExitCode()
		}
		return 1
	}
	return 0
}

// usage rejects bad arguments the way the tool's help describes them.
func usage(c *cli.Context, msg string, args ...interface{}) error {
	_ = cli.ShowAppHelp(c)
	return console.Exit(1, msg, args...)
}
