// Binary aqi computes Air Quality Index values under the China (HJ 633) and
// US EPA standards.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

type command struct {
	usage string
	run   func(args []string, w io.Writer) error
}

var commands = map[string]command{
	"iaqi": {
		usage: "iaqi -std cn|usa ITEM VALUE\n\tindividual index of one pollutant item, or null",
		run:   runIAQI,
	},
	"aqi": {
		usage: "aqi -std cn|usa [-type hourly|daily] -pm25 v -pm10 v ...\n\tfull report as JSON",
		run:   runAQI,
	},
	"level": {
		usage: "level -std cn|usa AQI\n\tlevel (1-6) and category of an AQI",
		run:   runLevel,
	},
	"color": {
		usage: "color -std cn|usa LEVEL RGB|CMYK|RGB_HEX|CMYK_HEX\n\tdisplay color of a level",
		run:   runColor,
	},
	"primary": {
		usage: "primary -std cn|usa [-cn] POLLUTANT=IAQI...\n\tprimary pollutants given sub-indices, e.g. PM2.5=120 O3=null",
		run:   runPrimary,
	},
	"items": {
		usage: "items -std cn|usa\n\tvalid pollutant item names",
		run:   runItems,
	},
}

// usageError is returned for malformed command lines. It results in exit
// status 2 rather than 1.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usagef(format string, a ...any) error {
	return usageError{fmt.Sprintf(format, a...)}
}

func init() {
	flag.Usage = func() {
		message := `usage: aqi command [options] [arguments]

Commands:
`
		fmt.Fprint(flag.CommandLine.Output(), message)

		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", commands[name].usage)
		}

		fmt.Fprint(flag.CommandLine.Output(), `
Concentration units
  cn:  µg/m³, except CO in mg/m³
  usa: PM in µg/m³, SO2 and NO2 in ppb, CO and O3 in ppm
`)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		return usagef("a command must be given")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return usagef("unknown command %q", args[0])
	}
	return cmd.run(args[1:], w)
}

func main() {
	flag.Parse()

	err := run(flag.Args(), os.Stdout)
	if err == nil {
		return
	}

	var uerr usageError
	if errors.As(err, &uerr) || errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "argument error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
