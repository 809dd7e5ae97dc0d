package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mtraver/aqihub/aqi"
	"github.com/mtraver/aqihub/aqi/china"
	"github.com/mtraver/aqihub/aqi/usa"
	"github.com/mtraver/aqihub/report"
)

var errNoData = errors.New("no data")

// optFloat is a float flag that remembers whether it was set.
type optFloat struct {
	v *float64
}

func (f *optFloat) String() string {
	if f == nil || f.v == nil {
		return ""
	}
	return strconv.FormatFloat(*f.v, 'g', -1, 64)
}

func (f *optFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v = &v
	return nil
}

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	std := fs.String("std", "cn", "AQI standard, cn or usa")
	return fs, std
}

func parse(fs *flag.FlagSet, args []string, std *string, nargs int) (report.Standard, error) {
	if err := fs.Parse(args); err != nil {
		return 0, usageError{err.Error()}
	}
	if fs.NArg() != nargs {
		return 0, usagef("%s takes %d positional argument(s), got %d", fs.Name(), nargs, fs.NArg())
	}
	s, err := report.ParseStandard(*std)
	if err != nil {
		return 0, usageError{err.Error()}
	}
	return s, nil
}

func parseConcentration(s string) (float64, error) {
	if s == "" || s == "null" {
		return 0, errNoData
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("concentration must be a number, got %q", s)
	}
	return v, nil
}

func runIAQI(args []string, w io.Writer) error {
	fs, stdName := newFlagSet("iaqi")
	std, err := parse(fs, args, stdName, 2)
	if err != nil {
		return err
	}

	c, err := parseConcentration(fs.Arg(1))
	if err != nil {
		return err
	}

	var index int
	var ok bool
	switch std {
	case report.China:
		item, err := china.ParseItem(fs.Arg(0))
		if err != nil {
			return err
		}
		index, ok = china.IAQI(item, c)
	case report.USA:
		item, err := usa.ParseItem(fs.Arg(0))
		if err != nil {
			return err
		}
		index, ok = usa.IAQI(item, c)
	}

	if !ok {
		fmt.Fprintln(w, "null")
		return nil
	}
	fmt.Fprintln(w, index)
	return nil
}

// Concentrations every USA report is computed from.
var usaRequired = []string{"pm25", "pm10", "no2", "co", "o3"}

func runAQI(args []string, w io.Writer) error {
	fs, stdName := newFlagSet("aqi")
	dataType := fs.String("type", "hourly", "China data type, hourly or daily")
	device := fs.String("device", "", "device ID to include in the report")

	conc := make(map[string]*optFloat)
	for _, k := range report.Keys {
		conc[k] = &optFloat{}
	}
	fs.Var(conc["pm25"], "pm25", "PM2.5 concentration")
	fs.Var(conc["pm10"], "pm10", "PM10 concentration")
	fs.Var(conc["so2"], "so2", "SO2 concentration (usa: 1-hour)")
	fs.Var(conc["so2"], "so2-1h", "alias for -so2")
	fs.Var(conc["no2"], "no2", "NO2 concentration")
	fs.Var(conc["co"], "co", "CO concentration")
	fs.Var(conc["o3"], "o3", "O3 concentration (usa: 8-hour)")
	fs.Var(conc["o3"], "o3-8h", "alias for -o3")
	fs.Var(conc["so2_24h"], "so2-24h", "24-hour SO2 concentration (usa only)")
	fs.Var(conc["o3_1h"], "o3-1h", "1-hour O3 concentration (usa only)")

	std, err := parse(fs, args, stdName, 0)
	if err != nil {
		return err
	}

	d, err := china.ParseDataType(*dataType)
	if err != nil {
		return usageError{err.Error()}
	}

	if std == report.USA {
		for _, k := range usaRequired {
			if conc[k].v == nil {
				return usagef("usa: -%s is required", k)
			}
		}
	}

	r := report.Reading{DeviceID: *device}
	for k, f := range conc {
		if f.v != nil {
			r.Set(k, *f.v)
		}
	}

	rep, err := report.New(r, std, d)
	if err != nil {
		return err
	}
	b, err := rep.MarshalJSON()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", b)
	return nil
}

func runLevel(args []string, w io.Writer) error {
	fs, stdName := newFlagSet("level")
	std, err := parse(fs, args, stdName, 1)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("AQI must be an integer, got %q", fs.Arg(0))
	}
	if index < 0 || index > aqi.MaxIndex {
		return fmt.Errorf("AQI must be between 0 and %d, got %d", aqi.MaxIndex, index)
	}

	if std == report.USA {
		level := usa.Level(index)
		fmt.Fprintf(w, "%d\t%s\t%s\n", level, level, level.Abbrv())
		return nil
	}

	// The range was checked above, so the level is always present.
	level, _ := china.Level(index)
	fmt.Fprintf(w, "%d\t%s\t%s\n", level, level, level.ChineseName())
	return nil
}

func formatColor(v any) string {
	switch c := v.(type) {
	case aqi.RGB:
		return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
	case aqi.CMYK:
		return fmt.Sprintf("%d %d %d %d", c.C, c.M, c.Y, c.K)
	}
	return fmt.Sprint(v)
}

func runColor(args []string, w io.Writer) error {
	fs, stdName := newFlagSet("color")
	std, err := parse(fs, args, stdName, 2)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("level must be an integer, got %q", fs.Arg(0))
	}
	level := aqi.Level(n)
	if !level.Valid() {
		return fmt.Errorf("level must be between %d and %d, got %d", aqi.LevelGood, aqi.LevelHazardous, n)
	}

	enc, err := aqi.ParseEncoding(fs.Arg(1))
	if err != nil {
		return err
	}

	var c aqi.Color
	if std == report.USA {
		c, _ = usa.Color(level)
	} else {
		c, _ = china.Color(level)
	}
	fmt.Fprintln(w, formatColor(c.Value(enc)))
	return nil
}

func parseSubIndices(args []string) (aqi.SubIndexSet, error) {
	m := make(map[string]*int, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return aqi.SubIndexSet{}, usagef("sub-index must be given as POLLUTANT=IAQI, got %q", arg)
		}
		if v == "null" || v == "" {
			m[k] = nil
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return aqi.SubIndexSet{}, fmt.Errorf("sub-index of %s must be an integer or null, got %q", k, v)
		}
		m[k] = &n
	}
	return aqi.SubIndexSetFromMap(m)
}

func runPrimary(args []string, w io.Writer) error {
	fs, stdName := newFlagSet("primary")
	chinese := fs.Bool("cn", false, "print Chinese pollutant names")
	if err := fs.Parse(args); err != nil {
		return usageError{err.Error()}
	}
	std, err := report.ParseStandard(*stdName)
	if err != nil {
		return usageError{err.Error()}
	}

	iaqi, err := parseSubIndices(fs.Args())
	if err != nil {
		return err
	}

	var ps []aqi.Pollutant
	if std == report.USA {
		ps = usa.PrimaryPollutants(iaqi)
	} else {
		ps = china.PrimaryPollutants(iaqi)
	}

	names := aqi.Labels(ps)
	if *chinese {
		names = aqi.ChineseNames(ps)
	}
	fmt.Fprintln(w, strings.Join(names, ","))
	return nil
}

func runItems(args []string, w io.Writer) error {
	fs, stdName := newFlagSet("items")
	std, err := parse(fs, args, stdName, 0)
	if err != nil {
		return err
	}

	var names []string
	if std == report.USA {
		for _, item := range usa.Items() {
			names = append(names, item.String())
		}
	} else {
		for _, item := range china.Items() {
			names = append(names, item.String())
		}
	}

	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
