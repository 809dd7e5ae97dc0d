// Binary aqicsv computes the AQI of every row of a CSV file of concentrations.
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mtraver/aqihub/aqi/china"
	"github.com/mtraver/aqihub/db"
	"github.com/mtraver/aqihub/report"
	"github.com/mtraver/envtools"
)

const timeFormat = "2006-01-02T15:04:05.999999"

// Flags.
var (
	std       string
	dataType  string
	deviceID  string
	influxURL string
	org       string
	bucket    string
)

func init() {
	flag.StringVar(&std, "std", "cn", "AQI standard, cn or usa")
	flag.StringVar(&dataType, "type", "hourly", "China data type, hourly or daily")
	flag.StringVar(&deviceID, "device", "", "device ID to attach to each report")
	flag.StringVar(&influxURL, "influx", "", "if given, also write the reports to the InfluxDB server at this URL.\nThe token is read from the INFLUXDB_TOKEN environment variable.")
	flag.StringVar(&org, "org", "", "InfluxDB organization")
	flag.StringVar(&bucket, "bucket", "", "InfluxDB bucket")

	flag.Usage = func() {
		message := `usage: aqicsv [options] csv_file

Reads rows of concentrations from a CSV file and writes them to stdout with
three columns appended: aqi, level and primary. An absent AQI is written as
an empty cell.

The first line of the CSV file must be column headers. The first column is
the timestamp and the rest are any of

  %s

The timestamp must be formatted like this: %s (or RFC 3339).
An empty cell means the concentration was not measured.

Positional Arguments (required):
  csv_file
	path to the CSV file, or - for stdin

Options:
`

		fmt.Fprintf(flag.CommandLine.Output(), message, strings.Join(report.Keys, ", "), timeFormat)
		flag.PrintDefaults()
	}
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timeFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func checkHeader(header []string) error {
	if len(header) < 2 {
		return errors.New("header must have at least 2 columns (timestamp and one concentration)")
	}
	if header[0] != "timestamp" {
		return fmt.Errorf("first column must be timestamp, got %q", header[0])
	}

	var r report.Reading
	for _, k := range header[1:] {
		if _, ok := r.Get(k); ok {
			return fmt.Errorf("duplicate column %q", k)
		}
		// Set validates the key and marks it seen.
		if err := r.Set(k, 0); err != nil {
			return err
		}
	}
	return nil
}

func lineToReading(header, line []string, deviceID string) (report.Reading, error) {
	if len(line) != len(header) {
		return report.Reading{}, fmt.Errorf("line has %d fields, header has %d", len(line), len(header))
	}

	timestamp, err := parseTimestamp(line[0])
	if err != nil {
		return report.Reading{}, err
	}

	r := report.Reading{
		DeviceID:  deviceID,
		Timestamp: timestamp,
	}
	for i, s := range line[1:] {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return report.Reading{}, fmt.Errorf("column %s: %v", header[i+1], err)
		}
		if err := r.Set(header[i+1], v); err != nil {
			return report.Reading{}, err
		}
	}

	return r, nil
}

func reportColumns(rep report.Report) []string {
	if rep.AQI == nil {
		return []string{"", "", ""}
	}

	level, _ := rep.Level()
	return []string{
		strconv.Itoa(*rep.AQI),
		strconv.Itoa(int(level)),
		strings.Join(rep.PrimaryPollutants(), " "),
	}
}

func convert(in io.Reader, out io.Writer, s report.Standard, d china.DataType, deviceID string) ([]report.Report, error) {
	reader := csv.NewReader(bufio.NewReader(in))
	writer := csv.NewWriter(out)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty CSV file")
	} else if err != nil {
		return nil, err
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}
	if err := writer.Write(append(header, "aqi", "level", "primary")); err != nil {
		return nil, err
	}

	var reports []report.Report
	for n := 2; ; n++ {
		line, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		r, err := lineToReading(header, line, deviceID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", n, err)
		}

		rep, err := report.New(r, s, d)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)

		if err := writer.Write(append(line, reportColumns(rep)...)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return reports, writer.Error()
}

func main() {
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	s, err := report.ParseStandard(std)
	if err != nil {
		fmt.Printf("argument error: %v\n", err)
		os.Exit(2)
	}
	d, err := china.ParseDataType(dataType)
	if err != nil {
		fmt.Printf("argument error: %v\n", err)
		os.Exit(2)
	}
	if influxURL != "" && (org == "" || bucket == "") {
		fmt.Println("argument error: org and bucket flags must be given with influx")
		os.Exit(2)
	}

	in := os.Stdin
	if name := flag.Arg(0); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	reports, err := convert(in, os.Stdout, s, d, deviceID)
	if err != nil {
		log.Fatal(err)
	}

	if influxURL != "" {
		influx := db.NewInfluxDB(influxURL, envtools.MustGetenv("INFLUXDB_TOKEN"), org, bucket)
		if err := influx.Save(context.Background(), reports...); err != nil {
			log.Fatalf("Failed to save to InfluxDB: %v", err)
		}
		log.Printf("Saved %d report(s) to InfluxDB", len(reports))
	}
}
