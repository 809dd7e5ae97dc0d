// Package dummy provides a sensor that needs no hardware. It reports the same
// concentrations every time, which is handy for dry runs.
package dummy

import (
	"log"

	"github.com/mtraver/aqihub/report"
)

type Dummy struct {
	// Values are set on every reading, keyed by report.Keys. If nil,
	// DefaultValues is used.
	Values map[string]float64
}

// DefaultValues are moderate urban concentrations in China units.
var DefaultValues = map[string]float64{
	"pm25": 45,
	"pm10": 80,
	"so2":  35,
	"no2":  85,
	"co":   3,
	"o3":   140,
}

func (d Dummy) Init() error {
	log.Printf("DUMMY SENSOR INIT")
	return nil
}

func (d Dummy) Sense(r *report.Reading) error {
	log.Printf("DUMMY SENSOR SENSE")

	values := d.Values
	if values == nil {
		values = DefaultValues
	}
	for k, v := range values {
		if err := r.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (d Dummy) Shutdown() error {
	log.Printf("DUMMY SENSOR SHUTDOWN")
	return nil
}
