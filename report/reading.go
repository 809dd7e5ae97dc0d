package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Keys of the concentration fields of a Reading, in the order they're
// printed and written to CSV. The first six are one per pollutant, in
// aqi.Pollutants order.
var Keys = []string{"pm25", "pm10", "so2", "no2", "co", "o3", "so2_24h", "o3_1h"}

// Reading is a set of pollutant concentrations taken by one device at one time.
// A nil field was not measured.
//
// Units follow the standard the reading is evaluated under. China: µg/m³
// for everything except CO, which is mg/m³. USA: µg/m³ for PM, ppb for SO2 and
// NO2, ppm for CO and O3.
type Reading struct {
	DeviceID  string    `json:"device_id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`

	PM25 *float64 `json:"pm25,omitempty"`
	PM10 *float64 `json:"pm10,omitempty"`
	SO2  *float64 `json:"so2,omitempty"`
	NO2  *float64 `json:"no2,omitempty"`
	CO   *float64 `json:"co,omitempty"`
	O3   *float64 `json:"o3,omitempty"`

	// Extra averaging windows. Only the USA standard uses them; SO2 is then
	// the 1-hour value and O3 the 8-hour value.
	SO2_24H *float64 `json:"so2_24h,omitempty"`
	O3_1H   *float64 `json:"o3_1h,omitempty"`
}

func (r *Reading) field(key string) (**float64, bool) {
	switch key {
	case "pm25":
		return &r.PM25, true
	case "pm10":
		return &r.PM10, true
	case "so2":
		return &r.SO2, true
	case "no2":
		return &r.NO2, true
	case "co":
		return &r.CO, true
	case "o3":
		return &r.O3, true
	case "so2_24h":
		return &r.SO2_24H, true
	case "o3_1h":
		return &r.O3_1H, true
	}
	return nil, false
}

// Set sets the concentration with the given key.
func (r *Reading) Set(key string, v float64) error {
	f, ok := r.field(key)
	if !ok {
		return fmt.Errorf("report: unknown concentration key %q; valid keys are %s", key, strings.Join(Keys, ", "))
	}
	*f = &v
	return nil
}

// Get returns the concentration with the given key. ok is false if the key is
// unknown or the value wasn't measured.
func (r Reading) Get(key string) (v float64, ok bool) {
	f, known := r.field(key)
	if !known || *f == nil {
		return 0, false
	}
	return **f, true
}

// ValueMap returns the measured concentrations keyed by Keys.
func (r Reading) ValueMap() map[string]float64 {
	m := make(map[string]float64)
	for _, k := range Keys {
		if v, ok := r.Get(k); ok {
			m[k] = v
		}
	}
	return m
}

// Particulates returns a copy of r with only PM2.5 and PM10, the two
// concentrations whose unit is the same under both standards.
func (r Reading) Particulates() Reading {
	return Reading{
		DeviceID:  r.DeviceID,
		Timestamp: r.Timestamp,
		PM25:      r.PM25,
		PM10:      r.PM10,
	}
}

func (r Reading) String() string {
	parts := []string{r.DeviceID}
	for _, k := range Keys {
		if v, ok := r.Get(k); ok {
			parts = append(parts, k+"="+strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	parts = append(parts, r.Timestamp.Format(time.RFC3339))
	return strings.Join(parts, " ")
}

// Mean averages each concentration over the readings that measured it. The
// result carries the device ID of the first reading and the latest timestamp.
func Mean(readings []Reading) Reading {
	var res Reading
	if len(readings) == 0 {
		return res
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range readings {
		if r.Timestamp.After(res.Timestamp) {
			res.Timestamp = r.Timestamp
		}
		for k, v := range r.ValueMap() {
			sums[k] += v
			counts[k]++
		}
	}

	res.DeviceID = readings[0].DeviceID
	for k, sum := range sums {
		// Keys in sums all come from ValueMap, so Set can't fail.
		res.Set(k, sum/float64(counts[k]))
	}
	return res
}

// nanIfNil is used for concentrations the USA calculator requires. NaN is
// never in a table's domain, so a missing value yields an absent sub-index.
func nanIfNil(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
