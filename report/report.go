// Package report evaluates a Reading under an AQI standard and renders the
// result for people and machines.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mtraver/aqihub/aqi"
	"github.com/mtraver/aqihub/aqi/china"
	"github.com/mtraver/aqihub/aqi/usa"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrNoAQI is returned when a report's AQI is absent and something derived
// from it is requested.
var ErrNoAQI = errors.New("report: AQI is absent, cannot get color")

type Standard int

const (
	China Standard = iota
	USA
)

var standardNames = [...]string{
	China: "cn",
	USA:   "usa",
}

func (s Standard) String() string {
	if s < China || s > USA {
		return fmt.Sprintf("Standard(%d)", int(s))
	}
	return standardNames[s]
}

// ParseStandard parses "cn" or "usa".
func ParseStandard(s string) (Standard, error) {
	for std, name := range standardNames {
		if name == s {
			return Standard(std), nil
		}
	}
	return 0, fmt.Errorf("report: standard must be 'cn' or 'usa', got %q", s)
}

// Report is a Reading evaluated under one standard.
type Report struct {
	DeviceID  string
	Timestamp time.Time
	Standard  Standard
	// DataType is the averaging window the China tables were applied to. It's
	// meaningless for the USA standard.
	DataType china.DataType

	AQI     *int
	IAQI    aqi.SubIndexSet
	Primary []aqi.Pollutant
}

// NewChina evaluates r under HJ 633 using the tables for data type d.
func NewChina(r Reading, d china.DataType) Report {
	index, iaqi := china.AQI(china.Concentrations{
		PM25: r.PM25,
		PM10: r.PM10,
		SO2:  r.SO2,
		NO2:  r.NO2,
		CO:   r.CO,
		O3:   r.O3,
	}, d)

	return Report{
		DeviceID:  r.DeviceID,
		Timestamp: r.Timestamp,
		Standard:  China,
		DataType:  d,
		AQI:       index,
		IAQI:      iaqi,
		Primary:   china.PrimaryPollutants(iaqi),
	}
}

// NewUSA evaluates r under the US EPA standard. SO2 is taken as the 1-hour
// value and O3 as the 8-hour value.
func NewUSA(r Reading) Report {
	index, iaqi := usa.AQI(usa.Concentrations{
		PM25:    nanIfNil(r.PM25),
		PM10:    nanIfNil(r.PM10),
		NO2:     nanIfNil(r.NO2),
		CO:      nanIfNil(r.CO),
		O3_8H:   nanIfNil(r.O3),
		SO2_1H:  r.SO2,
		SO2_24H: r.SO2_24H,
		O3_1H:   r.O3_1H,
	})

	return Report{
		DeviceID:  r.DeviceID,
		Timestamp: r.Timestamp,
		Standard:  USA,
		AQI:       index,
		IAQI:      iaqi,
		Primary:   usa.PrimaryPollutants(iaqi),
	}
}

// New evaluates r under std. d is ignored for the USA standard.
func New(r Reading, std Standard, d china.DataType) (Report, error) {
	switch std {
	case China:
		return NewChina(r, d), nil
	case USA:
		return NewUSA(r), nil
	}
	return Report{}, fmt.Errorf("report: unknown standard %v", std)
}

// Level returns the level of the report's AQI. ok is false if the AQI is absent.
func (r Report) Level() (level aqi.Level, ok bool) {
	if r.AQI == nil {
		return 0, false
	}
	if r.Standard == USA {
		return usa.Level(*r.AQI), true
	}
	return china.Level(*r.AQI)
}

// Category returns the English category name of the report's level, or the
// empty string if the AQI is absent.
func (r Report) Category() string {
	level, ok := r.Level()
	if !ok {
		return ""
	}
	return level.String()
}

// CategoryCN is Category with the HJ 633 Chinese category name.
func (r Report) CategoryCN() string {
	level, ok := r.Level()
	if !ok {
		return ""
	}
	return level.ChineseName()
}

// Colors returns the display color of the report's level in every encoding.
func (r Report) Colors() (aqi.Color, error) {
	level, ok := r.Level()
	if !ok {
		return aqi.Color{}, ErrNoAQI
	}

	var c aqi.Color
	if r.Standard == USA {
		c, ok = usa.Color(level)
	} else {
		c, ok = china.Color(level)
	}
	if !ok {
		return aqi.Color{}, fmt.Errorf("report: no color for level %d", int(level))
	}
	return c, nil
}

// Color returns the display color in encoding e: an aqi.RGB, an aqi.CMYK or a
// hex string.
func (r Report) Color(e aqi.Encoding) (any, error) {
	c, err := r.Colors()
	if err != nil {
		return nil, err
	}
	return c.Value(e), nil
}

// PrimaryPollutants returns the labels of the primary pollutants.
func (r Report) PrimaryPollutants() []string {
	return aqi.Labels(r.Primary)
}

// PrimaryPollutantsCN returns the Chinese names of the primary pollutants.
func (r Report) PrimaryPollutantsCN() []string {
	return aqi.ChineseNames(r.Primary)
}

func (r Report) String() string {
	std := r.Standard.String()
	if r.Standard == China {
		std += "/" + r.DataType.String()
	}

	index := "AQI=-"
	if r.AQI != nil {
		index = fmt.Sprintf("AQI=%d (%s)", *r.AQI, r.Category())
	}

	primary := "-"
	if len(r.Primary) > 0 {
		primary = strings.Join(r.PrimaryPollutants(), ",")
	}

	return fmt.Sprintf("%s %s %s primary=%s [%v] %s", r.DeviceID, std, index, primary, r.IAQI, r.Timestamp.Format(time.RFC3339))
}

func optionalInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func stringList(s []string) []any {
	l := make([]any, len(s))
	for i, v := range s {
		l[i] = v
	}
	return l
}

func colorMap(c aqi.Color) map[string]any {
	return map[string]any{
		"rgb":      []any{c.RGB.R, c.RGB.G, c.RGB.B},
		"cmyk":     []any{c.CMYK.C, c.CMYK.M, c.CMYK.Y, c.CMYK.K},
		"rgb_hex":  c.RGBHex,
		"cmyk_hex": c.CMYKHex,
	}
}

// Struct renders the report as a google.protobuf.Struct. Absent values are
// present as null rather than omitted.
func (r Report) Struct() (*structpb.Struct, error) {
	iaqi := make(map[string]any, len(aqi.Pollutants))
	for k, v := range r.IAQI.Map() {
		iaqi[k] = optionalInt(v)
	}

	m := map[string]any{
		"device_id":          r.DeviceID,
		"standard":           r.Standard.String(),
		"aqi":                optionalInt(r.AQI),
		"iaqi":               iaqi,
		"primary_pollutants": stringList(r.PrimaryPollutants()),
		"level":              nil,
		"category":           nil,
		"color":              nil,
	}
	if !r.Timestamp.IsZero() {
		m["timestamp"] = r.Timestamp.UTC().Format(time.RFC3339)
	}
	if level, ok := r.Level(); ok {
		m["level"] = int(level)
		m["category"] = level.String()
	}
	if c, err := r.Colors(); err == nil {
		m["color"] = colorMap(c)
	}

	if r.Standard == China {
		m["data_type"] = r.DataType.String()
		m["primary_pollutants_cn"] = stringList(r.PrimaryPollutantsCN())
		m["category_cn"] = nil
		if cn := r.CategoryCN(); cn != "" {
			m["category_cn"] = cn
		}
	}

	return structpb.NewStruct(m)
}

// MarshalJSON renders the report's Struct as JSON.
func (r Report) MarshalJSON() ([]byte, error) {
	s, err := r.Struct()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}
