// Package china computes Air Quality Index values under China's ambient air
// quality standard (GB 3095) and its AQI technical regulation (HJ 633).
package china

import (
	"fmt"
	"math"

	"github.com/mtraver/aqihub/aqi"
)

// primaryFloor is the sub-index at or below which no primary pollutant is named.
const primaryFloor = 50

// IAQI returns the individual index of one pollutant item at concentration c.
// ok is false if c is negative or NaN.
//
// The interpolated index is rounded up. Concentrations above the item's table
// saturate at 500, except SO2_1H (200) and O3_8H (300).
func IAQI(item Item, c float64) (index int, ok bool) {
	if !item.valid() || c < 0 || math.IsNaN(c) {
		return 0, false
	}

	t := tables[item]
	if fixed, has := ceilings[item]; has && c > t.MaxConc() {
		return fixed, true
	}

	v, found := t.Linear(c)
	if !found {
		return aqi.MaxIndex, true
	}
	return int(math.Ceil(v)), true
}

// DataType selects which averaging-window table applies to every pollutant.
type DataType int

const (
	Hourly DataType = iota
	Daily
)

func (d DataType) String() string {
	switch d {
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

// ParseDataType parses "hourly" or "daily".
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "hourly":
		return Hourly, nil
	case "daily":
		return Daily, nil
	}
	return 0, fmt.Errorf("china: data type must be 'hourly' or 'daily', got %q", s)
}

// Item returns the item used for pollutant p under data type d.
func (d DataType) Item(p aqi.Pollutant) Item {
	// Items are declared in (1-hour, longer window) pairs per pollutant.
	item := Item(2 * int(p))
	if d == Daily {
		item++
	}
	return item
}

// Concentrations holds one optional reading per pollutant. A nil field means
// the pollutant was not measured.
type Concentrations struct {
	PM25 *float64
	PM10 *float64
	SO2  *float64
	NO2  *float64
	CO   *float64
	O3   *float64
}

func (c Concentrations) get(p aqi.Pollutant) *float64 {
	switch p {
	case aqi.PM25:
		return c.PM25
	case aqi.PM10:
		return c.PM10
	case aqi.SO2:
		return c.SO2
	case aqi.NO2:
		return c.NO2
	case aqi.CO:
		return c.CO
	case aqi.O3:
		return c.O3
	}
	return nil
}

// AQI computes every present pollutant's sub-index using the tables selected by
// d and returns the largest as the overall AQI, along with all sub-indices. The
// AQI is nil if no sub-index could be computed.
func AQI(c Concentrations, d DataType) (index *int, iaqi aqi.SubIndexSet) {
	for _, p := range aqi.Pollutants {
		v := c.get(p)
		if v == nil {
			continue
		}
		if sub, computed := IAQI(d.Item(p), *v); computed {
			iaqi.Set(p, sub)
		}
	}

	return aqi.Index(iaqi.Max()), iaqi
}

// PrimaryPollutants returns every pollutant whose sub-index equals the largest
// one. It returns nil when no sub-index is present or the largest is 50 or less.
func PrimaryPollutants(iaqi aqi.SubIndexSet) []aqi.Pollutant {
	return iaqi.AtMax(primaryFloor)
}

// Level returns the level of an AQI. ok is false if the AQI is outside 0..500.
func Level(index int) (level aqi.Level, ok bool) {
	if index < 0 || index > aqi.MaxIndex {
		return 0, false
	}
	return aqi.Classify(index), true
}

var colors = aqi.ColorTable{
	{RGB: aqi.RGB{R: 0, G: 228, B: 0}, CMYK: aqi.CMYK{C: 40, M: 0, Y: 100, K: 0}, RGBHex: "#00E400", CMYKHex: "#99FF00"},
	{RGB: aqi.RGB{R: 255, G: 255, B: 0}, CMYK: aqi.CMYK{C: 0, M: 0, Y: 100, K: 0}, RGBHex: "#FFFF00", CMYKHex: "#FFFF00"},
	{RGB: aqi.RGB{R: 255, G: 126, B: 0}, CMYK: aqi.CMYK{C: 0, M: 52, Y: 100, K: 0}, RGBHex: "#FF7E00", CMYKHex: "#FF7A00"},
	{RGB: aqi.RGB{R: 255, G: 0, B: 0}, CMYK: aqi.CMYK{C: 0, M: 100, Y: 100, K: 0}, RGBHex: "#FF0000", CMYKHex: "#FF0000"},
	{RGB: aqi.RGB{R: 153, G: 0, B: 76}, CMYK: aqi.CMYK{C: 10, M: 100, Y: 40, K: 30}, RGBHex: "#99004C", CMYKHex: "#A0006B"},
	{RGB: aqi.RGB{R: 126, G: 0, B: 35}, CMYK: aqi.CMYK{C: 30, M: 100, Y: 100, K: 30}, RGBHex: "#7E0023", CMYKHex: "#7C0000"},
}

// Color returns the display color of a level. ok is false if the level is
// outside 1..6.
func Color(level aqi.Level) (color aqi.Color, ok bool) {
	return colors.Lookup(level)
}
