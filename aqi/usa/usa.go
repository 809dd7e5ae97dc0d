// Package usa computes Air Quality Index values under the US EPA standard.
//
// Concentrations are truncated to the precision of the published breakpoints
// before lookup, and interpolated indices are truncated toward zero. Rounding
// either step would move some readings into the neighboring category.
package usa

import (
	"math"

	"github.com/mtraver/aqihub/aqi"
)

// IAQI returns the individual index of one pollutant item at concentration c.
// ok is false if c lies outside the range in which the item's table defines an
// index (negative, NaN, or beyond one of the SO2/O3 window limits).
func IAQI(item Item, c float64) (index int, ok bool) {
	if !item.valid() || math.IsNaN(c) {
		return 0, false
	}

	cfg := configs[item]
	conc := aqi.Truncate(c, cfg.scale)

	switch {
	case conc < aqi.Truncate(cfg.definedFrom, cfg.scale):
		return 0, false
	case conc >= aqi.Truncate(cfg.undefinedFrom, cfg.scale):
		return 0, false
	case conc >= aqi.Truncate(cfg.saturateAt, cfg.scale):
		return aqi.MaxIndex, true
	}

	v, found := cfg.table.Scale(cfg.scale).Interpolate(conc)
	if !found {
		return 0, false
	}
	return int(math.Trunc(v)), true
}

// Concentrations holds one reading per averaging window. PM2.5, PM10, NO2, CO
// and 8-hour O3 are always supplied; the other windows are optional and nil
// when not measured.
type Concentrations struct {
	PM25    float64
	PM10    float64
	NO2     float64
	CO      float64
	O3_8H   float64
	SO2_1H  *float64
	SO2_24H *float64
	O3_1H   *float64
}

// optionalIAQI is IAQI for a reading that may be absent.
func optionalIAQI(item Item, c *float64) *int {
	if c == nil {
		return nil
	}
	return aqi.Index(IAQI(item, *c))
}

// higher returns the larger of two optional sub-indices.
func higher(a, b *int) *int {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	}
	return a
}

// AQI computes each pollutant family's sub-index and returns the largest as the
// overall AQI, along with all sub-indices. The SO2 and O3 sub-indices are the
// larger of their two windows. The AQI is nil if no sub-index could be
// computed.
func AQI(c Concentrations) (index *int, iaqi aqi.SubIndexSet) {
	iaqi = aqi.SubIndexSet{
		PM25: aqi.Index(IAQI(PM25_24H, c.PM25)),
		PM10: aqi.Index(IAQI(PM10_24H, c.PM10)),
		SO2:  higher(optionalIAQI(SO2_1H, c.SO2_1H), optionalIAQI(SO2_24H, c.SO2_24H)),
		NO2:  aqi.Index(IAQI(NO2_1H, c.NO2)),
		CO:   aqi.Index(IAQI(CO_8H, c.CO)),
		O3:   higher(aqi.Index(IAQI(O3_8H, c.O3_8H)), optionalIAQI(O3_1H, c.O3_1H)),
	}
	return aqi.Index(iaqi.Max()), iaqi
}

// PrimaryPollutants returns every pollutant whose sub-index equals the largest
// one. Unlike the China rule, a largest sub-index of 50 or less still names
// primary pollutants; only an empty set yields nil.
func PrimaryPollutants(iaqi aqi.SubIndexSet) []aqi.Pollutant {
	return iaqi.AtMax(math.MinInt)
}

// Level returns the level of an AQI. It does not range-check.
func Level(index int) aqi.Level {
	return aqi.Classify(index)
}

// Level 5 is a purple distinct from the China standard's.
var colors = aqi.ColorTable{
	{RGB: aqi.RGB{R: 0, G: 228, B: 0}, CMYK: aqi.CMYK{C: 40, M: 0, Y: 100, K: 0}, RGBHex: "#00E400", CMYKHex: "#99FF00"},
	{RGB: aqi.RGB{R: 255, G: 255, B: 0}, CMYK: aqi.CMYK{C: 0, M: 0, Y: 100, K: 0}, RGBHex: "#FFFF00", CMYKHex: "#FFFF00"},
	{RGB: aqi.RGB{R: 255, G: 126, B: 0}, CMYK: aqi.CMYK{C: 0, M: 52, Y: 100, K: 0}, RGBHex: "#FF7E00", CMYKHex: "#FF7A00"},
	{RGB: aqi.RGB{R: 255, G: 0, B: 0}, CMYK: aqi.CMYK{C: 0, M: 100, Y: 100, K: 0}, RGBHex: "#FF0000", CMYKHex: "#FF0000"},
	{RGB: aqi.RGB{R: 143, G: 63, B: 151}, CMYK: aqi.CMYK{C: 5, M: 58, Y: 0, K: 41}, RGBHex: "#8F3F97", CMYKHex: "#8F3F96"},
	{RGB: aqi.RGB{R: 126, G: 0, B: 35}, CMYK: aqi.CMYK{C: 30, M: 100, Y: 100, K: 30}, RGBHex: "#7E0023", CMYKHex: "#7D0000"},
}

// Color returns the display color of a level. There is no color outside 1..6,
// so ok is false there.
func Color(level aqi.Level) (color aqi.Color, ok bool) {
	return colors.Lookup(level)
}
