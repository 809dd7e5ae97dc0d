package usa

import (
	"math"

	"github.com/mtraver/aqihub/aqi"
)

// itemConfig describes how one item's concentration is looked up. All bounds
// are in the item's native unit and are scaled and truncated together with the
// concentration before comparison.
type itemConfig struct {
	table aqi.Table
	// scale is 10^d where d is the number of decimals the published
	// breakpoints carry.
	scale float64
	// Concentrations below definedFrom have no index in this table.
	definedFrom float64
	// Concentrations at or above undefinedFrom have no index in this table.
	undefinedFrom float64
	// Concentrations at or above saturateAt have index 500.
	saturateAt float64
}

var none = math.Inf(1)

// Breakpoints from the EPA AQI technical assistance document (2024 PM2.5
// revision). PM in µg/m³, SO2 and NO2 in ppb, CO and O3 in ppm.
var configs = [...]itemConfig{
	PM25_24H: {
		table: aqi.Table{
			{0, 9.0, 0, 50},
			{9.1, 35.4, 51, 100},
			{35.5, 55.4, 101, 150},
			{55.5, 125.4, 151, 200},
			{125.5, 225.4, 201, 300},
			{225.5, 325.4, 301, 500},
		},
		scale:         10,
		undefinedFrom: none,
		saturateAt:    325.4,
	},
	PM10_24H: {
		table: aqi.Table{
			{0, 54, 0, 50},
			{55, 154, 51, 100},
			{155, 254, 101, 150},
			{255, 354, 151, 200},
			{355, 424, 201, 300},
			{425, 604, 301, 500},
		},
		scale:         1,
		undefinedFrom: none,
		saturateAt:    604,
	},
	// 1-hour SO2 does not define indices of 200 and above; those come from
	// the 24-hour table.
	SO2_1H: {
		table: aqi.Table{
			{0, 35, 0, 50},
			{36, 75, 51, 100},
			{76, 185, 101, 150},
			{186, 304, 151, 200},
		},
		scale:         1,
		undefinedFrom: 305,
		saturateAt:    none,
	},
	SO2_24H: {
		table: aqi.Table{
			{305, 604, 201, 300},
			{605, 1004, 301, 500},
		},
		scale:         1,
		definedFrom:   305,
		undefinedFrom: none,
		saturateAt:    1004,
	},
	NO2_1H: {
		table: aqi.Table{
			{0, 53, 0, 50},
			{54, 100, 51, 100},
			{101, 360, 101, 150},
			{361, 649, 151, 200},
			{650, 1249, 201, 300},
			{1250, 2049, 301, 500},
		},
		scale:         1,
		undefinedFrom: none,
		saturateAt:    1249,
	},
	CO_8H: {
		table: aqi.Table{
			{0, 4.4, 0, 50},
			{4.4, 9.4, 51, 100},
			{9.5, 12.4, 101, 150},
			{12.5, 15.4, 151, 200},
			{15.5, 30.4, 201, 300},
			{30.5, 50.4, 301, 500},
		},
		scale:         10,
		undefinedFrom: none,
		saturateAt:    50.4,
	},
	// 8-hour O3 is not defined from 0.201 ppm; the 1-hour table applies.
	O3_8H: {
		table: aqi.Table{
			{0, 0.054, 0, 50},
			{0.054, 0.070, 51, 100},
			{0.071, 0.085, 101, 150},
			{0.086, 0.105, 151, 200},
			{0.106, 0.200, 201, 300},
		},
		scale:         1000,
		undefinedFrom: 0.201,
		saturateAt:    none,
	},
	// 1-hour O3 is only defined from 0.125 ppm; below that the 8-hour table
	// applies.
	O3_1H: {
		table: aqi.Table{
			{0.125, 0.164, 101, 150},
			{0.165, 0.204, 151, 200},
			{0.205, 0.404, 201, 300},
			{0.405, 0.604, 301, 500},
		},
		scale:         1000,
		definedFrom:   0.125,
		undefinedFrom: none,
		saturateAt:    0.604,
	},
}
