package china

import "github.com/mtraver/aqihub/aqi"

// Breakpoint tables from HJ 633. Concentrations are in µg/m³ except CO, which
// is in mg/m³. Adjacent segments share their boundary concentration.
var (
	pm25Table = aqi.Table{
		{0, 35, 0, 50},
		{35, 60, 50, 100},
		{60, 115, 100, 150},
		{115, 150, 150, 200},
		{150, 250, 200, 300},
		{250, 350, 300, 400},
		{350, 500, 400, 500},
	}

	pm10Table = aqi.Table{
		{0, 50, 0, 50},
		{50, 120, 50, 100},
		{120, 250, 100, 150},
		{250, 350, 150, 200},
		{350, 420, 200, 300},
		{420, 500, 300, 400},
		{500, 600, 400, 500},
	}

	so2Table24H = aqi.Table{
		{0, 150, 0, 50},
		{150, 500, 50, 100},
		{500, 650, 100, 150},
		{650, 800, 150, 200},
		{800, 1600, 200, 300},
		{1600, 2100, 300, 400},
		{2100, 2620, 400, 500},
	}

	// Above 800 the 1-hour SO2 index is fixed at 200.
	so2Table1H = aqi.Table{
		{0, 150, 0, 50},
		{150, 500, 50, 100},
		{500, 650, 100, 150},
		{650, 800, 150, 200},
	}

	no2Table24H = aqi.Table{
		{0, 40, 0, 50},
		{40, 80, 50, 100},
		{80, 180, 100, 150},
		{180, 280, 150, 200},
		{280, 565, 200, 300},
		{565, 750, 300, 400},
		{750, 940, 400, 500},
	}

	no2Table1H = aqi.Table{
		{0, 100, 0, 50},
		{100, 200, 50, 100},
		{200, 700, 100, 150},
		{700, 1200, 150, 200},
		{1200, 2340, 200, 300},
		{2340, 3090, 300, 400},
		{3090, 3840, 400, 500},
	}

	coTable1H = aqi.Table{
		{0, 5, 0, 50},
		{5, 10, 50, 100},
		{10, 35, 100, 150},
		{35, 60, 150, 200},
		{60, 90, 200, 300},
		{90, 120, 300, 400},
		{120, 150, 400, 500},
	}

	coTable24H = aqi.Table{
		{0, 2, 0, 50},
		{2, 4, 50, 100},
		{4, 14, 100, 150},
		{14, 24, 150, 200},
		{24, 36, 200, 300},
		{36, 48, 300, 400},
		{48, 60, 400, 500},
	}

	o3Table1H = aqi.Table{
		{0, 160, 0, 50},
		{160, 200, 50, 100},
		{200, 300, 100, 150},
		{300, 400, 150, 200},
		{400, 800, 200, 300},
		{800, 1000, 300, 400},
		{1000, 1200, 400, 500},
	}

	// Above 800 the 8-hour O3 index is fixed at 300.
	o3Table8H = aqi.Table{
		{0, 100, 0, 50},
		{100, 160, 50, 100},
		{160, 215, 100, 150},
		{215, 265, 150, 200},
		{265, 800, 200, 300},
	}
)

var tables = [...]aqi.Table{
	PM25_1H:  pm25Table,
	PM25_24H: pm25Table,
	PM10_1H:  pm10Table,
	PM10_24H: pm10Table,
	SO2_1H:   so2Table1H,
	SO2_24H:  so2Table24H,
	NO2_1H:   no2Table1H,
	NO2_24H:  no2Table24H,
	CO_1H:    coTable1H,
	CO_24H:   coTable24H,
	O3_1H:    o3Table1H,
	O3_8H:    o3Table8H,
}

// ceilings holds items whose concentration above the table's top maps to a
// fixed index instead of the generic 500.
var ceilings = map[Item]int{
	SO2_1H: 200,
	O3_8H:  300,
}
