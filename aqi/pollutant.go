package aqi

import "fmt"

// Pollutant identifies a pollutant family independent of averaging window.
type Pollutant int

const (
	PM25 Pollutant = iota
	PM10
	SO2
	NO2
	CO
	O3
)

// Pollutants lists every family in reporting order.
var Pollutants = []Pollutant{PM25, PM10, SO2, NO2, CO, O3}

var (
	pollutantLabels = [...]string{
		PM25: "PM2.5",
		PM10: "PM10",
		SO2:  "SO2",
		NO2:  "NO2",
		CO:   "CO",
		O3:   "O3",
	}

	pollutantNamesCN = [...]string{
		PM25: "细颗粒物",
		PM10: "可吸入颗粒物",
		SO2:  "二氧化硫",
		NO2:  "二氧化氮",
		CO:   "一氧化碳",
		O3:   "臭氧",
	}
)

func (p Pollutant) valid() bool {
	return p >= PM25 && p <= O3
}

// String returns the pollutant's label, e.g. "PM2.5".
func (p Pollutant) String() string {
	if !p.valid() {
		return fmt.Sprintf("Pollutant(%d)", int(p))
	}
	return pollutantLabels[p]
}

// ChineseName returns the pollutant's name as used in Chinese reporting.
func (p Pollutant) ChineseName() string {
	if !p.valid() {
		return ""
	}
	return pollutantNamesCN[p]
}

// ParsePollutant maps a label such as "PM2.5" back to its Pollutant.
func ParsePollutant(label string) (Pollutant, bool) {
	for _, p := range Pollutants {
		if pollutantLabels[p] == label {
			return p, true
		}
	}
	return 0, false
}

// Labels converts pollutants to their labels.
func Labels(ps []Pollutant) []string {
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.String()
	}
	return labels
}

// ChineseNames converts pollutants to their Chinese names.
func ChineseNames(ps []Pollutant) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.ChineseName()
	}
	return names
}
