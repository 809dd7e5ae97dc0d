package aqi

import "fmt"

// Level is an AQI severity level from 1 (best) to 6 (worst).
type Level int

const (
	LevelGood Level = iota + 1
	LevelModerate
	LevelUnhealthySensitive
	LevelUnhealthy
	LevelVeryUnhealthy
	LevelHazardous
)

// Upper AQI bound of each level; anything above the last bound is LevelHazardous.
var levelBounds = [...]int{50, 100, 150, 200, 300}

// Classify maps an AQI to its level. It does not range-check: negative values
// classify as LevelGood and values above 500 as LevelHazardous.
func Classify(aqi int) Level {
	for i, bound := range levelBounds {
		if aqi <= bound {
			return Level(i + 1)
		}
	}
	return LevelHazardous
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= LevelGood && l <= LevelHazardous
}

var (
	levelNames = [...]string{
		LevelGood:               "Good",
		LevelModerate:           "Moderate",
		LevelUnhealthySensitive: "Unhealthy for Sensitive Groups",
		LevelUnhealthy:          "Unhealthy",
		LevelVeryUnhealthy:      "Very Unhealthy",
		LevelHazardous:          "Hazardous",
	}

	levelAbbrvs = [...]string{
		LevelGood:               "G",
		LevelModerate:           "M",
		LevelUnhealthySensitive: "USG",
		LevelUnhealthy:          "U",
		LevelVeryUnhealthy:      "VU",
		LevelHazardous:          "H",
	}

	levelNamesCN = [...]string{
		LevelGood:               "优",
		LevelModerate:           "良",
		LevelUnhealthySensitive: "轻度污染",
		LevelUnhealthy:          "中度污染",
		LevelVeryUnhealthy:      "重度污染",
		LevelHazardous:          "严重污染",
	}
)

// String returns the EPA category name of the level.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Abbrv returns a short form of the EPA category name.
func (l Level) Abbrv() string {
	if !l.Valid() {
		return ""
	}
	return levelAbbrvs[l]
}

// ChineseName returns the HJ 633 category name of the level.
func (l Level) ChineseName() string {
	if !l.Valid() {
		return ""
	}
	return levelNamesCN[l]
}
