package aqi

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		aqi  int
		want Level
	}{
		{-10, LevelGood},
		{0, LevelGood},
		{50, LevelGood},
		{51, LevelModerate},
		{100, LevelModerate},
		{101, LevelUnhealthySensitive},
		{150, LevelUnhealthySensitive},
		{151, LevelUnhealthy},
		{200, LevelUnhealthy},
		{201, LevelVeryUnhealthy},
		{300, LevelVeryUnhealthy},
		{301, LevelHazardous},
		{500, LevelHazardous},
		{650, LevelHazardous},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.aqi), func(t *testing.T) {
			if got := Classify(c.aqi); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestClassifyContiguous(t *testing.T) {
	prev := Classify(0)
	for aqi := 1; aqi <= MaxIndex; aqi++ {
		got := Classify(aqi)
		if got != prev && got != prev+1 {
			t.Fatalf("level jumped from %v to %v at %d", prev, got, aqi)
		}
		prev = got
	}
	if prev != LevelHazardous {
		t.Errorf("got %v at %d, want %v", prev, MaxIndex, LevelHazardous)
	}
}

func TestLevelString(t *testing.T) {
	cases := []struct {
		aqi  int
		want string
	}{
		{-10, "Good"},
		{0, "Good"},
		{27, "Good"},
		{50, "Good"},
		{55, "Moderate"},
		{100, "Moderate"},
		{150, "Unhealthy for Sensitive Groups"},
		{200, "Unhealthy"},
		{300, "Very Unhealthy"},
		{400, "Hazardous"},
		{500, "Hazardous"},
		{650, "Hazardous"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.aqi), func(t *testing.T) {
			if got := Classify(c.aqi).String(); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLevelAbbrv(t *testing.T) {
	cases := []struct {
		aqi  int
		want string
	}{
		{-10, "G"},
		{0, "G"},
		{27, "G"},
		{50, "G"},
		{55, "M"},
		{100, "M"},
		{150, "USG"},
		{200, "U"},
		{300, "VU"},
		{400, "H"},
		{500, "H"},
		{650, "H"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.aqi), func(t *testing.T) {
			if got := Classify(c.aqi).Abbrv(); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLevelNames(t *testing.T) {
	if got := LevelVeryUnhealthy.ChineseName(); got != "重度污染" {
		t.Errorf("got %q, want %q", got, "重度污染")
	}
	if got := Level(7).String(); got != "Level(7)" {
		t.Errorf("got %q, want %q", got, "Level(7)")
	}
	if got := Level(0).Abbrv(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
