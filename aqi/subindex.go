package aqi

import (
	"fmt"
	"sort"
	"strings"
)

// SubIndexSet holds the individual index (IAQI) of each pollutant family. A nil
// field means the pollutant was not measured or its index could not be
// computed; nil fields take no part in aggregation.
type SubIndexSet struct {
	PM25 *int
	PM10 *int
	SO2  *int
	NO2  *int
	CO   *int
	O3   *int
}

// Index returns a pointer to v, or nil if ok is false. It adapts the
// (value, ok) results of the IAQI calculators to SubIndexSet fields.
func Index(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func (s *SubIndexSet) field(p Pollutant) **int {
	switch p {
	case PM25:
		return &s.PM25
	case PM10:
		return &s.PM10
	case SO2:
		return &s.SO2
	case NO2:
		return &s.NO2
	case CO:
		return &s.CO
	case O3:
		return &s.O3
	}
	return nil
}

// Get returns the sub-index of p and whether it is present.
func (s SubIndexSet) Get(p Pollutant) (int, bool) {
	f := s.field(p)
	if f == nil || *f == nil {
		return 0, false
	}
	return **f, true
}

// Set stores v as the sub-index of p.
func (s *SubIndexSet) Set(p Pollutant, v int) {
	if f := s.field(p); f != nil {
		*f = &v
	}
}

// Max returns the largest present sub-index. ok is false if none is present.
func (s SubIndexSet) Max() (hi int, ok bool) {
	for _, p := range Pollutants {
		v, present := s.Get(p)
		if !present {
			continue
		}
		if !ok || v > hi {
			hi = v
			ok = true
		}
	}
	return hi, ok
}

// AtMax returns every pollutant whose sub-index equals the maximum, in
// reporting order. Ties are all returned. If no sub-index is present, or the
// maximum does not exceed floor, the result is empty.
func (s SubIndexSet) AtMax(floor int) []Pollutant {
	hi, ok := s.Max()
	if !ok || hi <= floor {
		return nil
	}

	var ps []Pollutant
	for _, p := range Pollutants {
		if v, present := s.Get(p); present && v == hi {
			ps = append(ps, p)
		}
	}
	return ps
}

// Map returns the set keyed by pollutant label. Every label is present; absent
// sub-indices map to nil.
func (s SubIndexSet) Map() map[string]*int {
	m := make(map[string]*int, len(Pollutants))
	for _, p := range Pollutants {
		m[p.String()] = Index(s.Get(p))
	}
	return m
}

// SubIndexSetFromMap builds a SubIndexSet from a map keyed by pollutant label.
// Missing keys and nil values are absent. Unknown keys are an error.
func SubIndexSetFromMap(m map[string]*int) (SubIndexSet, error) {
	var s SubIndexSet
	var unknown []string
	for k, v := range m {
		p, ok := ParsePollutant(k)
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		if v != nil {
			s.Set(p, *v)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return SubIndexSet{}, fmt.Errorf("aqi: unknown pollutant key(s) %q; valid keys are %s",
			unknown, strings.Join(Labels(Pollutants), ", "))
	}
	return s, nil
}

func (s SubIndexSet) String() string {
	parts := make([]string, len(Pollutants))
	for i, p := range Pollutants {
		if v, ok := s.Get(p); ok {
			parts[i] = fmt.Sprintf("%s:%d", p, v)
		} else {
			parts[i] = fmt.Sprintf("%s:-", p)
		}
	}
	return strings.Join(parts, " ")
}
