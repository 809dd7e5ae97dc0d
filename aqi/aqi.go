// Package aqi holds the pieces shared by the China and USA Air Quality Index
// calculators: breakpoint tables and their interpolation, pollutant families,
// sub-index sets, level bands and level colors.
//
// The standard-specific rules live in the china and usa subpackages.
package aqi

import "math"

// MaxIndex is the highest index value any table defines.
const MaxIndex = 500

// Breakpoint is one linear segment of a concentration-to-index table.
type Breakpoint struct {
	LowConc   float64
	HighConc  float64
	LowIndex  float64
	HighIndex float64
}

// Contains reports whether c lies in [LowConc, HighConc].
func (b Breakpoint) Contains(c float64) bool {
	return c >= b.LowConc && c <= b.HighConc
}

// Interpolate maps c linearly from the segment's concentration range onto its
// index range, forming the product before the division. It suits segments
// whose concentrations have been scaled to whole numbers (see Scale).
func (b Breakpoint) Interpolate(c float64) float64 {
	// The explicit conversions keep the compiler from fusing the operations.
	num := float64((b.HighIndex - b.LowIndex) * (c - b.LowConc))
	return float64(num/(b.HighConc-b.LowConc)) + b.LowIndex
}

// Slope is the index change per unit of concentration.
func (b Breakpoint) Slope() float64 {
	return (b.HighIndex - b.LowIndex) / (b.HighConc - b.LowConc)
}

// Linear maps c onto the index range as Slope()*(c-LowConc) + LowIndex, in
// that order. It is the form for unscaled concentrations that are rounded up
// afterwards.
func (b Breakpoint) Linear(c float64) float64 {
	return float64(b.Slope()*(c-b.LowConc)) + b.LowIndex
}

// Scale returns the segment with both concentration bounds multiplied by
// factor and truncated toward zero.
func (b Breakpoint) Scale(factor float64) Breakpoint {
	return Breakpoint{
		LowConc:   Truncate(b.LowConc, factor),
		HighConc:  Truncate(b.HighConc, factor),
		LowIndex:  b.LowIndex,
		HighIndex: b.HighIndex,
	}
}

// Table is an ordered list of segments, ascending by concentration.
type Table []Breakpoint

// Find returns the first segment containing c. Adjacent segments that share a
// boundary concentration therefore resolve that boundary to the lower segment.
func (t Table) Find(c float64) (Breakpoint, bool) {
	for _, b := range t {
		if b.Contains(c) {
			return b, true
		}
	}
	return Breakpoint{}, false
}

// Interpolate looks up c and interpolates it. ok is false if no segment
// contains c.
func (t Table) Interpolate(c float64) (index float64, ok bool) {
	b, ok := t.Find(c)
	if !ok {
		return 0, false
	}
	return b.Interpolate(c), true
}

// Linear looks up c and applies Breakpoint.Linear. ok is false if no segment
// contains c.
func (t Table) Linear(c float64) (index float64, ok bool) {
	b, ok := t.Find(c)
	if !ok {
		return 0, false
	}
	return b.Linear(c), true
}

// MaxConc is the highest concentration covered by the table.
func (t Table) MaxConc() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].HighConc
}

// MaxIndex is the index value at the table's highest concentration.
func (t Table) MaxIndex() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].HighIndex
}

// Scale applies Breakpoint.Scale to every segment.
func (t Table) Scale(factor float64) Table {
	scaled := make(Table, len(t))
	for i, b := range t {
		scaled[i] = b.Scale(factor)
	}
	return scaled
}

// Truncate multiplies v by factor and truncates the result toward zero. With a
// factor of 10^d this keeps exactly d decimal places of v as an integer count.
func Truncate(v, factor float64) float64 {
	return math.Trunc(float64(v * factor))
}
