package aqi

import (
	"fmt"
	"strings"
)

type RGB struct {
	R, G, B int
}

type CMYK struct {
	C, M, Y, K int
}

// Color is the display color of a level in both encodings, together with the
// canonical hex rendering of each.
type Color struct {
	RGB     RGB
	CMYK    CMYK
	RGBHex  string
	CMYKHex string
}

// Encoding selects one field of a Color.
type Encoding int

const (
	EncodingRGB Encoding = iota
	EncodingCMYK
	EncodingRGBHex
	EncodingCMYKHex
)

var encodingNames = [...]string{
	EncodingRGB:     "RGB",
	EncodingCMYK:    "CMYK",
	EncodingRGBHex:  "RGB_HEX",
	EncodingCMYKHex: "CMYK_HEX",
}

func (e Encoding) String() string {
	if e < EncodingRGB || e > EncodingCMYKHex {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding parses one of RGB, CMYK, RGB_HEX and CMYK_HEX. Matching is
// case-sensitive.
func ParseEncoding(s string) (Encoding, error) {
	for e, name := range encodingNames {
		if name == s {
			return Encoding(e), nil
		}
	}
	return 0, fmt.Errorf("aqi: color type must be one of %s, got %q", strings.Join(encodingNames[:], ", "), s)
}

// Value returns the field of c selected by e: an RGB, a CMYK or a hex string.
func (c Color) Value(e Encoding) any {
	switch e {
	case EncodingRGB:
		return c.RGB
	case EncodingCMYK:
		return c.CMYK
	case EncodingRGBHex:
		return c.RGBHex
	case EncodingCMYKHex:
		return c.CMYKHex
	}
	return nil
}

// ColorTable holds the color of each of the six levels, level 1 first.
type ColorTable [6]Color

// Lookup returns the color of level. ok is false if level is not in 1..6.
func (t *ColorTable) Lookup(level Level) (Color, bool) {
	if !level.Valid() {
		return Color{}, false
	}
	return t[level-1], true
}
