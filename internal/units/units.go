// Package units normalizes CSS length literals to pixel values.
package units

import (
	"math"
	"regexp"
	"strconv"
)

// Length is the result of normalizing a CSS length literal.
type Length struct {
	// Raw is the numeric value as written in the source.
	Raw float64
	// Unit is the source unit, defaulting to "px" when omitted.
	Unit string
	// Px is the pixel-equivalent value, rounded to 0.1.
	Px float64
	// WasConverted reports whether a unit conversion was applied.
	WasConverted bool
}

var lengthPattern = regexp.MustCompile(`^(-?\d*\.?\d+)(px|rem|em|%|vh|vw|pt|cm|mm)?$`)

// Conversion factors to pixels. rem/em assume the fixed 16px root font size;
// %/vh/vw pass through as raw pixel-equivalents since the reference box is
// unknown at parse time.
var pxFactors = map[string]float64{
	"px":  1,
	"%":   1,
	"vh":  1,
	"vw":  1,
	"rem": 16,
	"em":  16,
	"pt":  4.0 / 3.0,
	"cm":  37.7953,
	"mm":  3.77953,
}

// Normalize parses a `<number><optional unit>` literal and converts it to
// pixels. Returns false when the token does not match the length grammar.
func Normalize(token string) (Length, bool) {
	m := lengthPattern.FindStringSubmatch(token)
	if m == nil {
		return Length{}, false
	}

	raw, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, false
	}

	unit := m[2]
	if unit == "" {
		unit = "px"
	}

	px := raw * pxFactors[unit]

	return Length{
		Raw:          raw,
		Unit:         unit,
		Px:           math.Round(px*10) / 10,
		WasConverted: pxFactors[unit] != 1,
	}, true
}
