// Package color implements the immutable color value type used by the effect
// settings engine: multi-format CSS color parsing, colorspace conversions,
// WCAG luminance/contrast math, and neumorphism shadow-pair synthesis.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Color is an immutable sRGB color value with an alpha channel.
// Channels are 8-bit integers, alpha is a fraction in [0,1].
// Construct values with the From* constructors or Parse; every transform
// returns a new Color.
type Color struct {
	R, G, B int
	A       float64
}

// New creates a Color from 8-bit channels and a fractional alpha.
// Out-of-range inputs are clamped, so channel bounds always hold
// post-construction.
func New(r, g, b int, a float64) Color {
	return Color{
		R: clampInt(r, 0, 255),
		G: clampInt(g, 0, 255),
		B: clampInt(b, 0, 255),
		A: clampFloat(a, 0, 1),
	}
}

// FromHex parses a CSS hex color: 3, 4, 6 or 8 hex digits with an optional
// leading #. Short forms double each digit per channel.
func FromHex(value string) (Color, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")

	switch len(hex) {
	case 3, 4:
		var expanded strings.Builder
		for _, ch := range hex {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		hex = expanded.String()
	case 6, 8:
		// already full form
	default:
		return Color{}, false
	}

	channels := make([]uint64, 0, 4)
	for i := 0; i+2 <= len(hex); i += 2 {
		n, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		channels = append(channels, n)
	}

	alpha := 1.0
	if len(channels) == 4 {
		alpha = float64(channels[3]) / 255.0
	}

	return New(int(channels[0]), int(channels[1]), int(channels[2]), alpha), true
}

// FromRGBA creates a Color from 8-bit channels and a fractional alpha.
func FromRGBA(r, g, b int, a float64) Color {
	return New(r, g, b, a)
}

// FromHSL creates a Color from hue (0-360), saturation and lightness
// (both 0-100, CSS percent scale) using the standard hue-sector conversion.
func FromHSL(h, s, l float64) Color {
	return fromHSLA(h, s, l, 1.0)
}

func fromHSLA(h, s, l, a float64) Color {
	c := colorful.Hsl(
		math.Mod(math.Mod(h, 360)+360, 360),
		clampFloat(s, 0, 100)/100,
		clampFloat(l, 0, 100)/100,
	).Clamped()
	return New(
		int(math.Round(c.R*255)),
		int(math.Round(c.G*255)),
		int(math.Round(c.B*255)),
		a,
	)
}

// OKLab to linear-sRGB conversion matrices.
// https://bottosson.github.io/posts/oklab/
var (
	oklabToLMS = [3][3]float64{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
	lmsToLinearRGB = [3][3]float64{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// FromOKLCH creates a Color from OKLCH coordinates: lightness in [0,1],
// chroma, and hue in degrees. The result is gamma-encoded sRGB with
// out-of-gamut channels clamped.
func FromOKLCH(l, c, h float64, a float64) Color {
	hr := h * math.Pi / 180
	labA := c * math.Cos(hr)
	labB := c * math.Sin(hr)

	lms := [3]float64{}
	for i, row := range oklabToLMS {
		v := row[0]*l + row[1]*labA + row[2]*labB
		lms[i] = v * v * v
	}

	rgb := [3]float64{}
	for i, row := range lmsToLinearRGB {
		rgb[i] = srgbEncode(row[0]*lms[0] + row[1]*lms[1] + row[2]*lms[2])
	}

	return New(
		int(math.Round(rgb[0]*255)),
		int(math.Round(rgb[1]*255)),
		int(math.Round(rgb[2]*255)),
		a,
	)
}

// srgbEncode applies the piecewise sRGB gamma encode to a linear channel.
func srgbEncode(v float64) float64 {
	if v <= 0.0031308 {
		v = 12.92 * v
	} else {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return clampFloat(v, 0, 1)
}

// Parse parses a CSS color value, trying hex, rgb()/rgba(), hsl()/hsla() and
// oklch() grammars in order before falling back to the named-color table.
// Returns false on total failure.
func Parse(value string) (Color, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Color{}, false
	}

	if strings.HasPrefix(value, "#") {
		return FromHex(value)
	}

	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseRGBFunc(lower)
	case strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla("):
		return parseHSLFunc(lower)
	case strings.HasPrefix(lower, "oklch("):
		return parseOKLCHFunc(lower)
	}

	// Named colors (and anything else CSS considers a color) go through the
	// same parser the rest of the toolchain uses.
	parsed, err := csscolorparser.Parse(lower)
	if err != nil {
		return Color{}, false
	}
	return New(
		int(math.Round(parsed.R*255)),
		int(math.Round(parsed.G*255)),
		int(math.Round(parsed.B*255)),
		parsed.A,
	), true
}

// funcArgs strips a CSS functional notation down to its argument tokens,
// accepting comma, space, and slash separators.
func funcArgs(value string) ([]string, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return nil, false
	}
	inner := value[open+1 : len(value)-1]
	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// parseAlphaToken parses an alpha value given as a fraction or a percentage.
func parseAlphaToken(tok string) (float64, bool) {
	if strings.HasSuffix(tok, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampFloat(n/100, 0, 1), true
	}
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return clampFloat(n, 0, 1), true
}

func parseRGBFunc(value string) (Color, bool) {
	args, ok := funcArgs(value)
	if !ok || len(args) < 3 || len(args) > 4 {
		return Color{}, false
	}

	channels := [3]int{}
	for i := range 3 {
		tok := args[i]
		if strings.HasSuffix(tok, "%") {
			n, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
			if err != nil {
				return Color{}, false
			}
			channels[i] = int(math.Round(n / 100 * 255))
			continue
		}
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Color{}, false
		}
		channels[i] = int(math.Round(n))
	}

	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseAlphaToken(args[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}

	return New(channels[0], channels[1], channels[2], alpha), true
}

func parseHSLFunc(value string) (Color, bool) {
	args, ok := funcArgs(value)
	if !ok || len(args) < 3 || len(args) > 4 {
		return Color{}, false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, false
	}
	s, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil {
		return Color{}, false
	}
	l, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return Color{}, false
	}

	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseAlphaToken(args[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}

	return fromHSLA(h, s, l, alpha), true
}

func parseOKLCHFunc(value string) (Color, bool) {
	args, ok := funcArgs(value)
	if !ok || len(args) < 3 || len(args) > 4 {
		return Color{}, false
	}

	l, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "%"), 64)
	if err != nil {
		return Color{}, false
	}
	if strings.HasSuffix(args[0], "%") {
		l /= 100
	}
	c, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return Color{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "deg"), 64)
	if err != nil {
		return Color{}, false
	}

	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseAlphaToken(args[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}

	return FromOKLCH(l, c, h, alpha), true
}

// Hex returns the lowercase hex form: #rrggbb, or #rrggbbaa when
// alpha < 1.
func (c Color) Hex() string {
	if c.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, int(math.Round(c.A*255)))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBAString returns the rgba() functional form using the color's own alpha.
func (c Color) RGBAString() string {
	return c.RGBAStringWithAlpha(c.A)
}

// RGBAStringWithAlpha returns the rgba() functional form with the given alpha.
func (c Color) RGBAStringWithAlpha(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(clampFloat(alpha, 0, 1), 'g', 4, 64))
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(alpha float64) Color {
	return New(c.R, c.G, c.B, alpha)
}

// hsl returns hue (0-360) plus saturation and lightness on the CSS percent
// scale (0-100).
func (c Color) hsl() (h, s, l float64) {
	h, s, l = colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
	return h, s * 100, l * 100
}

// Lighten returns a copy with lightness raised by amount×100 points on the
// HSL scale, clamped to [0,100]. Alpha is preserved.
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.hsl()
	return fromHSLA(h, s, clampFloat(l+amount*100, 0, 100), c.A)
}

// Darken returns a copy with lightness lowered by amount×100 points on the
// HSL scale, clamped to [0,100]. Alpha is preserved.
func (c Color) Darken(amount float64) Color {
	h, s, l := c.hsl()
	return fromHSLA(h, s, clampFloat(l-amount*100, 0, 100), c.A)
}

// RelativeLuminance returns the WCAG 2.0 relative luminance of the color.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c Color) RelativeLuminance() float64 {
	r := wcagLinearize(float64(c.R) / 255)
	g := wcagLinearize(float64(c.G) / 255)
	b := wcagLinearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func wcagLinearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastWith returns the WCAG contrast ratio between the two colors,
// always in [1,21] and symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func (c Color) ContrastWith(other Color) float64 {
	return ContrastFromLuminance(c.RelativeLuminance(), other.RelativeLuminance())
}

// ContrastFromLuminance returns the WCAG contrast ratio of two relative
// luminance values.
func ContrastFromLuminance(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// NeumorphismShadows synthesizes the light/dark shadow pair for a neumorphic
// surface of this base color. Intensity is on the 0-100 scale; it shifts
// lightness by up to 32 points either way, with small fixed saturation
// offsets matching the generator's encoding.
func (c Color) NeumorphismShadows(intensity float64) (light, dark Color) {
	h, s, l := c.hsl()
	delta := intensity / 100 * 32
	light = FromHSL(h, clampFloat(s-5, 0, 100), clampFloat(l+delta, 0, 100))
	dark = FromHSL(h, clampFloat(s+8, 0, 100), clampFloat(l-delta, 0, 100))
	return light, dark
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
