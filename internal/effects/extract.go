package effects

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/glaze/internal/collections"
	"bennypowers.dev/glaze/internal/color"
	"bennypowers.dev/glaze/internal/units"
)

// borderStyles is the fixed keyword enum parseBorder recognizes.
var borderStyles = collections.NewSet(
	"none", "solid", "dashed", "dotted", "double",
	"groove", "ridge", "inset", "outset", "hidden",
)

var (
	blurFnPattern       = regexp.MustCompile(`blur\(\s*([^)]+?)\s*\)`)
	saturateFnPattern   = regexp.MustCompile(`saturate\(\s*([\d.]+)%?\s*\)`)
	brightnessFnPattern = regexp.MustCompile(`brightness\(\s*([\d.]+)%?\s*\)`)
)

// splitLayers splits a comma-separated list at top level only, tracking
// parenthesis depth so commas inside rgba() or other functions never split a
// shadow layer.
func splitLayers(value string) []string {
	var layers []string
	depth := 0
	start := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				layers = append(layers, strings.TrimSpace(value[start:i]))
				start = i + 1
			}
		}
	}
	layers = append(layers, strings.TrimSpace(value[start:]))
	return layers
}

// tokenize splits a value on whitespace at top level, keeping function
// expressions like rgba(0, 0, 0, 0.5) as single tokens.
func tokenize(value string) []string {
	var tokens []string
	depth := 0
	start := -1
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case (c == ' ' || c == '\t' || c == '\n') && depth == 0:
			if start >= 0 {
				tokens = append(tokens, value[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, value[start:])
	}
	return tokens
}

// shadowLayer is one parsed box-shadow layer.
type shadowLayer struct {
	Inset    bool
	X        float64
	Y        float64
	Blur     float64
	Spread   float64
	Color    color.Color
	AlphaPct float64
}

// parseShadowLayer parses `[inset] <x> <y> <blur> [<spread>] <color>`.
// Returns false when the layer does not match that shape.
func parseShadowLayer(layer string) (shadowLayer, bool) {
	tokens := tokenize(layer)
	if len(tokens) == 0 {
		return shadowLayer{}, false
	}

	var parsed shadowLayer
	if strings.EqualFold(tokens[0], "inset") {
		parsed.Inset = true
		tokens = tokens[1:]
	}

	var lengths []float64
	var colorTokens []string
	for _, tok := range tokens {
		if len(colorTokens) == 0 && len(lengths) < 4 {
			if l, ok := units.Normalize(tok); ok {
				lengths = append(lengths, l.Px)
				continue
			}
		}
		colorTokens = append(colorTokens, tok)
	}

	if len(lengths) < 3 || len(colorTokens) == 0 {
		return shadowLayer{}, false
	}

	c, ok := color.Parse(strings.Join(colorTokens, " "))
	if !ok {
		return shadowLayer{}, false
	}

	parsed.X = lengths[0]
	parsed.Y = lengths[1]
	parsed.Blur = lengths[2]
	if len(lengths) == 4 {
		parsed.Spread = lengths[3]
	}
	parsed.Color = c
	parsed.AlphaPct = math.Round(c.A * 100)
	return parsed, true
}

// backdropFilter holds the independently extracted backdrop-filter function
// arguments; any subset may be present.
type backdropFilter struct {
	Blur       *float64
	Saturation *float64
	Brightness *float64
}

// parseBackdropFilter pulls blur(), saturate() and brightness() arguments out
// of a backdrop-filter value.
func parseBackdropFilter(value string) backdropFilter {
	var bf backdropFilter

	if m := blurFnPattern.FindStringSubmatch(value); m != nil {
		if l, ok := units.Normalize(m[1]); ok {
			bf.Blur = &l.Px
		}
	}
	if m := saturateFnPattern.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			bf.Saturation = &n
		}
	}
	if m := brightnessFnPattern.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			bf.Brightness = &n
		}
	}

	return bf
}

// border is a parsed shorthand border value.
type border struct {
	Width    units.Length
	HasWidth bool
	Style    string
	Color    color.Color
	HasColor bool
}

// parseBorder extracts the first unit-bearing numeric token as width, an
// optional style keyword, and a trailing color token.
func parseBorder(value string) (border, bool) {
	tokens := tokenize(value)
	if len(tokens) == 0 {
		return border{}, false
	}

	var b border
	for _, tok := range tokens {
		if !b.HasWidth {
			if l, ok := units.Normalize(tok); ok {
				b.Width = l
				b.HasWidth = true
				continue
			}
		}
		if b.Style == "" && borderStyles.Has(strings.ToLower(tok)) {
			b.Style = strings.ToLower(tok)
			continue
		}
		if c, ok := color.Parse(tok); ok {
			b.Color = c
			b.HasColor = true
		}
	}

	if !b.HasWidth && b.Style == "" && !b.HasColor {
		return border{}, false
	}
	return b, true
}

// gradientShape infers the neumorphism surface shape from a linear-gradient
// angle: light from the top-left (≈135°/145°) reads as convex, light from
// the bottom-right (≈315°, or its 45° mirror) as concave.
func gradientShape(angle float64) (Shape, bool) {
	angle = math.Mod(math.Mod(angle, 360)+360, 360)
	switch {
	case math.Abs(angle-135) <= 15 || math.Abs(angle-145) <= 15:
		return ShapeConvex, true
	case math.Abs(angle-315) <= 15 || math.Abs(angle-45) <= 15:
		return ShapeConcave, true
	}
	return "", false
}

// parseLinearGradient extracts the angle and the first color stop from a
// linear-gradient() value.
func parseLinearGradient(value string) (angle float64, hasAngle bool, first color.Color, hasColor bool) {
	open := strings.IndexByte(value, '(')
	end := strings.LastIndexByte(value, ')')
	if open < 0 || end <= open {
		return 0, false, color.Color{}, false
	}

	args := splitLayers(value[open+1 : end])
	for _, arg := range args {
		if !hasAngle && strings.HasSuffix(arg, "deg") {
			if n, err := strconv.ParseFloat(strings.TrimSuffix(arg, "deg"), 64); err == nil {
				angle = n
				hasAngle = true
				continue
			}
		}
		if !hasColor {
			// A stop may carry a position suffix, e.g. "#fff 0%".
			stop := tokenize(arg)
			if len(stop) > 0 {
				if c, ok := color.Parse(stop[0]); ok {
					first = c
					hasColor = true
				}
			}
		}
	}
	return angle, hasAngle, first, hasColor
}
