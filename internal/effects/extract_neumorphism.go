package effects

import (
	"math"
	"strings"

	"bennypowers.dev/glaze/internal/color"
)

// extractNeumorphism merges recognized declarations onto a copy of the
// neumorphism baseline. A linear-gradient background infers the surface
// shape from its angle; the box-shadow pair is classified into dark and
// light halves by comparing each layer's luminance against the surface.
func extractNeumorphism(get lookup, baseline *NeumorphismSettings, diags *[]Diagnostic) *NeumorphismSettings {
	s := *baseline
	extractNeumorphismBackground(get, diags, &s)
	extractBorderRadius(get, diags, &s.BorderRadius)
	extractNeumorphismShadows(get, diags, &s)
	return &s
}

func extractNeumorphismBackground(get lookup, diags *[]Diagnostic, s *NeumorphismSettings) {
	d, ok := get("background")
	if !ok {
		return
	}

	if strings.HasPrefix(strings.ToLower(d.Value), "linear-gradient(") {
		angle, hasAngle, first, hasColor := parseLinearGradient(d.Value)
		if !hasAngle && !hasColor {
			warnValue(diags, d, "could not parse gradient %q", d.Value)
			return
		}
		if hasAngle {
			if shape, ok := gradientShape(angle); ok {
				s.Shape = shape
			}
		}
		if hasColor {
			s.BgColor = first.WithAlpha(1).Hex()
		}
		return
	}

	c, ok := color.Parse(d.Value)
	if !ok {
		warnValue(diags, d, "could not parse background color %q", d.Value)
		return
	}
	s.BgColor = c.WithAlpha(1).Hex()
}

func extractNeumorphismShadows(get lookup, diags *[]Diagnostic, s *NeumorphismSettings) {
	d, ok := get("box-shadow")
	if !ok {
		return
	}

	bg, haveBg := color.Parse(s.BgColor)
	bgLum := 0.5
	if haveBg {
		bgLum = bg.RelativeLuminance()
	}

	var layers []shadowLayer
	sawInset := false
	for _, raw := range splitLayers(d.Value) {
		layer, ok := parseShadowLayer(raw)
		if !ok {
			continue
		}
		if layer.Inset {
			sawInset = true
		}
		layers = append(layers, layer)
	}

	if len(layers) == 0 {
		warnValue(diags, d, "no usable shadow layer in %q", d.Value)
		return
	}

	// An inset pair reads as a pressed surface.
	if sawInset {
		s.Shape = ShapePressed
	}

	haveDark := false
	haveLight := false
	for _, layer := range layers {
		if layer.Color.RelativeLuminance() < bgLum {
			s.Distance = shadowDistance(layer)
			s.Blur = layer.Blur
			s.Intensity = layer.AlphaPct
			s.DarkColor = layer.Color.WithAlpha(1).Hex()
			haveDark = true
		} else {
			s.LightColor = layer.Color.WithAlpha(1).Hex()
			if !haveDark {
				s.Distance = shadowDistance(layer)
				s.Blur = layer.Blur
			}
			haveLight = true
		}
	}

	// With only half the pair present, suggest the complement instead of
	// silently inventing settings.
	if haveDark != haveLight && haveBg {
		light, dark := bg.NeumorphismShadows(s.Intensity)
		infoValue(diags, d,
			"only one shadow layer found; a complementary pair would be light %s / dark %s",
			light.Hex(), dark.Hex())
	}
}

// shadowDistance reads the offset distance off a layer, preferring the
// horizontal offset and falling back to the vertical one.
func shadowDistance(layer shadowLayer) float64 {
	if layer.X != 0 {
		return math.Abs(layer.X)
	}
	return math.Abs(layer.Y)
}
