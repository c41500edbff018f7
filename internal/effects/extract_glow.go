package effects

import "math"

// glowAlphaFactor is the encoding constant of the companion generator, which
// writes the outer glow's shadow alpha as intensity × 0.6. The decode below
// inverts that exact factor; if the generator's formula changes, this must
// change in lockstep.
const glowAlphaFactor = 0.6

// extractGlow merges recognized declarations onto a copy of the glow
// baseline. The non-inset box-shadow layer with the largest blur radius is
// the outer glow; any inset layer feeds innerGlow.
func extractGlow(get lookup, baseline *GlowSettings, diags *[]Diagnostic) *GlowSettings {
	s := *baseline
	extractBackgroundColor(get, diags, &s.BgColor, &s.BgAlpha)
	extractBackdropFilter(get, diags, &s.Blur, &s.Saturation, nil)
	extractBorderRadius(get, diags, &s.BorderRadius)
	extractBorder(get, diags, &s.BorderWidth, &s.BorderColor, &s.BorderAlpha)
	extractGlowShadows(get, diags, &s)
	return &s
}

func extractGlowShadows(get lookup, diags *[]Diagnostic, s *GlowSettings) {
	d, ok := get("box-shadow")
	if !ok {
		return
	}

	var outer *shadowLayer
	parsedAny := false
	for _, raw := range splitLayers(d.Value) {
		layer, ok := parseShadowLayer(raw)
		if !ok {
			continue
		}
		parsedAny = true
		if layer.Inset {
			s.InnerGlow = layer.Blur
			continue
		}
		if outer == nil || layer.Blur > outer.Blur {
			candidate := layer
			outer = &candidate
		}
	}

	if !parsedAny {
		warnValue(diags, d, "no usable shadow layer in %q", d.Value)
		return
	}
	if outer == nil {
		return
	}

	s.GlowColor = outer.Color.WithAlpha(1).Hex()
	s.GlowBlur = outer.Blur
	s.GlowSpread = outer.Spread
	s.GlowIntensity = math.Round(outer.AlphaPct / glowAlphaFactor)
}
