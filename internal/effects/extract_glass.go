package effects

import (
	"fmt"
	"math"

	"bennypowers.dev/glaze/internal/color"
	"bennypowers.dev/glaze/internal/parser/css"
	"bennypowers.dev/glaze/internal/units"
)

// lookup resolves a recognized property to its (last-wins) declaration.
type lookup func(property string) (css.Declaration, bool)

func lineOf(d css.Declaration) *uint32 {
	line := d.Line
	return &line
}

func colOf(d css.Declaration) *uint32 {
	col := d.Column
	return &col
}

func warnValue(diags *[]Diagnostic, d css.Declaration, format string, args ...interface{}) {
	*diags = append(*diags, Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
		Property: d.Property,
		Line:     lineOf(d),
		Column:   colOf(d),
	})
}

func infoValue(diags *[]Diagnostic, d css.Declaration, format string, args ...interface{}) {
	*diags = append(*diags, Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityInfo,
		Property: d.Property,
		Line:     lineOf(d),
		Column:   colOf(d),
	})
}

// extractBackgroundColor maps a flat background color onto bgColor/bgAlpha.
func extractBackgroundColor(get lookup, diags *[]Diagnostic, bgColor *string, bgAlpha *float64) {
	d, ok := get("background")
	if !ok {
		return
	}
	c, ok := color.Parse(d.Value)
	if !ok {
		warnValue(diags, d, "could not parse background color %q", d.Value)
		return
	}
	*bgColor = c.WithAlpha(1).Hex()
	*bgAlpha = math.Round(c.A * 100)
}

// extractBackdropFilter maps blur()/saturate()/brightness() arguments onto
// the given fields. A nil brightness pointer means the mode has no
// brightness field. The vendor-prefixed alias is honored.
func extractBackdropFilter(get lookup, diags *[]Diagnostic, blur, saturation, brightness *float64) {
	d, ok := get("backdrop-filter")
	if !ok {
		d, ok = get("-webkit-backdrop-filter")
	}
	if !ok {
		return
	}

	bf := parseBackdropFilter(d.Value)
	if bf.Blur == nil && bf.Saturation == nil && bf.Brightness == nil {
		warnValue(diags, d, "no blur(), saturate() or brightness() found in %q", d.Value)
		return
	}
	if bf.Blur != nil {
		*blur = *bf.Blur
	}
	if bf.Saturation != nil {
		*saturation = *bf.Saturation
	}
	if bf.Brightness != nil && brightness != nil {
		*brightness = *bf.Brightness
	}
}

// extractBorderRadius unit-normalizes the first border-radius token. An info
// diagnostic notes when the source unit was not px.
func extractBorderRadius(get lookup, diags *[]Diagnostic, radius *float64) {
	d, ok := get("border-radius")
	if !ok {
		return
	}
	tokens := tokenize(d.Value)
	if len(tokens) == 0 {
		return
	}
	l, ok := units.Normalize(tokens[0])
	if !ok {
		warnValue(diags, d, "could not parse border-radius %q", tokens[0])
		return
	}
	if l.WasConverted {
		infoValue(diags, d, "border-radius given in %s; normalized to %gpx", l.Unit, l.Px)
	}
	*radius = l.Px
}

// extractBorder maps a border shorthand onto width/color/alpha.
func extractBorder(get lookup, diags *[]Diagnostic, width *float64, borderColor *string, borderAlpha *float64) {
	d, ok := get("border")
	if !ok {
		return
	}
	b, ok := parseBorder(d.Value)
	if !ok {
		warnValue(diags, d, "could not parse border %q", d.Value)
		return
	}
	if b.HasWidth {
		*width = b.Width.Px
	}
	if b.HasColor {
		*borderColor = b.Color.WithAlpha(1).Hex()
		*borderAlpha = math.Round(b.Color.A * 100)
	}
}

// extractDropShadow maps the first non-inset box-shadow layer onto the
// shadow fields. A nil spread pointer means the mode has no spread field.
func extractDropShadow(get lookup, diags *[]Diagnostic, x, y, blur, spread *float64, shadowColor *string, shadowAlpha *float64) {
	d, ok := get("box-shadow")
	if !ok {
		return
	}

	for _, raw := range splitLayers(d.Value) {
		layer, ok := parseShadowLayer(raw)
		if !ok || layer.Inset {
			continue
		}
		*x = layer.X
		*y = layer.Y
		*blur = layer.Blur
		if spread != nil {
			*spread = layer.Spread
		}
		*shadowColor = layer.Color.WithAlpha(1).Hex()
		*shadowAlpha = layer.AlphaPct
		return
	}
	warnValue(diags, d, "no usable shadow layer in %q", d.Value)
}

// extractLiquidGlass merges recognized declarations onto a copy of the
// liquid-glass baseline.
func extractLiquidGlass(get lookup, baseline *LiquidGlassSettings, diags *[]Diagnostic) *LiquidGlassSettings {
	s := *baseline
	extractBackgroundColor(get, diags, &s.BgColor, &s.BgAlpha)
	extractBackdropFilter(get, diags, &s.Blur, &s.Saturation, &s.Brightness)
	extractBorderRadius(get, diags, &s.BorderRadius)
	extractBorder(get, diags, &s.BorderWidth, &s.BorderColor, &s.BorderAlpha)
	extractDropShadow(get, diags, &s.ShadowX, &s.ShadowY, &s.ShadowBlur, &s.ShadowSpread, &s.ShadowColor, &s.ShadowAlpha)
	return &s
}

// extractGlassmorphism merges recognized declarations onto a copy of the
// glassmorphism baseline.
func extractGlassmorphism(get lookup, baseline *GlassmorphismSettings, diags *[]Diagnostic) *GlassmorphismSettings {
	s := *baseline
	extractBackgroundColor(get, diags, &s.BgColor, &s.BgAlpha)
	extractBackdropFilter(get, diags, &s.Blur, &s.Saturation, nil)
	extractBorderRadius(get, diags, &s.BorderRadius)
	extractBorder(get, diags, &s.BorderWidth, &s.BorderColor, &s.BorderAlpha)
	extractDropShadow(get, diags, &s.ShadowX, &s.ShadowY, &s.ShadowBlur, nil, &s.ShadowColor, &s.ShadowAlpha)
	return &s
}
