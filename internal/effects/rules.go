package effects

// rule is one declarative heuristic evaluated against the clamped settings.
// Every rule whose predicate holds fires its diagnostic, not just the first.
type rule[T any] struct {
	id       string
	severity Severity
	property string
	message  string
	when     func(*T) bool
}

func evalRules[T any](rules []rule[T], s *T, diags *[]Diagnostic) {
	for _, r := range rules {
		if !r.when(s) {
			continue
		}
		*diags = append(*diags, Diagnostic{
			Message:  r.message,
			Severity: r.severity,
			Rule:     r.id,
			Property: r.property,
		})
	}
}

var liquidGlassRules = []rule[LiquidGlassSettings]{
	{
		id: "blur-performance", severity: SeverityWarning, property: "backdrop-filter",
		message: "blur above 40px is expensive to composite and can stutter on scroll",
		when:    func(s *LiquidGlassSettings) bool { return s.Blur > 40 },
	},
	{
		id: "opaque-no-blur", severity: SeverityInfo, property: "background",
		message: "a mostly opaque background with little blur loses the glass look",
		when:    func(s *LiquidGlassSettings) bool { return s.BgAlpha > 60 && s.Blur < 8 },
	},
	{
		id: "invisible-border", severity: SeverityInfo, property: "border",
		message: "border alpha below 3% renders effectively invisible",
		when:    func(s *LiquidGlassSettings) bool { return s.BorderAlpha < 3 },
	},
	{
		id: "refraction-saturation", severity: SeverityInfo, property: "backdrop-filter",
		message: "strong refraction reads better with saturation of at least 80%",
		when:    func(s *LiquidGlassSettings) bool { return s.RefractionIntensity > 70 && s.Saturation < 80 },
	},
	{
		id: "invisible-shadow", severity: SeverityInfo, property: "box-shadow",
		message: "shadow alpha below 3% renders effectively invisible",
		when:    func(s *LiquidGlassSettings) bool { return s.ShadowAlpha < 3 },
	},
}

var glassmorphismRules = []rule[GlassmorphismSettings]{
	{
		id: "blur-performance", severity: SeverityWarning, property: "backdrop-filter",
		message: "blur above 30px is expensive to composite and can stutter on scroll",
		when:    func(s *GlassmorphismSettings) bool { return s.Blur > 30 },
	},
	{
		id: "opaque-no-blur", severity: SeverityInfo, property: "background",
		message: "a mostly opaque background with little blur loses the glass look",
		when:    func(s *GlassmorphismSettings) bool { return s.BgAlpha > 60 && s.Blur < 8 },
	},
	{
		id: "oversaturated", severity: SeverityWarning, property: "backdrop-filter",
		message: "saturation above 180% distorts content behind the surface",
		when:    func(s *GlassmorphismSettings) bool { return s.Saturation > 180 },
	},
	{
		id: "heavy-border", severity: SeverityInfo, property: "border",
		message: "borders wider than 3px overpower the translucent surface",
		when:    func(s *GlassmorphismSettings) bool { return s.BorderWidth > 3 },
	},
}

var neumorphismRules = []rule[NeumorphismSettings]{
	{
		id: "blur-under-distance", severity: SeverityInfo, property: "box-shadow",
		message: "blur smaller than the offset distance gives hard, unrealistic edges",
		when:    func(s *NeumorphismSettings) bool { return s.Blur < s.Distance },
	},
	{
		id: "harsh-intensity", severity: SeverityWarning, property: "box-shadow",
		message: "shadow intensity above 35% looks harsh on soft surfaces",
		when:    func(s *NeumorphismSettings) bool { return s.Intensity > 35 },
	},
	{
		id: "flat-distance", severity: SeverityInfo, property: "box-shadow",
		message: "offset distance of 1px or less flattens the extrusion effect",
		when:    func(s *NeumorphismSettings) bool { return s.Distance <= 1 },
	},
	{
		id: "sharp-corners", severity: SeverityInfo, property: "border-radius",
		message: "shaped surfaces need at least 4px of corner rounding",
		when:    func(s *NeumorphismSettings) bool { return s.Shape != ShapeFlat && s.BorderRadius < 4 },
	},
}

var glowRules = []rule[GlowSettings]{
	{
		id: "glow-performance", severity: SeverityWarning, property: "box-shadow",
		message: "glow blur above 150px is expensive to composite",
		when:    func(s *GlowSettings) bool { return s.GlowBlur > 150 },
	},
	{
		id: "faint-glow", severity: SeverityInfo, property: "box-shadow",
		message: "glow intensity below 5% is barely visible",
		when:    func(s *GlowSettings) bool { return s.GlowIntensity < 5 },
	},
	{
		id: "inner-outshines-outer", severity: SeverityInfo, property: "box-shadow",
		message: "a strong inner glow with a faint outer glow reads as a hollow surface",
		when:    func(s *GlowSettings) bool { return s.InnerGlow > 40 && s.GlowIntensity < 10 },
	},
}

// semanticDiagnostics runs the mode's rule list against the clamped settings.
func semanticDiagnostics(s Settings, diags *[]Diagnostic) {
	switch v := s.(type) {
	case *LiquidGlassSettings:
		evalRules(liquidGlassRules, v, diags)
	case *GlassmorphismSettings:
		evalRules(glassmorphismRules, v, diags)
	case *NeumorphismSettings:
		evalRules(neumorphismRules, v, diags)
	case *GlowSettings:
		evalRules(glowRules, v, diags)
	}
}
