// Package effects reverse-engineers free-form CSS text back into typed,
// range-bounded settings records for the supported visual-effect modes,
// reporting actionable diagnostics along the way.
package effects

import (
	"bennypowers.dev/glaze/internal/registry"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is one actionable finding produced during a parse call.
type Diagnostic struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule,omitempty"`
	Property string   `json:"property,omitempty"`
	Line     *uint32  `json:"line,omitempty"`
	Column   *uint32  `json:"column,omitempty"`
}

// GhostProperty is a declaration whose property falls outside the active
// mode's vocabulary. Ghosts are reported, never interpreted.
type GhostProperty struct {
	Property string  `json:"property"`
	Value    string  `json:"value"`
	Line     *uint32 `json:"line,omitempty"`
	Reason   string  `json:"reason"`
}

// AccessibilityInfo is the WCAG contrast analysis of the effect surface.
type AccessibilityInfo struct {
	ContrastRatio        float64 `json:"contrastRatio"`
	PassesAA             bool    `json:"passesAA"`
	PassesAAA            bool    `json:"passesAAA"`
	RecommendedTextColor string  `json:"recommendedTextColor"`
	Recommendation       string  `json:"recommendation"`
}

// Result is the single, immutable output of one parse call. Settings is nil
// only on terminal syntax failure.
type Result struct {
	Settings        Settings           `json:"settings"`
	Diagnostics     []Diagnostic       `json:"diagnostics"`
	GhostProperties []GhostProperty    `json:"ghostProperties"`
	Accessibility   *AccessibilityInfo `json:"accessibility,omitempty"`
	ClampedFields   []string           `json:"clampedFields"`
}

// Shape is the neumorphism surface shape.
type Shape string

const (
	ShapeFlat    Shape = "flat"
	ShapeConvex  Shape = "convex"
	ShapeConcave Shape = "concave"
	ShapePressed Shape = "pressed"
)

// Settings is the per-mode record of numeric, color and enum fields. The
// concrete types form a closed union: numeric fields are addressed by name
// through the registry's range tables, everything else through the typed
// struct fields.
type Settings interface {
	Mode() registry.Mode

	// field and setField give the clamp engine named access to numeric
	// fields. Names match the registry's range tables exactly.
	field(name string) (float64, bool)
	setField(name string, v float64)

	// background resolves the surface color hex and alpha percent for the
	// accessibility analyzer.
	background() (hex string, alphaPct float64)
}

// LiquidGlassSettings is the settings record for the liquid-glass mode.
type LiquidGlassSettings struct {
	BgColor             string  `json:"bgColor" yaml:"bgColor"`
	BgAlpha             float64 `json:"bgAlpha" yaml:"bgAlpha"`
	Blur                float64 `json:"blur" yaml:"blur"`
	Saturation          float64 `json:"saturation" yaml:"saturation"`
	Brightness          float64 `json:"brightness" yaml:"brightness"`
	RefractionIntensity float64 `json:"refractionIntensity" yaml:"refractionIntensity"`
	BorderRadius        float64 `json:"borderRadius" yaml:"borderRadius"`
	BorderWidth         float64 `json:"borderWidth" yaml:"borderWidth"`
	BorderColor         string  `json:"borderColor" yaml:"borderColor"`
	BorderAlpha         float64 `json:"borderAlpha" yaml:"borderAlpha"`
	ShadowX             float64 `json:"shadowX" yaml:"shadowX"`
	ShadowY             float64 `json:"shadowY" yaml:"shadowY"`
	ShadowBlur          float64 `json:"shadowBlur" yaml:"shadowBlur"`
	ShadowSpread        float64 `json:"shadowSpread" yaml:"shadowSpread"`
	ShadowColor         string  `json:"shadowColor" yaml:"shadowColor"`
	ShadowAlpha         float64 `json:"shadowAlpha" yaml:"shadowAlpha"`
}

// Mode returns the effect mode this record belongs to.
func (s *LiquidGlassSettings) Mode() registry.Mode { return registry.ModeLiquidGlass }

func (s *LiquidGlassSettings) field(name string) (float64, bool) {
	switch name {
	case "bgAlpha":
		return s.BgAlpha, true
	case "blur":
		return s.Blur, true
	case "saturation":
		return s.Saturation, true
	case "brightness":
		return s.Brightness, true
	case "refractionIntensity":
		return s.RefractionIntensity, true
	case "borderRadius":
		return s.BorderRadius, true
	case "borderWidth":
		return s.BorderWidth, true
	case "borderAlpha":
		return s.BorderAlpha, true
	case "shadowX":
		return s.ShadowX, true
	case "shadowY":
		return s.ShadowY, true
	case "shadowBlur":
		return s.ShadowBlur, true
	case "shadowSpread":
		return s.ShadowSpread, true
	case "shadowAlpha":
		return s.ShadowAlpha, true
	}
	return 0, false
}

func (s *LiquidGlassSettings) setField(name string, v float64) {
	switch name {
	case "bgAlpha":
		s.BgAlpha = v
	case "blur":
		s.Blur = v
	case "saturation":
		s.Saturation = v
	case "brightness":
		s.Brightness = v
	case "refractionIntensity":
		s.RefractionIntensity = v
	case "borderRadius":
		s.BorderRadius = v
	case "borderWidth":
		s.BorderWidth = v
	case "borderAlpha":
		s.BorderAlpha = v
	case "shadowX":
		s.ShadowX = v
	case "shadowY":
		s.ShadowY = v
	case "shadowBlur":
		s.ShadowBlur = v
	case "shadowSpread":
		s.ShadowSpread = v
	case "shadowAlpha":
		s.ShadowAlpha = v
	}
}

func (s *LiquidGlassSettings) background() (string, float64) { return s.BgColor, s.BgAlpha }

// GlassmorphismSettings is the settings record for the glassmorphism mode.
type GlassmorphismSettings struct {
	BgColor      string  `json:"bgColor" yaml:"bgColor"`
	BgAlpha      float64 `json:"bgAlpha" yaml:"bgAlpha"`
	Blur         float64 `json:"blur" yaml:"blur"`
	Saturation   float64 `json:"saturation" yaml:"saturation"`
	BorderRadius float64 `json:"borderRadius" yaml:"borderRadius"`
	BorderWidth  float64 `json:"borderWidth" yaml:"borderWidth"`
	BorderColor  string  `json:"borderColor" yaml:"borderColor"`
	BorderAlpha  float64 `json:"borderAlpha" yaml:"borderAlpha"`
	ShadowX      float64 `json:"shadowX" yaml:"shadowX"`
	ShadowY      float64 `json:"shadowY" yaml:"shadowY"`
	ShadowBlur   float64 `json:"shadowBlur" yaml:"shadowBlur"`
	ShadowColor  string  `json:"shadowColor" yaml:"shadowColor"`
	ShadowAlpha  float64 `json:"shadowAlpha" yaml:"shadowAlpha"`
}

// Mode returns the effect mode this record belongs to.
func (s *GlassmorphismSettings) Mode() registry.Mode { return registry.ModeGlassmorphism }

func (s *GlassmorphismSettings) field(name string) (float64, bool) {
	switch name {
	case "bgAlpha":
		return s.BgAlpha, true
	case "blur":
		return s.Blur, true
	case "saturation":
		return s.Saturation, true
	case "borderRadius":
		return s.BorderRadius, true
	case "borderWidth":
		return s.BorderWidth, true
	case "borderAlpha":
		return s.BorderAlpha, true
	case "shadowX":
		return s.ShadowX, true
	case "shadowY":
		return s.ShadowY, true
	case "shadowBlur":
		return s.ShadowBlur, true
	case "shadowAlpha":
		return s.ShadowAlpha, true
	}
	return 0, false
}

func (s *GlassmorphismSettings) setField(name string, v float64) {
	switch name {
	case "bgAlpha":
		s.BgAlpha = v
	case "blur":
		s.Blur = v
	case "saturation":
		s.Saturation = v
	case "borderRadius":
		s.BorderRadius = v
	case "borderWidth":
		s.BorderWidth = v
	case "borderAlpha":
		s.BorderAlpha = v
	case "shadowX":
		s.ShadowX = v
	case "shadowY":
		s.ShadowY = v
	case "shadowBlur":
		s.ShadowBlur = v
	case "shadowAlpha":
		s.ShadowAlpha = v
	}
}

func (s *GlassmorphismSettings) background() (string, float64) { return s.BgColor, s.BgAlpha }

// GlowSettings is the settings record for the glow mode.
type GlowSettings struct {
	BgColor       string  `json:"bgColor" yaml:"bgColor"`
	BgAlpha       float64 `json:"bgAlpha" yaml:"bgAlpha"`
	Blur          float64 `json:"blur" yaml:"blur"`
	Saturation    float64 `json:"saturation" yaml:"saturation"`
	BorderRadius  float64 `json:"borderRadius" yaml:"borderRadius"`
	BorderWidth   float64 `json:"borderWidth" yaml:"borderWidth"`
	BorderColor   string  `json:"borderColor" yaml:"borderColor"`
	BorderAlpha   float64 `json:"borderAlpha" yaml:"borderAlpha"`
	GlowColor     string  `json:"glowColor" yaml:"glowColor"`
	GlowBlur      float64 `json:"glowBlur" yaml:"glowBlur"`
	GlowSpread    float64 `json:"glowSpread" yaml:"glowSpread"`
	GlowIntensity float64 `json:"glowIntensity" yaml:"glowIntensity"`
	InnerGlow     float64 `json:"innerGlow" yaml:"innerGlow"`
}

// Mode returns the effect mode this record belongs to.
func (s *GlowSettings) Mode() registry.Mode { return registry.ModeGlow }

func (s *GlowSettings) field(name string) (float64, bool) {
	switch name {
	case "bgAlpha":
		return s.BgAlpha, true
	case "blur":
		return s.Blur, true
	case "saturation":
		return s.Saturation, true
	case "borderRadius":
		return s.BorderRadius, true
	case "borderWidth":
		return s.BorderWidth, true
	case "borderAlpha":
		return s.BorderAlpha, true
	case "glowBlur":
		return s.GlowBlur, true
	case "glowSpread":
		return s.GlowSpread, true
	case "glowIntensity":
		return s.GlowIntensity, true
	case "innerGlow":
		return s.InnerGlow, true
	}
	return 0, false
}

func (s *GlowSettings) setField(name string, v float64) {
	switch name {
	case "bgAlpha":
		s.BgAlpha = v
	case "blur":
		s.Blur = v
	case "saturation":
		s.Saturation = v
	case "borderRadius":
		s.BorderRadius = v
	case "borderWidth":
		s.BorderWidth = v
	case "borderAlpha":
		s.BorderAlpha = v
	case "glowBlur":
		s.GlowBlur = v
	case "glowSpread":
		s.GlowSpread = v
	case "glowIntensity":
		s.GlowIntensity = v
	case "innerGlow":
		s.InnerGlow = v
	}
}

func (s *GlowSettings) background() (string, float64) { return s.BgColor, s.BgAlpha }

// NeumorphismSettings is the settings record for the neumorphism mode.
type NeumorphismSettings struct {
	BgColor      string  `json:"bgColor" yaml:"bgColor"`
	Shape        Shape   `json:"shape" yaml:"shape"`
	Distance     float64 `json:"distance" yaml:"distance"`
	Blur         float64 `json:"blur" yaml:"blur"`
	Intensity    float64 `json:"intensity" yaml:"intensity"`
	DarkColor    string  `json:"darkColor" yaml:"darkColor"`
	LightColor   string  `json:"lightColor" yaml:"lightColor"`
	BorderRadius float64 `json:"borderRadius" yaml:"borderRadius"`
}

// Mode returns the effect mode this record belongs to.
func (s *NeumorphismSettings) Mode() registry.Mode { return registry.ModeNeumorphism }

func (s *NeumorphismSettings) field(name string) (float64, bool) {
	switch name {
	case "distance":
		return s.Distance, true
	case "blur":
		return s.Blur, true
	case "intensity":
		return s.Intensity, true
	case "borderRadius":
		return s.BorderRadius, true
	}
	return 0, false
}

func (s *NeumorphismSettings) setField(name string, v float64) {
	switch name {
	case "distance":
		s.Distance = v
	case "blur":
		s.Blur = v
	case "intensity":
		s.Intensity = v
	case "borderRadius":
		s.BorderRadius = v
	}
}

// Neumorphic surfaces are opaque: the analyzer always treats alpha as 100.
func (s *NeumorphismSettings) background() (string, float64) { return s.BgColor, 100 }

// DefaultSettings returns the stock baseline record for a mode.
func DefaultSettings(mode registry.Mode) Settings {
	switch mode {
	case registry.ModeLiquidGlass:
		return &LiquidGlassSettings{
			BgColor: "#ffffff", BgAlpha: 12,
			Blur: 20, Saturation: 120, Brightness: 100,
			RefractionIntensity: 50,
			BorderRadius:        16,
			BorderWidth:         1, BorderColor: "#ffffff", BorderAlpha: 30,
			ShadowY: 8, ShadowBlur: 32, ShadowColor: "#000000", ShadowAlpha: 12,
		}
	case registry.ModeGlassmorphism:
		return &GlassmorphismSettings{
			BgColor: "#ffffff", BgAlpha: 15,
			Blur: 16, Saturation: 120,
			BorderRadius: 16,
			BorderWidth:  1, BorderColor: "#ffffff", BorderAlpha: 25,
			ShadowY: 4, ShadowBlur: 30, ShadowColor: "#000000", ShadowAlpha: 10,
		}
	case registry.ModeGlow:
		return &GlowSettings{
			BgColor: "#0f172a", BgAlpha: 80,
			Blur: 10, Saturation: 100,
			BorderRadius: 16,
			BorderWidth:  1, BorderColor: "#22d3ee", BorderAlpha: 40,
			GlowColor: "#22d3ee", GlowBlur: 40, GlowIntensity: 60,
		}
	case registry.ModeNeumorphism:
		return &NeumorphismSettings{
			BgColor: "#e0e0e0", Shape: ShapeFlat,
			Distance: 8, Blur: 16, Intensity: 15,
			DarkColor: "#bebebe", LightColor: "#ffffff",
			BorderRadius: 30,
		}
	}
	return nil
}
