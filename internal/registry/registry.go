// Package registry holds the static per-mode vocabulary and numeric range
// tables for the effect settings engine. The tables are process-wide
// constants: read-only after initialization, never written by a parse call.
// All recognition and bounds decisions go through this package.
package registry

import (
	"sort"

	"bennypowers.dev/glaze/internal/collections"
)

// Mode identifies one of the visual-effect presentation styles.
type Mode string

const (
	ModeLiquidGlass   Mode = "liquid-glass"
	ModeGlassmorphism Mode = "glassmorphism"
	ModeNeumorphism   Mode = "neumorphism"
	ModeGlow          Mode = "glow"
)

var validModes = collections.NewSet(
	ModeLiquidGlass, ModeGlassmorphism, ModeNeumorphism, ModeGlow,
)

// Modes returns every supported effect mode.
func Modes() []Mode {
	return []Mode{ModeLiquidGlass, ModeGlassmorphism, ModeNeumorphism, ModeGlow}
}

// ParseMode validates a mode tag.
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	return m, validModes.Has(m)
}

// Range is an inclusive [Min,Max] bound for a numeric settings field.
type Range struct {
	Min float64
	Max float64
}

// glassVocabulary is shared by the three translucent modes.
var glassVocabulary = map[string]string{
	"background":              "surface color and opacity",
	"backdrop-filter":         "blur, saturation and brightness of content behind the surface",
	"-webkit-backdrop-filter": "vendor-prefixed alias of backdrop-filter",
	"border-radius":           "corner rounding",
	"border":                  "edge width, style and color",
	"box-shadow":              "drop shadow layers",
}

var vocabularies = map[Mode]map[string]string{
	ModeLiquidGlass:   glassVocabulary,
	ModeGlassmorphism: glassVocabulary,
	ModeGlow:          glassVocabulary,
	ModeNeumorphism: {
		"background":    "surface color, flat or gradient",
		"border-radius": "corner rounding",
		"box-shadow":    "extruded or pressed shadow pair",
	},
}

var ranges = map[Mode]map[string]Range{
	ModeLiquidGlass: {
		"bgAlpha":             {0, 100},
		"blur":                {0, 100},
		"saturation":          {0, 300},
		"brightness":          {50, 200},
		"refractionIntensity": {0, 100},
		"borderRadius":        {0, 100},
		"borderWidth":         {0, 10},
		"borderAlpha":         {0, 100},
		"shadowX":             {-50, 50},
		"shadowY":             {-50, 50},
		"shadowBlur":          {0, 200},
		"shadowSpread":        {-50, 50},
		"shadowAlpha":         {0, 100},
	},
	ModeGlassmorphism: {
		"bgAlpha":      {0, 100},
		"blur":         {0, 50},
		"saturation":   {0, 300},
		"borderRadius": {0, 100},
		"borderWidth":  {0, 10},
		"borderAlpha":  {0, 100},
		"shadowX":      {-50, 50},
		"shadowY":      {-50, 50},
		"shadowBlur":   {0, 100},
		"shadowAlpha":  {0, 100},
	},
	ModeGlow: {
		"bgAlpha":       {0, 100},
		"blur":          {0, 50},
		"saturation":    {0, 300},
		"borderRadius":  {0, 100},
		"borderWidth":   {0, 10},
		"borderAlpha":   {0, 100},
		"glowBlur":      {0, 300},
		"glowSpread":    {0, 100},
		"glowIntensity": {0, 100},
		"innerGlow":     {0, 100},
	},
	ModeNeumorphism: {
		"distance":     {0, 50},
		"blur":         {0, 100},
		"intensity":    {0, 100},
		"borderRadius": {0, 200},
	},
}

// Recognized reports whether a property is part of the mode's vocabulary.
func Recognized(mode Mode, property string) bool {
	_, ok := vocabularies[mode][property]
	return ok
}

// Description returns the vocabulary description for a recognized property.
func Description(mode Mode, property string) (string, bool) {
	d, ok := vocabularies[mode][property]
	return d, ok
}

// Vocabulary returns the mode's recognized property names, sorted.
func Vocabulary(mode Mode) []string {
	names := make([]string, 0, len(vocabularies[mode]))
	for name := range vocabularies[mode] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldRange returns the declared [min,max] bound for a numeric field.
// Fields without a declared range are not clamped.
func FieldRange(mode Mode, field string) (Range, bool) {
	r, ok := ranges[mode][field]
	return r, ok
}

// RangedFields returns the names of the mode's range-bounded fields, sorted
// so that clamp passes report in a stable order.
func RangedFields(mode Mode) []string {
	names := make([]string, 0, len(ranges[mode]))
	for name := range ranges[mode] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
