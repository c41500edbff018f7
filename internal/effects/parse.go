package effects

import (
	"fmt"

	"bennypowers.dev/glaze/internal/collections"
	"bennypowers.dev/glaze/internal/parser/css"
	"bennypowers.dev/glaze/internal/registry"
)

// Parse reverse-engineers a CSS fragment into a settings record for the
// given mode, seeded from baseline. Recognized declarations are merged onto
// a copy of the baseline, numeric fields are clamped to their registered
// ranges, semantic rules are evaluated, and the surface contrast is
// analyzed. Parse never panics and always returns a result; Settings is nil
// only when the fragment is unparseable and yielded no declarations at all.
//
// A nil or mode-mismatched baseline falls back to DefaultSettings.
func Parse(mode registry.Mode, source string, baseline Settings) *Result {
	if baseline == nil || baseline.Mode() != mode {
		baseline = DefaultSettings(mode)
	}
	result := &Result{
		Diagnostics:     []Diagnostic{},
		GhostProperties: []GhostProperty{},
		ClampedFields:   []string{},
	}
	if baseline == nil {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Message:  fmt.Sprintf("unknown effect mode %q", mode),
			Severity: SeverityError,
		})
		return result
	}

	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)
	parsed := parser.Parse(source)

	if parsed.SyntaxErr != nil {
		line := parsed.SyntaxErr.Line
		col := parsed.SyntaxErr.Column
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Message:  parsed.SyntaxErr.Message,
			Severity: SeverityError,
			Line:     &line,
			Column:   &col,
		})
		// Parse failure with nothing salvaged is terminal.
		if len(parsed.Declarations) == 0 {
			return result
		}
	}

	// Last declaration wins per property, but every raw declaration is still
	// classified against the vocabulary.
	byProperty := map[string]css.Declaration{}
	ghostSeen := collections.NewSet[string]()
	for _, decl := range parsed.Declarations {
		if registry.Recognized(mode, decl.Property) {
			byProperty[decl.Property] = decl
			continue
		}
		if ghostSeen.Has(decl.Property) {
			continue
		}
		ghostSeen.Add(decl.Property)
		line := decl.Line
		result.GhostProperties = append(result.GhostProperties, GhostProperty{
			Property: decl.Property,
			Value:    decl.Value,
			Line:     &line,
			Reason:   fmt.Sprintf("%q is not part of the %s vocabulary", decl.Property, mode),
		})
	}

	get := func(property string) (css.Declaration, bool) {
		d, ok := byProperty[property]
		return d, ok
	}

	var settings Settings
	switch b := baseline.(type) {
	case *LiquidGlassSettings:
		settings = extractLiquidGlass(get, b, &result.Diagnostics)
	case *GlassmorphismSettings:
		settings = extractGlassmorphism(get, b, &result.Diagnostics)
	case *NeumorphismSettings:
		settings = extractNeumorphism(get, b, &result.Diagnostics)
	case *GlowSettings:
		settings = extractGlow(get, b, &result.Diagnostics)
	}

	result.Settings = settings
	if clamped := clampSettings(settings, &result.Diagnostics); clamped != nil {
		result.ClampedFields = clamped
	}
	semanticDiagnostics(settings, &result.Diagnostics)
	result.Accessibility = analyzeAccessibility(settings)

	return result
}
