package effects

import (
	"fmt"

	"bennypowers.dev/glaze/internal/registry"
)

// clampSettings forces every range-bounded numeric field into its declared
// [min,max], recording each correction. Fields already in range are left
// untouched, so the pass is idempotent. Returns the clamped field names in
// registry order.
func clampSettings(s Settings, diags *[]Diagnostic) []string {
	var clamped []string

	for _, name := range registry.RangedFields(s.Mode()) {
		bounds, ok := registry.FieldRange(s.Mode(), name)
		if !ok {
			continue
		}
		value, ok := s.field(name)
		if !ok {
			continue
		}

		corrected := value
		if corrected < bounds.Min {
			corrected = bounds.Min
		}
		if corrected > bounds.Max {
			corrected = bounds.Max
		}
		if corrected == value {
			continue
		}

		s.setField(name, corrected)
		clamped = append(clamped, name)
		*diags = append(*diags, Diagnostic{
			Message: fmt.Sprintf("%s %g is outside [%g, %g]; clamped to %g",
				name, value, bounds.Min, bounds.Max, corrected),
			Severity: SeverityInfo,
			Property: name,
		})
	}

	return clamped
}
