package effects

import (
	"testing"

	"bennypowers.dev/glaze/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSettings(t *testing.T) {
	t.Run("in-range values are untouched", func(t *testing.T) {
		s := DefaultSettings(registry.ModeGlassmorphism)
		var diags []Diagnostic
		clamped := clampSettings(s, &diags)
		assert.Empty(t, clamped)
		assert.Empty(t, diags)
	})

	t.Run("values above the maximum clamp down", func(t *testing.T) {
		s := DefaultSettings(registry.ModeGlassmorphism).(*GlassmorphismSettings)
		s.Blur = 999
		var diags []Diagnostic
		clamped := clampSettings(s, &diags)
		assert.Equal(t, []string{"blur"}, clamped)
		assert.Equal(t, 50.0, s.Blur)
		require.Len(t, diags, 1)
		assert.Equal(t, SeverityInfo, diags[0].Severity)
		assert.Equal(t, "blur", diags[0].Property)
	})

	t.Run("values below the minimum clamp up", func(t *testing.T) {
		s := DefaultSettings(registry.ModeNeumorphism).(*NeumorphismSettings)
		s.Distance = -5
		var diags []Diagnostic
		clamped := clampSettings(s, &diags)
		assert.Equal(t, []string{"distance"}, clamped)
		assert.Equal(t, 0.0, s.Distance)
	})

	t.Run("multiple corrections report in registry order", func(t *testing.T) {
		s := DefaultSettings(registry.ModeGlassmorphism).(*GlassmorphismSettings)
		s.Blur = 999
		s.BgAlpha = 200
		s.Saturation = -10
		var diags []Diagnostic
		clamped := clampSettings(s, &diags)
		assert.Equal(t, []string{"bgAlpha", "blur", "saturation"}, clamped)
	})

	t.Run("idempotent", func(t *testing.T) {
		s := DefaultSettings(registry.ModeGlow).(*GlowSettings)
		s.GlowBlur = 9000
		s.BorderAlpha = -1
		var diags []Diagnostic
		first := clampSettings(s, &diags)
		require.NotEmpty(t, first)

		var again []Diagnostic
		second := clampSettings(s, &again)
		assert.Empty(t, second, "a second pass over clamped settings must be a no-op")
		assert.Empty(t, again)
	})
}
