package registry_test

import (
	"testing"

	"bennypowers.dev/glaze/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, mode := range registry.Modes() {
		parsed, ok := registry.ParseMode(string(mode))
		require.True(t, ok)
		assert.Equal(t, mode, parsed)
	}

	_, ok := registry.ParseMode("skeuomorphism")
	assert.False(t, ok)
}

func TestVocabularies(t *testing.T) {
	t.Run("glass modes share the full vocabulary", func(t *testing.T) {
		for _, mode := range []registry.Mode{
			registry.ModeLiquidGlass, registry.ModeGlassmorphism, registry.ModeGlow,
		} {
			assert.True(t, registry.Recognized(mode, "background"))
			assert.True(t, registry.Recognized(mode, "backdrop-filter"))
			assert.True(t, registry.Recognized(mode, "-webkit-backdrop-filter"))
			assert.True(t, registry.Recognized(mode, "border"))
			assert.True(t, registry.Recognized(mode, "border-radius"))
			assert.True(t, registry.Recognized(mode, "box-shadow"))
		}
	})

	t.Run("neumorphism has no filter or border vocabulary", func(t *testing.T) {
		assert.True(t, registry.Recognized(registry.ModeNeumorphism, "background"))
		assert.True(t, registry.Recognized(registry.ModeNeumorphism, "box-shadow"))
		assert.False(t, registry.Recognized(registry.ModeNeumorphism, "backdrop-filter"))
		assert.False(t, registry.Recognized(registry.ModeNeumorphism, "border"))
	})

	t.Run("layout properties are never recognized", func(t *testing.T) {
		for _, mode := range registry.Modes() {
			assert.False(t, registry.Recognized(mode, "position"))
			assert.False(t, registry.Recognized(mode, "display"))
		}
	})

	t.Run("every vocabulary entry has a description", func(t *testing.T) {
		for _, mode := range registry.Modes() {
			names := registry.Vocabulary(mode)
			require.NotEmpty(t, names)
			for _, name := range names {
				description, ok := registry.Description(mode, name)
				assert.True(t, ok)
				assert.NotEmpty(t, description)
			}
		}
	})
}

func TestFieldRanges(t *testing.T) {
	t.Run("glassmorphism blur caps at 50", func(t *testing.T) {
		r, ok := registry.FieldRange(registry.ModeGlassmorphism, "blur")
		require.True(t, ok)
		assert.Equal(t, 0.0, r.Min)
		assert.Equal(t, 50.0, r.Max)
	})

	t.Run("shadow offsets allow negatives", func(t *testing.T) {
		r, ok := registry.FieldRange(registry.ModeLiquidGlass, "shadowX")
		require.True(t, ok)
		assert.Negative(t, r.Min)
	})

	t.Run("unknown fields have no range", func(t *testing.T) {
		_, ok := registry.FieldRange(registry.ModeGlow, "bgColor")
		assert.False(t, ok)
	})

	t.Run("ranged fields are sorted and well formed", func(t *testing.T) {
		for _, mode := range registry.Modes() {
			fields := registry.RangedFields(mode)
			require.NotEmpty(t, fields)
			for i, name := range fields {
				if i > 0 {
					assert.Less(t, fields[i-1], name, "fields should be sorted")
				}
				r, ok := registry.FieldRange(mode, name)
				require.True(t, ok)
				assert.Less(t, r.Min, r.Max)
			}
		}
	})
}
