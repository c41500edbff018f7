package effects_test

import (
	"fmt"
	"strings"
	"testing"

	"bennypowers.dev/glaze/internal/color"
	"bennypowers.dev/glaze/internal/effects"
	"bennypowers.dev/glaze/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The generators below render a settings record to the CSS a design tool
// would emit for it. Feeding that CSS back through Parse must reproduce the
// record: px values exactly, alpha percentages within one point.

func rgba(t *testing.T, hex string, alphaPct float64) string {
	t.Helper()
	c, ok := color.FromHex(hex)
	require.True(t, ok, "bad fixture color %q", hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, alphaPct/100)
}

func liquidGlassCSS(t *testing.T, s *effects.LiquidGlassSettings) string {
	return strings.Join([]string{
		fmt.Sprintf("background: %s;", rgba(t, s.BgColor, s.BgAlpha)),
		fmt.Sprintf("backdrop-filter: blur(%gpx) saturate(%g%%) brightness(%g%%);", s.Blur, s.Saturation, s.Brightness),
		fmt.Sprintf("border-radius: %gpx;", s.BorderRadius),
		fmt.Sprintf("border: %gpx solid %s;", s.BorderWidth, rgba(t, s.BorderColor, s.BorderAlpha)),
		fmt.Sprintf("box-shadow: %gpx %gpx %gpx %gpx %s;",
			s.ShadowX, s.ShadowY, s.ShadowBlur, s.ShadowSpread, rgba(t, s.ShadowColor, s.ShadowAlpha)),
	}, "\n")
}

func glassmorphismCSS(t *testing.T, s *effects.GlassmorphismSettings) string {
	return strings.Join([]string{
		fmt.Sprintf("background: %s;", rgba(t, s.BgColor, s.BgAlpha)),
		fmt.Sprintf("backdrop-filter: blur(%gpx) saturate(%g%%);", s.Blur, s.Saturation),
		fmt.Sprintf("border-radius: %gpx;", s.BorderRadius),
		fmt.Sprintf("border: %gpx solid %s;", s.BorderWidth, rgba(t, s.BorderColor, s.BorderAlpha)),
		fmt.Sprintf("box-shadow: %gpx %gpx %gpx %s;",
			s.ShadowX, s.ShadowY, s.ShadowBlur, rgba(t, s.ShadowColor, s.ShadowAlpha)),
	}, "\n")
}

func glowCSS(t *testing.T, s *effects.GlowSettings) string {
	lines := []string{
		fmt.Sprintf("background: %s;", rgba(t, s.BgColor, s.BgAlpha)),
		fmt.Sprintf("backdrop-filter: blur(%gpx) saturate(%g%%);", s.Blur, s.Saturation),
		fmt.Sprintf("border-radius: %gpx;", s.BorderRadius),
		fmt.Sprintf("border: %gpx solid %s;", s.BorderWidth, rgba(t, s.BorderColor, s.BorderAlpha)),
	}
	shadow := fmt.Sprintf("0 0 %gpx %gpx %s", s.GlowBlur, s.GlowSpread, rgba(t, s.GlowColor, s.GlowIntensity*0.6))
	if s.InnerGlow > 0 {
		shadow += fmt.Sprintf(", inset 0 0 %gpx %s", s.InnerGlow, rgba(t, s.GlowColor, 20))
	}
	lines = append(lines, fmt.Sprintf("box-shadow: %s;", shadow))
	return strings.Join(lines, "\n")
}

func neumorphismCSS(t *testing.T, s *effects.NeumorphismSettings) string {
	var background string
	switch s.Shape {
	case effects.ShapeConvex:
		background = fmt.Sprintf("linear-gradient(145deg, %s, %s)", s.BgColor, darken(t, s.BgColor))
	case effects.ShapeConcave:
		background = fmt.Sprintf("linear-gradient(315deg, %s, %s)", s.BgColor, darken(t, s.BgColor))
	default:
		background = s.BgColor
	}

	inset := ""
	if s.Shape == effects.ShapePressed {
		inset = "inset "
	}
	shadow := fmt.Sprintf("%s%gpx %gpx %gpx %s, %s-%gpx -%gpx %gpx %s",
		inset, s.Distance, s.Distance, s.Blur, rgba(t, s.DarkColor, s.Intensity),
		inset, s.Distance, s.Distance, s.Blur, rgba(t, s.LightColor, 60))

	return strings.Join([]string{
		fmt.Sprintf("background: %s;", background),
		fmt.Sprintf("border-radius: %gpx;", s.BorderRadius),
		fmt.Sprintf("box-shadow: %s;", shadow),
	}, "\n")
}

func darken(t *testing.T, hex string) string {
	t.Helper()
	c, ok := color.FromHex(hex)
	require.True(t, ok)
	return c.Darken(0.1).Hex()
}

func TestRoundTripLiquidGlass(t *testing.T) {
	want := &effects.LiquidGlassSettings{
		BgColor: "#1e293b", BgAlpha: 25,
		Blur: 32, Saturation: 140, Brightness: 110,
		RefractionIntensity: 50,
		BorderRadius:        24,
		BorderWidth:         2, BorderColor: "#ffffff", BorderAlpha: 35,
		ShadowX: 0, ShadowY: 12, ShadowBlur: 48, ShadowSpread: 4,
		ShadowColor: "#000000", ShadowAlpha: 18,
	}

	result := effects.Parse(registry.ModeLiquidGlass, liquidGlassCSS(t, want), want)
	require.NotNil(t, result.Settings)
	got := result.Settings.(*effects.LiquidGlassSettings)

	assert.Equal(t, want.BgColor, got.BgColor)
	assert.InDelta(t, want.BgAlpha, got.BgAlpha, 1)
	assert.Equal(t, want.Blur, got.Blur)
	assert.Equal(t, want.Saturation, got.Saturation)
	assert.Equal(t, want.Brightness, got.Brightness)
	assert.Equal(t, want.BorderRadius, got.BorderRadius)
	assert.Equal(t, want.BorderWidth, got.BorderWidth)
	assert.Equal(t, want.BorderColor, got.BorderColor)
	assert.InDelta(t, want.BorderAlpha, got.BorderAlpha, 1)
	assert.Equal(t, want.ShadowX, got.ShadowX)
	assert.Equal(t, want.ShadowY, got.ShadowY)
	assert.Equal(t, want.ShadowBlur, got.ShadowBlur)
	assert.Equal(t, want.ShadowSpread, got.ShadowSpread)
	assert.Equal(t, want.ShadowColor, got.ShadowColor)
	assert.InDelta(t, want.ShadowAlpha, got.ShadowAlpha, 1)
	assert.Empty(t, result.GhostProperties)
	assert.Empty(t, result.ClampedFields)
}

func TestRoundTripGlassmorphism(t *testing.T) {
	want := &effects.GlassmorphismSettings{
		BgColor: "#ffffff", BgAlpha: 15,
		Blur: 12, Saturation: 160,
		BorderRadius: 20,
		BorderWidth:  1, BorderColor: "#e2e8f0", BorderAlpha: 40,
		ShadowX: 0, ShadowY: 8, ShadowBlur: 32,
		ShadowColor: "#0f172a", ShadowAlpha: 20,
	}

	result := effects.Parse(registry.ModeGlassmorphism, glassmorphismCSS(t, want), want)
	require.NotNil(t, result.Settings)
	got := result.Settings.(*effects.GlassmorphismSettings)

	assert.Equal(t, want.BgColor, got.BgColor)
	assert.InDelta(t, want.BgAlpha, got.BgAlpha, 1)
	assert.Equal(t, want.Blur, got.Blur)
	assert.Equal(t, want.Saturation, got.Saturation)
	assert.Equal(t, want.BorderColor, got.BorderColor)
	assert.Equal(t, want.ShadowColor, got.ShadowColor)
	assert.InDelta(t, want.ShadowAlpha, got.ShadowAlpha, 1)
	assert.Empty(t, result.ClampedFields)
}

func TestRoundTripGlow(t *testing.T) {
	for _, intensity := range []float64{25, 33, 50, 60, 80} {
		t.Run(fmt.Sprintf("intensity %g", intensity), func(t *testing.T) {
			want := &effects.GlowSettings{
				BgColor: "#0f172a", BgAlpha: 80,
				Blur: 10, Saturation: 100,
				BorderRadius: 16,
				BorderWidth:  1, BorderColor: "#22d3ee", BorderAlpha: 40,
				GlowColor: "#22d3ee", GlowBlur: 60, GlowSpread: 8,
				GlowIntensity: intensity, InnerGlow: 20,
			}

			result := effects.Parse(registry.ModeGlow, glowCSS(t, want), want)
			require.NotNil(t, result.Settings)
			got := result.Settings.(*effects.GlowSettings)

			assert.Equal(t, want.GlowColor, got.GlowColor)
			assert.Equal(t, want.GlowBlur, got.GlowBlur)
			assert.Equal(t, want.GlowSpread, got.GlowSpread)
			assert.InDelta(t, want.GlowIntensity, got.GlowIntensity, 1,
				"alpha encode/decode should invert within one point")
			assert.Equal(t, want.InnerGlow, got.InnerGlow)
		})
	}
}

func TestRoundTripNeumorphism(t *testing.T) {
	for _, shape := range []effects.Shape{
		effects.ShapeFlat, effects.ShapeConvex, effects.ShapeConcave, effects.ShapePressed,
	} {
		t.Run(string(shape), func(t *testing.T) {
			want := &effects.NeumorphismSettings{
				BgColor: "#e0e0e0", Shape: shape,
				Distance: 6, Blur: 12, Intensity: 20,
				DarkColor: "#a3a3a3", LightColor: "#ffffff",
				BorderRadius: 24,
			}

			result := effects.Parse(registry.ModeNeumorphism, neumorphismCSS(t, want), want)
			require.NotNil(t, result.Settings)
			got := result.Settings.(*effects.NeumorphismSettings)

			assert.Equal(t, want.Shape, got.Shape)
			assert.Equal(t, want.BgColor, got.BgColor)
			assert.Equal(t, want.Distance, got.Distance)
			assert.Equal(t, want.Blur, got.Blur)
			assert.InDelta(t, want.Intensity, got.Intensity, 1)
			assert.Equal(t, want.DarkColor, got.DarkColor)
			assert.Equal(t, want.LightColor, got.LightColor)
			assert.Equal(t, want.BorderRadius, got.BorderRadius)
		})
	}
}
