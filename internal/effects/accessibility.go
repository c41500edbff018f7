package effects

import (
	"fmt"
	"math"

	"bennypowers.dev/glaze/internal/color"
)

// WCAG 2.0 contrast thresholds for normal text.
const (
	contrastAA  = 4.5
	contrastAAA = 7.0
)

// analyzeAccessibility computes the WCAG contrast of the effect surface
// against black and white text and recommends whichever wins. The page
// behind a translucent surface is unknown, so the surface luminance is
// blended toward mid-gray in proportion to its transparency. Returns nil
// when the background color cannot be resolved.
func analyzeAccessibility(s Settings) *AccessibilityInfo {
	hex, alphaPct := s.background()
	bg, ok := color.Parse(hex)
	if !ok {
		return nil
	}

	alpha := math.Min(math.Max(alphaPct/100, 0), 1)
	effectiveLum := bg.RelativeLuminance()*alpha + 0.5*(1-alpha)

	vsWhite := color.ContrastFromLuminance(effectiveLum, 1.0)
	vsBlack := color.ContrastFromLuminance(effectiveLum, 0.0)

	ratio := vsBlack
	recommended := "#000000"
	tone := "dark"
	if vsWhite > vsBlack {
		ratio = vsWhite
		recommended = "#ffffff"
		tone = "light"
	}

	info := &AccessibilityInfo{
		ContrastRatio:        math.Round(ratio*100) / 100,
		PassesAA:             ratio >= contrastAA,
		PassesAAA:            ratio >= contrastAAA,
		RecommendedTextColor: recommended,
	}

	switch {
	case info.PassesAAA:
		info.Recommendation = fmt.Sprintf("use %s text; %.2f:1 meets WCAG AAA", tone, ratio)
	case info.PassesAA:
		info.Recommendation = fmt.Sprintf("use %s text; %.2f:1 meets WCAG AA but not AAA", tone, ratio)
	default:
		info.Recommendation = fmt.Sprintf("%s text only reaches %.2f:1; adjust the surface color or opacity", tone, ratio)
	}

	return info
}
