package colorimetry

import "math"

// RGB represents an sRGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
//
// Because the components are uint8, out-of-range channel values are
// unrepresentable and the contrast functions perform no validation.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// sRGB transfer function and Rec. 709 luminance constants per WCAG 2.0.
// These values must match the standard exactly for conformant results.
const (
	linearThreshold = 0.03928
	linearDivisor   = 12.92
	gammaOffset     = 0.055
	gammaScale      = 1.055
	gammaExponent   = 2.4

	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// linearize applies the sRGB-to-linear transfer function to a normalized
// channel value in [0, 1].
func linearize(v float64) float64 {
	if v <= linearThreshold {
		return v / linearDivisor
	}
	return math.Pow((v+gammaOffset)/gammaScale, gammaExponent)
}

// RelativeLuminance computes the WCAG 2.0 relative luminance of a color.
//
// Each channel is normalized to [0, 1], gamma-decoded to linear light, and
// combined with the Rec. 709 perceptual weights. The result is in [0, 1],
// where 0 is black and 1 is white.
func RelativeLuminance(c RGB) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return weightRed*r + weightGreen*g + weightBlue*b
}

// ContrastRatio computes the WCAG 2.0 contrast ratio between two colors.
//
// The result is (Lmax + 0.05) / (Lmin + 0.05) where Lmax and Lmin are the
// larger and smaller relative luminances of the two inputs. The ratio is
// symmetric in its arguments and ranges from 1 (identical luminance) to 21
// (black against white). No rounding is applied; callers format as needed.
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// WCAG 2.0 contrast thresholds.
const (
	// ThresholdAA is the minimum ratio for normal text at level AA,
	// and for large text at level AAA.
	ThresholdAA = 4.5

	// ThresholdAALarge is the minimum ratio for large text at level AA.
	ThresholdAALarge = 3.0

	// ThresholdAAA is the minimum ratio for normal text at level AAA.
	ThresholdAAA = 7.0
)

// ComplianceResult reports which WCAG 2.0 conformance levels a contrast
// ratio satisfies.
type ComplianceResult struct {
	Ratio    float64 `json:"ratio"`     // The contrast ratio that was evaluated
	AA       bool    `json:"aa"`        // Normal text, level AA (>= 4.5)
	AALarge  bool    `json:"aa_large"`  // Large text, level AA (>= 3.0)
	AAA      bool    `json:"aaa"`       // Normal text, level AAA (>= 7.0)
	AAALarge bool    `json:"aaa_large"` // Large text, level AAA (>= 4.5)
}

// Compliance evaluates a contrast ratio against the WCAG 2.0 thresholds.
func Compliance(ratio float64) ComplianceResult {
	return ComplianceResult{
		Ratio:    ratio,
		AA:       ratio >= ThresholdAA,
		AALarge:  ratio >= ThresholdAALarge,
		AAA:      ratio >= ThresholdAAA,
		AAALarge: ratio >= ThresholdAA,
	}
}

// SuggestTextColor returns black or white, whichever has the higher
// contrast ratio against the given background.
//
// Black wins ties, since dark-on-light text is the common default.
func SuggestTextColor(bg RGB) RGB {
	if ContrastRatio(black, bg) >= ContrastRatio(white, bg) {
		return black
	}
	return white
}
