// Package colorimetry provides WCAG 2.0 contrast math and hex color codecs.
//
// The package has two halves. The contrast half implements the WCAG 2.0
// relative-luminance model: channels are normalized, gamma-decoded with the
// sRGB transfer function, and weighted with the Rec. 709 coefficients; the
// contrast ratio of two colors is (Lmax + 0.05) / (Lmin + 0.05) and ranges
// from 1 to 21. The codec half converts between 8-bit RGB triples and the
// canonical "#rrggbb" hex form.
//
// # Color Representation
//
// Colors are plain RGB structs with uint8 components. There is no alpha
// channel and no color space other than sRGB. Because components are uint8,
// out-of-range values cannot be expressed and no function in this package
// validates channel ranges.
//
// # Error Handling
//
// The only failing operation is ParseHex, which returns an error wrapping
// ErrInvalidFormat when its input does not match the [#]rrggbb pattern.
// Everything else is total over its input type.
//
// # Precision
//
// Luminance and contrast are computed in float64 and never rounded. Callers
// that display ratios should format to the precision they need; WCAG
// conformance checks use the exact value via Compliance.
package colorimetry
