package colorimetry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hexPattern matches a 6-digit hex color with an optional leading '#',
// case-insensitive. Shorthand forms like "#fff" are rejected.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ErrInvalidFormat is returned by ParseHex when the input does not match
// the [#]rrggbb pattern.
var ErrInvalidFormat = errors.New("invalid hex color format, expected [#]rrggbb")

// Hex formats a color in the canonical hex form "#rrggbb": a '#' followed
// by six lowercase hex digits, two per channel, zero-padded.
func Hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a 6-digit hex color string into RGB components.
//
// The leading '#' is optional and hex digits may be in either case, so
// "ff5733" and "#FF5733" parse to the same color. Any other shape,
// including the 3-digit shorthand and the empty string, fails with
// ErrInvalidFormat.
func ParseHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}
	digits := strings.TrimPrefix(s, "#")

	// The pattern guarantees each group parses.
	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// The same color is provided in three formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components
//   - HSL: Perceptual color space for intuitive color operations
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#rrggbb"
	RGB RGB      `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// Result renders a color in all supported representations.
func Result(c RGB) ColorResult {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()

	return ColorResult{
		Hex: Hex(c),
		RGB: c,
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
	}
}
