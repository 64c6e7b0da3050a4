package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output encodings are derived from them.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "#1e66f5" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#1e66f5".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(30, 102, 245)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Raw returns the bare channel list, e.g. "30, 102, 245", for use inside
// rgba() calls in stylesheets.
func (c Color) Raw() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// HSL returns the color as an hsl() string with whole-number components,
// e.g. "hsl(220, 91%, 54%)".
func (c Color) HSL() string {
	h, s, l := c.colorful().Hsl()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h))%360, int(math.Round(s*100)), int(math.Round(l*100)))
}

// RGBA returns the color in rgba() format with the given alpha in [0, 1].
func (c Color) RGBA(alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
