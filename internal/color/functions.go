package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Brighten returns c with its HSL lightness raised by amount (0.1 = 10
// percentage points). The result is clamped to white.
func Brighten(c Color, amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l = math.Max(0, math.Min(1, l+amount))
	return fromColorful(colorful.Hsl(h, s, l))
}

// Darken returns c with its HSL lightness lowered by amount, clamped to black.
func Darken(c Color, amount float64) Color {
	return Brighten(c, -amount)
}

// Fade returns c as an rgba() string with the given opacity in [0, 1].
func Fade(c Color, opacity float64) string {
	return c.RGBA(opacity)
}
