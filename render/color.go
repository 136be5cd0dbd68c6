package render

import "github.com/lucasb-eyer/go-colorful"

// HSL is a colour in hue/saturation/lightness, each in [0, 1]. It satisfies
// color.Color so any surface taking image/color values can draw with it.
type HSL struct {
	H, S, L float64
}

// RGBA converts through go-colorful, which takes hue in degrees.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.Colorful().Clamped().RGBA()
}

// Colorful returns the equivalent go-colorful colour.
func (c HSL) Colorful() colorful.Color {
	return colorful.Hsl(c.H*360, c.S, c.L)
}
