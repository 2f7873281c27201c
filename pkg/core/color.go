package core

import "image/color"

// Color is an RGB color with channels on the 0 to 255 scale. Shading
// multiplies colors by a real lighting intensity, so channels routinely
// leave that range during a render; values are clamped only when a canvas
// is converted to 8-bit pixels.
type Color struct {
	R, G, B float64
}

// Colors used by the built-in scenes
var (
	White = NewColor(255, 255, 255)
	Red   = NewColor(255, 0, 0)
	Green = NewColor(0, 255, 0)
	Blue  = NewColor(0, 0, 255)
	Teal  = NewColor(0, 255, 255)
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Scale returns the color with every channel multiplied by k
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Clamp returns the color with every channel clamped to [0, 255]
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(255, c.R)),
		G: max(0, min(255, c.G)),
		B: max(0, min(255, c.B)),
	}
}

// RGBA converts the color to an opaque 8-bit pixel. Channels are clamped to
// [0, 255] and truncated, so over-bright pixels saturate instead of wrapping.
func (c Color) RGBA() color.RGBA {
	cl := c.Clamp()
	return color.RGBA{
		R: uint8(cl.R),
		G: uint8(cl.G),
		B: uint8(cl.B),
		A: 255,
	}
}
