package renderer

import (
	"image"

	"github.com/ngynkvn/raytracer/pkg/core"
)

// Canvas is the pixel grid a render writes into: a row-major width×height
// grid of colors with the origin at the top-left. Tile bounds never overlap,
// so each pixel has exactly one writer during a render and no locking is
// needed.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a canvas with every pixel initialized to black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel writes the color at grid position (x, y)
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at grid position (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// ToRGBA converts the whole canvas to an 8-bit RGBA image for encoding
func (c *Canvas) ToRGBA() *image.RGBA {
	return c.RegionRGBA(image.Rect(0, 0, c.width, c.height))
}

// RegionRGBA converts a sub-rectangle of the canvas to an RGBA image with
// its own origin at (0, 0). The web server uses this to stream finished
// tiles without copying the full canvas.
func (c *Canvas) RegionRGBA(bounds image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, c.PixelAt(x, y).RGBA())
		}
	}
	return img
}
