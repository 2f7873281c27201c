package renderer

import (
	"github.com/ngynkvn/raytracer/pkg/core"
)

// Camera maps canvas pixels onto the viewport plane and generates the
// primary ray for each. The viewport sits ProjectionDistance in front of the
// eye point along +z; there is no rotation.
type Camera struct {
	origin             core.Vec3
	canvasWidth        int
	canvasHeight       int
	viewportWidth      float64
	viewportHeight     float64
	projectionDistance float64
}

// NewCamera creates a camera at the given eye point using the canvas and
// viewport geometry from config
func NewCamera(origin core.Vec3, config Config) *Camera {
	return &Camera{
		origin:             origin,
		canvasWidth:        config.CanvasWidth,
		canvasHeight:       config.CanvasHeight,
		viewportWidth:      config.ViewportWidth,
		viewportHeight:     config.ViewportHeight,
		projectionDistance: config.ProjectionDistance,
	}
}

// Origin returns the camera's eye point
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// CanvasToViewport maps centered canvas coordinates, x in [-Cw/2, Cw/2) and
// y in [-Ch/2, Ch/2), to the viewport point they project onto. The result
// doubles as the direction of the primary ray from a camera at the origin.
func (c *Camera) CanvasToViewport(x, y int) core.Vec3 {
	return core.NewVec3(
		float64(x)*c.viewportWidth/float64(c.canvasWidth),
		float64(y)*c.viewportHeight/float64(c.canvasHeight),
		c.projectionDistance,
	)
}

// PixelRay returns the primary ray through the canvas pixel at grid indices
// (px, py), with (0, 0) the top-left pixel. Canvas rows grow downward while
// world y grows upward, so the row index is flipped.
func (c *Camera) PixelRay(px, py int) core.Ray {
	x := px - c.canvasWidth/2
	y := c.canvasHeight/2 - py - 1
	return core.NewRay(c.origin, c.CanvasToViewport(x, y))
}
