package lights

import "github.com/ngynkvn/raytracer/pkg/core"

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a single light source contributing diffuse intensity to a
// surface point.
type Light interface {
	Type() LightType

	// Illuminate returns the intensity this light contributes at surface
	// point p with outward normal n. Surfaces facing away from a light
	// contribute nothing.
	Illuminate(p, n core.Vec3) float64
}
