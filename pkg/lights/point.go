package lights

import "github.com/ngynkvn/raytracer/pkg/core"

// PointLight radiates from a fixed position in the scene. Its contribution
// depends on the angle between the surface normal and the direction from the
// surface point toward the light.
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Type identifies this as a point light
func (l *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate applies the diffuse rule along the direction from p to the light
func (l *PointLight) Illuminate(p, n core.Vec3) float64 {
	return diffuse(n, l.Position.Subtract(p), l.Intensity)
}
