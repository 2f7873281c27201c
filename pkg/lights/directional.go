package lights

import "github.com/ngynkvn/raytracer/pkg/core"

// DirectionalLight shines along a fixed direction from infinitely far away,
// like sunlight. Every surface point sees the same light vector.
type DirectionalLight struct {
	Direction core.Vec3 // points toward the light, not away from it
	Intensity float64
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, intensity float64) *DirectionalLight {
	return &DirectionalLight{Direction: direction, Intensity: intensity}
}

// Type identifies this as a directional light
func (l *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate applies the diffuse rule along the light's fixed direction
func (l *DirectionalLight) Illuminate(p, n core.Vec3) float64 {
	return diffuse(n, l.Direction, l.Intensity)
}
