package lights

import "github.com/ngynkvn/raytracer/pkg/core"

// AmbientLight illuminates every surface equally. It has no position or
// direction, only an intensity.
type AmbientLight struct {
	Intensity float64
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(intensity float64) *AmbientLight {
	return &AmbientLight{Intensity: intensity}
}

// Type identifies this as an ambient light
func (l *AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// Illuminate contributes the full intensity regardless of position or normal
func (l *AmbientLight) Illuminate(p, n core.Vec3) float64 {
	return l.Intensity
}
