package scene

import (
	"github.com/ngynkvn/raytracer/pkg/core"
	"github.com/ngynkvn/raytracer/pkg/geometry"
	"github.com/ngynkvn/raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering: the camera origin,
// the spheres a ray can hit and the lights that shade them. A scene is built
// up front and never mutated during a render, so render workers share it
// without locks.
type Scene struct {
	Camera     core.Vec3
	Spheres    []*geometry.Sphere
	Lights     []lights.Light
	Background core.Color // color for rays that hit nothing
}

// AddSphere appends a sphere to the scene. Order matters for exact
// intersection ties: the earlier sphere wins.
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Color) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, color))
}

// AddAmbientLight adds a position-independent base light level
func (s *Scene) AddAmbientLight(intensity float64) {
	s.Lights = append(s.Lights, lights.NewAmbientLight(intensity))
}

// AddPointLight adds a light radiating from a fixed position
func (s *Scene) AddPointLight(position core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// AddDirectionalLight adds a light shining along a fixed direction
func (s *Scene) AddDirectionalLight(direction core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, intensity))
}
