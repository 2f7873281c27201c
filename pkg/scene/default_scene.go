package scene

import (
	"github.com/ngynkvn/raytracer/pkg/core"
)

// NewDefaultScene creates the reference scene: three unit spheres in front of
// the camera, a huge fourth sphere standing in for the ground, and one light
// of each kind. Rays that miss everything see a white background.
func NewDefaultScene() *Scene {
	s := &Scene{
		Camera:     core.NewVec3(0, 0, 0),
		Background: core.White,
	}

	s.AddSphere(core.NewVec3(0, -1, 3), 1, core.Red)
	s.AddSphere(core.NewVec3(2, 0, 4), 1, core.Green)
	s.AddSphere(core.NewVec3(-2, 0, 4), 1, core.Blue)
	s.AddSphere(core.NewVec3(0, -5001, 0), 5000, core.Teal) // the ground

	s.AddAmbientLight(0.2)
	s.AddPointLight(core.NewVec3(2, 1, 0), 0.6)
	s.AddDirectionalLight(core.NewVec3(1, 4, 4), 0.2)

	return s
}
