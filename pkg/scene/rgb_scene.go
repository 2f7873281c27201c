package scene

import (
	"github.com/ngynkvn/raytracer/pkg/core"
)

// NewRGBScene creates the reference scene without the ground: just the red,
// green and blue spheres floating against the white background. Useful for
// eyeballing the canvas-to-viewport mapping, since each sphere lands in a
// known third of the image.
func NewRGBScene() *Scene {
	s := &Scene{
		Camera:     core.NewVec3(0, 0, 0),
		Background: core.White,
	}

	s.AddSphere(core.NewVec3(0, -1, 3), 1, core.Red)
	s.AddSphere(core.NewVec3(2, 0, 4), 1, core.Green)
	s.AddSphere(core.NewVec3(-2, 0, 4), 1, core.Blue)

	s.AddAmbientLight(0.2)
	s.AddPointLight(core.NewVec3(2, 1, 0), 0.6)
	s.AddDirectionalLight(core.NewVec3(1, 4, 4), 0.2)

	return s
}
