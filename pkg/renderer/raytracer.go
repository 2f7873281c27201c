package renderer

import (
	"math"

	"github.com/ngynkvn/raytracer/pkg/core"
	"github.com/ngynkvn/raytracer/pkg/geometry"
	"github.com/ngynkvn/raytracer/pkg/lights"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

// Raytracer resolves individual rays against a scene. The scene is treated
// as read-only, so a single raytracer can serve many goroutines at once.
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// Hit records the nearest sphere intersection found along a ray
type Hit struct {
	Sphere *geometry.Sphere
	T      float64
}

// ClosestHit finds the nearest sphere the ray intersects at a parametric
// distance strictly inside (tMin, tMax). Both roots of every sphere are
// considered, and a candidate only replaces the best hit when strictly
// closer, so the first sphere in scene order wins exact ties.
func (rt *Raytracer) ClosestHit(ray core.Ray, tMin, tMax float64) (Hit, bool, error) {
	closest := Hit{T: math.Inf(1)}
	hitAnything := false

	for _, sphere := range rt.scene.Spheres {
		t1, t2, err := sphere.IntersectRay(ray)
		if err != nil {
			return Hit{}, false, err
		}
		if tMin < t1 && t1 < tMax && t1 < closest.T {
			closest = Hit{Sphere: sphere, T: t1}
			hitAnything = true
		}
		if tMin < t2 && t2 < tMax && t2 < closest.T {
			closest = Hit{Sphere: sphere, T: t2}
			hitAnything = true
		}
	}

	return closest, hitAnything, nil
}

// TraceRay resolves a single ray to a color: the nearest intersected
// sphere's base color scaled by the accumulated lighting at the hit point,
// or the scene background when nothing is hit. The result is not clamped;
// that happens when the canvas is converted to 8-bit pixels.
func (rt *Raytracer) TraceRay(ray core.Ray, tMin, tMax float64) (core.Color, error) {
	hit, ok, err := rt.ClosestHit(ray, tMin, tMax)
	if err != nil {
		return core.Color{}, err
	}
	if !ok {
		return rt.scene.Background, nil
	}

	p := ray.At(hit.T)
	n, err := p.Subtract(hit.Sphere.Center).Normalize()
	if err != nil {
		return core.Color{}, err
	}

	intensity := lights.ComputeLighting(p, n, rt.scene.Lights)
	return hit.Sphere.Color.Scale(intensity), nil
}
