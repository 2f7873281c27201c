package geometry

import (
	"math"

	"github.com/ngynkvn/raytracer/pkg/core"
)

// Sphere is the only scene primitive: a center, a radius and the base color
// of its surface.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// IntersectRay solves the quadratic for where the ray crosses the sphere
// surface and returns both parametric roots. A ray that misses returns +Inf
// for both. The roots carry no ordering; callers decide which are valid for
// their parameter range. A zero-direction ray fails with core.ErrInvalidRay.
func (s *Sphere) IntersectRay(ray core.Ray) (t1, t2 float64, err error) {
	if ray.Direction.IsZero() {
		return 0, 0, core.ErrInvalidRay
	}

	// Vector from the sphere center to the ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: k1*t² + k2*t + k3 = 0
	k1 := ray.Direction.Dot(ray.Direction)
	k2 := 2 * oc.Dot(ray.Direction)
	k3 := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := k2*k2 - 4*k1*k3

	// No intersection if the discriminant is negative
	if discriminant < 0 {
		return math.Inf(1), math.Inf(1), nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-k2 + sqrtD) / (2 * k1)
	t2 = (-k2 - sqrtD) / (2 * k1)
	return t1, t2, nil
}
