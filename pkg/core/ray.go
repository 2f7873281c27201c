package core

import "errors"

// ErrInvalidRay reports a ray whose direction is the zero vector. Such a ray
// points nowhere and cannot be intersected or traced.
var ErrInvalidRay = errors.New("invalid ray: zero direction")

// Ray represents a ray with an origin and direction. The direction does not
// need to be normalized; intersection parameters scale with its length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
