package lights

import "github.com/ngynkvn/raytracer/pkg/core"

// ComputeLighting accumulates the diffuse contribution of every light at
// surface point p with outward normal n, starting from zero. The sum is not
// clamped; scenes with strong lights can push it past 1.
func ComputeLighting(p, n core.Vec3, sceneLights []Light) float64 {
	intensity := 0.0
	for _, light := range sceneLights {
		intensity += light.Illuminate(p, n)
	}
	return intensity
}

// diffuse is the Lambert term shared by point and directional lights: the
// intensity scaled by the cosine of the angle between the normal and the
// light vector. A non-positive dot product means the surface faces away and
// contributes zero, which also keeps degenerate vectors out of the division.
func diffuse(n, l core.Vec3, intensity float64) float64 {
	d := n.Dot(l)
	if d <= 0 {
		return 0
	}
	return intensity * d / (n.Length() * l.Length())
}
