package geometry

import (
	"math"

	"github.com/halverson/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Intersect tests if a ray intersects with the sphere.
// Solves the quadratic at² + bt + c = 0 and prefers the near root when
// it lies beyond Epsilon, falls back to the far root, else misses.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	if t1 > Epsilon {
		return t1, true
	}
	if t2 > Epsilon {
		return t2, true
	}
	return 0, false
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// Albedo returns the sphere's color
func (s *Sphere) Albedo() core.Vec3 {
	return s.Color
}
