package geometry

import (
	"math"

	"github.com/halverson/go-sphere-tracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector, unit length
	Color  core.Vec3
}

// NewPlane creates a new plane. The normal is normalized here.
func NewPlane(point, normal core.Vec3, color core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Color:  color,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Near-zero denominator means the ray runs parallel to the plane
	if math.Abs(denominator) <= Epsilon {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < Epsilon {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane's normal regardless of the point; planes
// are infinite and shaded without back-face culling.
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Albedo returns the plane's color
func (p *Plane) Albedo() core.Vec3 {
	return p.Color
}
