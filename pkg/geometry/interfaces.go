package geometry

import "github.com/halverson/go-sphere-tracer/pkg/core"

// Epsilon is the minimum accepted intersection distance. It keeps rays
// from re-hitting the surface they originate on (shadow acne).
const Epsilon = 0.001

// Surface is implemented by shapes that rays can intersect.
type Surface interface {
	// Intersect returns the distance along the ray to the nearest valid
	// hit, or false when the ray misses.
	Intersect(r core.Ray) (float64, bool)
	// NormalAt returns the unit surface normal at a point on the surface.
	NormalAt(p core.Vec3) core.Vec3
	// Albedo returns the surface's RGB reflectance.
	Albedo() core.Vec3
}
