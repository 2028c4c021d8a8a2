package scene

import (
	"math"

	"github.com/halverson/go-sphere-tracer/pkg/core"
	"github.com/halverson/go-sphere-tracer/pkg/geometry"
)

// DefaultMaxDepth is the trace depth limit passed by single-bounce callers.
const DefaultMaxDepth = 3

// ambientStrength is the flat albedo fraction added for every light,
// shadowed or not. Because it accumulates inside the per-light loop,
// total ambient brightness scales with the light count.
const ambientStrength = 0.2

// DefaultBackground is the background color of a freshly created scene.
var DefaultBackground = core.NewVec3(0.1, 0.1, 0.2)

// Scene owns the objects and lights to render plus a background color.
// Objects are immutable once added; lights may be edited between passes.
type Scene struct {
	objects    []geometry.Surface
	lights     []*Light
	Background core.Vec3
}

// NewScene creates an empty scene with the default background
func NewScene() *Scene {
	return &Scene{Background: DefaultBackground}
}

// AddObject appends an object to the scene. Insertion order matters:
// when two objects intersect a ray at exactly the same distance, the
// earlier one wins.
func (s *Scene) AddObject(obj geometry.Surface) {
	s.objects = append(s.objects, obj)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(l *Light) {
	s.lights = append(s.lights, l)
}

// Lights returns the scene's light instances for in-place editing
func (s *Scene) Lights() []*Light {
	return s.lights
}

// Snapshot copies the current light state. A render pass shades every
// pixel against one snapshot, so a concurrent light edit can never tear
// a frame.
func (s *Scene) Snapshot() []Light {
	lights := make([]Light, len(s.lights))
	for i, l := range s.lights {
		lights[i] = *l
	}
	return lights
}

// Trace follows a ray into the scene and returns its shaded color.
// The depth guard exists as the seam for reflective bounces; nothing
// recurses today, so only the entry check is live.
func (s *Scene) Trace(r core.Ray, depth, maxDepth int) core.Vec3 {
	return s.TraceLit(r, depth, maxDepth, s.Snapshot())
}

// TraceRay traces with the default depth limits
func (s *Scene) TraceRay(r core.Ray) core.Vec3 {
	return s.Trace(r, 0, DefaultMaxDepth)
}

// TraceLit is Trace against an explicit light snapshot.
func (s *Scene) TraceLit(r core.Ray, depth, maxDepth int, lights []Light) core.Vec3 {
	if depth >= maxDepth {
		return s.Background
	}

	// Nearest hit in insertion order; strict < keeps the first of any
	// exact distance tie.
	var hitObject geometry.Surface
	hitDist := math.Inf(1)
	for _, obj := range s.objects {
		if dist, hit := obj.Intersect(r); hit && dist < hitDist {
			hitDist = dist
			hitObject = obj
		}
	}

	if hitObject == nil {
		return s.Background
	}

	hitPoint := r.At(hitDist)
	normal := hitObject.NormalAt(hitPoint)
	albedo := hitObject.Albedo()

	color := core.Vec3{}
	for i := range lights {
		color = color.Add(s.shade(hitPoint, normal, albedo, &lights[i]))
	}

	return color.Clamp(0, 1)
}

// shade returns one light's contribution at a surface point: a diffuse
// term when the light is visible, plus the ambient term either way.
func (s *Scene) shade(hitPoint, normal, albedo core.Vec3, light *Light) core.Vec3 {
	lightDir := light.Position.Subtract(hitPoint).Normalize()
	contribution := albedo.Multiply(ambientStrength)

	if !s.occluded(hitPoint, normal, lightDir, hitPoint.DistanceTo(light.Position)) {
		diffuse := math.Max(0, normal.Dot(lightDir))
		contribution = contribution.Add(albedo.Multiply(diffuse * light.Intensity))
	}

	return contribution
}

// occluded reports whether anything blocks the path from a surface point
// to a light. The shadow ray starts a little off the surface along the
// normal so the surface cannot shadow itself.
func (s *Scene) occluded(hitPoint, normal, lightDir core.Vec3, lightDist float64) bool {
	shadowRay := core.NewRay(hitPoint.Add(normal.Multiply(geometry.Epsilon)), lightDir)
	for _, obj := range s.objects {
		if dist, hit := obj.Intersect(shadowRay); hit && dist < lightDist {
			return true
		}
	}
	return false
}
