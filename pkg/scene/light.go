package scene

import "github.com/halverson/go-sphere-tracer/pkg/core"

// Light is a point light with a scalar intensity. Callers hold on to the
// pointer and may edit Position and Intensity between render passes;
// edits made during a pass are picked up on the next one.
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) *Light {
	return &Light{Position: position, Intensity: intensity}
}
