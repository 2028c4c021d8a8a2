package scene

import (
	"github.com/halverson/go-sphere-tracer/pkg/core"
	"github.com/halverson/go-sphere-tracer/pkg/geometry"
)

// NewDefaultScene creates the demo scene used by the CLI, the viewer and
// the web server: a large red sphere over a ground plane with a smaller
// blue companion, lit by a single point light up and to the right.
func NewDefaultScene() *Scene {
	s := NewScene()

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 0), 2.0, core.NewVec3(0.8, 0.2, 0.2)))
	s.AddObject(geometry.NewSphere(core.NewVec3(3.2, -1, -1), 1.0, core.NewVec3(0.2, 0.3, 0.8)))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.8, 0.8, 0.8)))

	s.AddLight(NewLight(core.NewVec3(2, 5, 2), 1.5))

	return s
}
