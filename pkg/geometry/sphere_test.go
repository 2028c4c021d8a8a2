package geometry

import (
	"math"
	"testing"

	"github.com/halverson/go-sphere-tracer/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if dist, hit := sphere.Intersect(ray); hit {
		t.Errorf("Expected miss, but got hit at t=%f", dist)
	}
}

func TestSphere_Intersect_HeadOn(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		origin    core.Vec3
		expectedT float64
	}{
		{
			name:      "unit sphere from z axis",
			center:    core.NewVec3(0, 0, 0),
			radius:    1.0,
			origin:    core.NewVec3(0, 0, 5),
			expectedT: 4.0,
		},
		{
			name:      "radius 2 from further out",
			center:    core.NewVec3(0, 0, 0),
			radius:    2.0,
			origin:    core.NewVec3(0, 0, 10),
			expectedT: 8.0,
		},
		{
			name:      "offset center",
			center:    core.NewVec3(3, 0, -4),
			radius:    1.5,
			origin:    core.NewVec3(3, 0, 6),
			expectedT: 8.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, core.NewVec3(1, 1, 1))
			direction := tt.center.Subtract(tt.origin)
			ray := core.NewRay(tt.origin, direction)

			dist, hit := sphere.Intersect(ray)
			if !hit {
				t.Fatal("Expected hit, but got miss")
			}

			// A ray aimed at the center hits at originDistance - radius
			if math.Abs(dist-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}

			// The normal at a head-on hit opposes the ray direction
			normal := sphere.NormalAt(ray.At(dist))
			expectedNormal := ray.Direction.Negate()
			if normal.Subtract(expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", expectedNormal, normal)
			}
		})
	}
}

func TestSphere_Intersect_InsideFallsBackToFarRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, core.NewVec3(1, 1, 1))
	// Origin inside the sphere: the near root is negative, the far root
	// is the exit point at t=2.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, hit := sphere.Intersect(ray)
	if !hit {
		t.Fatal("Expected exit hit from inside the sphere, but got miss")
	}
	if math.Abs(dist-2.0) > 1e-9 {
		t.Errorf("Expected far root t=2, got t=%f", dist)
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.NewVec3(1, 1, 1))
	// Sphere sits behind the ray: both roots negative.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if dist, hit := sphere.Intersect(ray); hit {
		t.Errorf("Expected miss for sphere behind ray, got t=%f", dist)
	}
}

func TestSphere_Intersect_WithinEpsilon(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	// Origin on the surface, pointing away: the only non-negative root is
	// t=0, which falls inside the epsilon band and must be rejected.
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))

	if dist, hit := sphere.Intersect(ray); hit {
		t.Errorf("Expected miss within epsilon, got t=%f", dist)
	}
}

func TestSphere_Intersect_ZeroDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0))

	if dist, hit := sphere.Intersect(ray); hit {
		t.Errorf("Expected miss for degenerate ray, got t=%f", dist)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, core.NewVec3(1, 1, 1))

	normal := sphere.NormalAt(core.NewVec3(3, 2, 3))
	if normal.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal (1,0,0), got %v", normal)
	}

	if math.Abs(normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", normal.Length())
	}
}
