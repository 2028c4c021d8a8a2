package renderer

import (
	"image"
	"math"

	"github.com/halverson/go-sphere-tracer/pkg/core"
	"github.com/halverson/go-sphere-tracer/pkg/scene"
)

// DefaultCameraPosition is where New places the camera.
var DefaultCameraPosition = core.NewVec3(0, 0, 5)

// Renderer turns a scene into RGBA frames from a fixed camera position.
// Every frame is computed from scratch; the renderer keeps no state
// between calls beyond the scene and camera it was built with.
type Renderer struct {
	scene  *scene.Scene
	camera core.Vec3
}

// New creates a renderer with the default camera position
func New(s *scene.Scene) *Renderer {
	return NewWithCamera(s, DefaultCameraPosition)
}

// NewWithCamera creates a renderer with an explicit camera position
func NewWithCamera(s *scene.Scene, camera core.Vec3) *Renderer {
	return &Renderer{scene: s, camera: camera}
}

// Render raytraces a width x height frame and returns it as row-major
// RGBA bytes, 4 per pixel, alpha always 255. Light state is snapshotted
// at entry so edits made during the pass land in the next frame.
func (r *Renderer) Render(width, height int) []byte {
	buf := make([]byte, width*height*4)
	lights := r.scene.Snapshot()
	r.renderRows(buf, width, height, 0, height, lights)
	return buf
}

// RenderParallel produces the same bytes as Render with rows fanned out
// across a worker pool. Workers write disjoint row ranges of the shared
// buffer, so the result is byte-identical to the sequential path.
// workers <= 0 selects one worker per CPU.
func (r *Renderer) RenderParallel(width, height, workers int) []byte {
	buf := make([]byte, width*height*4)
	lights := r.scene.Snapshot()

	pool := newWorkerPool(r, workers)
	pool.start()

	// A few tasks per worker keeps the pool busy when rows vary in cost.
	rowsPerTask := height / (pool.numWorkers * 4)
	if rowsPerTask < 1 {
		rowsPerTask = 1
	}
	for y := 0; y < height; y += rowsPerTask {
		end := min(y+rowsPerTask, height)
		pool.submit(rowTask{buf: buf, width: width, height: height, rowStart: y, rowEnd: end, lights: lights})
	}

	pool.stop()
	return buf
}

// RenderImage wraps Render in an *image.RGBA for the encoders
func (r *Renderer) RenderImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Pix = r.Render(width, height)
	return img
}

// renderRows traces rows [rowStart, rowEnd) into buf.
func (r *Renderer) renderRows(buf []byte, width, height, rowStart, rowEnd int, lights []scene.Light) {
	for y := rowStart; y < rowEnd; y++ {
		for x := 0; x < width; x++ {
			// Normalized device coordinates; y flipped so row 0 is the top.
			px := (float64(x)/float64(width))*2 - 1
			py := -(float64(y)/float64(height))*2 + 1

			ray := core.NewRay(r.camera, core.NewVec3(px, py, -1))
			color := r.scene.TraceLit(ray, 0, scene.DefaultMaxDepth, lights)

			i := (y*width + x) * 4
			buf[i] = byte(math.Floor(color.X * 255))
			buf[i+1] = byte(math.Floor(color.Y * 255))
			buf[i+2] = byte(math.Floor(color.Z * 255))
			buf[i+3] = 255
		}
	}
}
