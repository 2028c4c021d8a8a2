package renderer

import (
	"runtime"
	"sync"

	"github.com/halverson/go-sphere-tracer/pkg/scene"
)

// rowTask describes a horizontal band of the frame for one worker to
// trace. Bands never overlap, so workers share the output buffer
// without synchronization.
type rowTask struct {
	buf           []byte
	width, height int
	rowStart      int
	rowEnd        int
	lights        []scene.Light
}

// workerPool renders row bands in parallel
type workerPool struct {
	taskQueue  chan rowTask
	numWorkers int
	renderer   *Renderer
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool with the given worker count,
// defaulting to one worker per CPU.
func newWorkerPool(r *Renderer, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		taskQueue:  make(chan rowTask, numWorkers*4),
		numWorkers: numWorkers,
		renderer:   r,
	}
}

// start begins all workers
func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// submit queues a row band for rendering
func (wp *workerPool) submit(task rowTask) {
	wp.taskQueue <- task
}

// stop signals that no more tasks are coming and blocks until all
// queued bands are rendered.
func (wp *workerPool) stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// run is the main worker loop
func (wp *workerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		wp.renderer.renderRows(task.buf, task.width, task.height, task.rowStart, task.rowEnd, task.lights)
	}
}
