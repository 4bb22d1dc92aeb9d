package renderer

import (
	"fmt"
	"image"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// FrameTask represents one complete frame for the worker pool to render
type FrameTask struct {
	FrameIndex int   // For deterministic ordering
	Seed       int64 // Seed of the frame's private sample stream
}

// FrameResult contains the result from rendering a frame
type FrameResult struct {
	FrameIndex int
	Image      *image.RGBA // Linear 8-bit frame, nil on error
	Stats      RenderStats
	Error      error
}

// FrameRenderer renders a frame from a sample stream
type FrameRenderer interface {
	RenderFrame(sampler core.Sampler) (*image.RGBA, RenderStats)
}

// WorkerPool manages parallel frame rendering
type WorkerPool struct {
	taskQueue   chan FrameTask
	resultQueue chan FrameResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual frame rendering tasks
type Worker struct {
	ID          int
	renderer    FrameRenderer
	taskQueue   chan FrameTask
	resultQueue chan FrameResult
}

// NewWorkerPool creates a worker pool of numWorkers path tracers over a preprocessed scene.
// maxTasks sizes the queues so submitting never blocks.
func NewWorkerPool(sc *scene.Scene, numWorkers, maxTasks int) *WorkerPool {
	return newWorkerPool(func() FrameRenderer { return NewPathTracingRaytracer(sc) }, numWorkers, maxTasks)
}

func newWorkerPool(newRenderer func() FrameRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxTasks = max(maxTasks, 1)

	wp := &WorkerPool{
		taskQueue:   make(chan FrameTask, maxTasks),
		resultQueue: make(chan FrameResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    newRenderer(),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a frame task to the worker pool
func (wp *WorkerPool) SubmitTask(task FrameTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed frame result
func (wp *WorkerPool) GetResult() (FrameResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.render(task)
	}
}

// render renders one frame, turning a panic inside the renderer into an error result
func (w *Worker) render(task FrameTask) (result FrameResult) {
	result.FrameIndex = task.FrameIndex

	defer func() {
		if r := recover(); r != nil {
			result.Image = nil
			result.Error = fmt.Errorf("worker %d panicked rendering frame %d: %v\n%s",
				w.ID, task.FrameIndex, r, debug.Stack())
		}
	}()

	result.Image, result.Stats = w.renderer.RenderFrame(core.NewSeededSampler(task.Seed))
	return result
}
