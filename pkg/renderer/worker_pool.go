package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
)

// TileTask is one tile of the canvas waiting to be traced
type TileTask struct {
	ID     int
	Bounds image.Rectangle
}

// TileResult reports a finished tile back to the renderer
type TileResult struct {
	ID     int
	Pixels int // pixels written by this tile
	Err    error
}

// WorkerPool renders tiles in parallel. Tile bounds never overlap and the
// scene is read-only, so workers write into the shared canvas without locks.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker traces every pixel of the tiles it pulls off the queue
type Worker struct {
	ID          int
	tracer      *Raytracer
	camera      *Camera
	canvas      *Canvas
	tMin        float64
	tMax        float64
	taskQueue   <-chan TileTask
	resultQueue chan<- TileResult
}

// NewWorkerPool creates a pool sized by config.NumWorkers (0 means one
// worker per CPU). Queues are buffered for queueSize tiles so submission
// and collection never block each other.
func NewWorkerPool(tracer *Raytracer, camera *Camera, canvas *Canvas, config Config, queueSize int) *WorkerPool {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      tracer,
			camera:      camera,
			canvas:      canvas,
			tMin:        config.TMin,
			tMax:        config.TMax,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop closes the task queue and waits for the workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a tile for rendering
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Result retrieves the next completed tile
func (wp *WorkerPool) Result() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		select {
		case <-ctx.Done():
			w.resultQueue <- TileResult{ID: task.ID, Err: ctx.Err()}
			continue
		default:
		}

		pixels, err := w.renderBounds(task.Bounds)
		w.resultQueue <- TileResult{ID: task.ID, Pixels: pixels, Err: err}
	}
}

// renderBounds traces one primary ray per pixel inside bounds, writing the
// shaded colors straight into the shared canvas
func (w *Worker) renderBounds(bounds image.Rectangle) (int, error) {
	pixels := 0
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			color, err := w.tracer.TraceRay(w.camera.PixelRay(px, py), w.tMin, w.tMax)
			if err != nil {
				return pixels, fmt.Errorf("pixel (%d,%d): %w", px, py, err)
			}
			w.canvas.SetPixel(px, py, color)
			pixels++
		}
	}
	return pixels, nil
}
