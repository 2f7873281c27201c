package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ngynkvn/raytracer/pkg/core"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains the canvas and viewport geometry for a render
type Config struct {
	CanvasWidth        int     // output width in pixels
	CanvasHeight       int     // output height in pixels
	ViewportWidth      float64 // viewport width in world units
	ViewportHeight     float64 // viewport height in world units
	ProjectionDistance float64 // camera-to-viewport distance along +z
	TMin               float64 // lower bound of the valid ray parameter range
	TMax               float64 // upper bound of the valid ray parameter range
	TileSize           int     // square tile edge for parallel rendering
	NumWorkers         int     // render goroutines (0 = one per CPU)
}

// DefaultConfig returns the reference render parameters: a 2000×2000 canvas
// seen through a 1×1 viewport one unit in front of the camera, accepting
// hits out to a parametric distance of 2000.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:        2000,
		CanvasHeight:       2000,
		ViewportWidth:      1,
		ViewportHeight:     1,
		ProjectionDistance: 1,
		TMin:               0,
		TMax:               2000,
		TileSize:           64,
		NumWorkers:         0, // Auto-detect CPU count
	}
}

// Validate reports configurations that cannot produce a render
func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %gx%g", c.ViewportWidth, c.ViewportHeight)
	}
	if c.ProjectionDistance == 0 {
		return fmt.Errorf("projection distance must be non-zero")
	}
	if c.TMax <= c.TMin {
		return fmt.Errorf("ray parameter range [%g, %g] is empty", c.TMin, c.TMax)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	return nil
}

// TileUpdate describes one finished tile during a render
type TileUpdate struct {
	TileX      int             // tile grid coordinates, not pixels
	TileY      int
	Bounds     image.Rectangle // canvas pixels the tile covers
	Image      *image.RGBA     // pixels for just this tile
	TileNumber int             // completion counter, 1-based
	TotalTiles int
}

// Renderer drives a full-canvas render: it splits the canvas into tiles,
// fans them out to a worker pool and collects the results. Each pixel gets
// exactly one primary ray.
type Renderer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the scene. A nil logger falls back to
// stdout.
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render traces every canvas pixel and returns the finished canvas
func (r *Renderer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	return r.RenderWithProgress(ctx, nil)
}

// RenderWithProgress renders the canvas, invoking onTile after each tile
// completes. Callbacks run on the collecting goroutine in completion order,
// and the tile's canvas region is fully written before its callback fires.
// Cancelling ctx aborts the render with the context's error.
func (r *Renderer) RenderWithProgress(ctx context.Context, onTile func(TileUpdate)) (*Canvas, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	canvas := NewCanvas(r.config.CanvasWidth, r.config.CanvasHeight)
	camera := NewCamera(r.scene.Camera, r.config)
	tracer := NewRaytracer(r.scene)
	tiles := NewTileGrid(r.config.CanvasWidth, r.config.CanvasHeight, r.config.TileSize)

	pool := NewWorkerPool(tracer, camera, canvas, r.config, len(tiles))
	pool.Start(ctx)
	defer pool.Stop()

	r.logger.Printf("Rendering %dx%d canvas: %d tiles on %d workers...\n",
		r.config.CanvasWidth, r.config.CanvasHeight, len(tiles), pool.NumWorkers())

	startTime := time.Now()
	for id, bounds := range tiles {
		pool.Submit(TileTask{ID: id, Bounds: bounds})
	}

	stats := RenderStats{
		TotalPixels: r.config.CanvasWidth * r.config.CanvasHeight,
		NumWorkers:  pool.NumWorkers(),
	}

	// Collect all tiles and dispatch callbacks single-threaded
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.Result()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Err != nil {
			return nil, RenderStats{}, fmt.Errorf("tile %d: %w", result.ID, result.Err)
		}

		stats.TilesRendered++

		if onTile != nil {
			bounds := tiles[result.ID]
			onTile(TileUpdate{
				TileX:      bounds.Min.X / r.config.TileSize,
				TileY:      bounds.Min.Y / r.config.TileSize,
				Bounds:     bounds,
				Image:      canvas.RegionRGBA(bounds),
				TileNumber: i + 1,
				TotalTiles: len(tiles),
			})
		}
	}
	stats.Elapsed = time.Since(startTime)

	r.logger.Printf("Render completed in %v (%.0f pixels/sec)\n",
		stats.Elapsed.Round(time.Millisecond), stats.PixelsPerSecond())

	return canvas, stats, nil
}

// NewTileGrid splits a width×height canvas into tileSize×tileSize bounds,
// clipped at the right and bottom edges. Tiles are ordered row-major.
func NewTileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, image.Rect(x0, y0, x1, y1))
		}
	}
	return tiles
}
