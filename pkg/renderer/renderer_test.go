package renderer

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/ngynkvn/raytracer/pkg/core"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

// Ensure testLogger implements core.Logger
var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {
	// Discard log output during tests
}

// smallConfig returns render parameters scaled down for fast tests
func smallConfig() Config {
	config := DefaultConfig()
	config.CanvasWidth = 64
	config.CanvasHeight = 64
	config.TileSize = 16
	config.NumWorkers = 3
	return config
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.CanvasWidth != 2000 || config.CanvasHeight != 2000 {
		t.Errorf("Expected a 2000x2000 canvas, got %dx%d", config.CanvasWidth, config.CanvasHeight)
	}
	if config.ViewportWidth != 1 || config.ViewportHeight != 1 || config.ProjectionDistance != 1 {
		t.Errorf("Expected a 1x1 viewport one unit out, got %gx%g at %g",
			config.ViewportWidth, config.ViewportHeight, config.ProjectionDistance)
	}
	if config.TMin != 0 || config.TMax != 2000 {
		t.Errorf("Expected ray range (0, 2000), got (%g, %g)", config.TMin, config.TMax)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(c *Config) {}},
		{name: "zero canvas width", mutate: func(c *Config) { c.CanvasWidth = 0 }, wantErr: true},
		{name: "negative canvas height", mutate: func(c *Config) { c.CanvasHeight = -1 }, wantErr: true},
		{name: "zero viewport width", mutate: func(c *Config) { c.ViewportWidth = 0 }, wantErr: true},
		{name: "negative viewport height", mutate: func(c *Config) { c.ViewportHeight = -2 }, wantErr: true},
		{name: "zero projection distance", mutate: func(c *Config) { c.ProjectionDistance = 0 }, wantErr: true},
		{name: "empty ray range", mutate: func(c *Config) { c.TMax = c.TMin }, wantErr: true},
		{name: "inverted ray range", mutate: func(c *Config) { c.TMin = 10; c.TMax = 5 }, wantErr: true},
		{name: "zero tile size", mutate: func(c *Config) { c.TileSize = 0 }, wantErr: true},
		{name: "workers may be zero for auto-detect", mutate: func(c *Config) { c.NumWorkers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected a validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
		})
	}
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{name: "exact division", width: 128, height: 128, tileSize: 64, expectedTiles: 4},
		{name: "clipped right and bottom", width: 100, height: 50, tileSize: 64, expectedTiles: 2},
		{name: "tile larger than canvas", width: 10, height: 10, tileSize: 64, expectedTiles: 1},
		{name: "single row", width: 200, height: 30, tileSize: 64, expectedTiles: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)

			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			canvas := image.Rect(0, 0, tt.width, tt.height)
			area := 0
			for i, tile := range tiles {
				if !tile.In(canvas) {
					t.Errorf("Tile %d %v leaves the canvas %v", i, tile, canvas)
				}
				if tile.Dx() > tt.tileSize || tile.Dy() > tt.tileSize {
					t.Errorf("Tile %d %v exceeds the tile size %d", i, tile, tt.tileSize)
				}
				area += tile.Dx() * tile.Dy()
			}

			// Tiles are disjoint, so full coverage means the areas sum exactly
			if area != tt.width*tt.height {
				t.Errorf("Tiles cover %d pixels, canvas has %d", area, tt.width*tt.height)
			}
		})
	}
}

func TestNewTileGrid_RowMajorOrder(t *testing.T) {
	tiles := NewTileGrid(128, 128, 64)

	expected := []image.Rectangle{
		image.Rect(0, 0, 64, 64),
		image.Rect(64, 0, 128, 64),
		image.Rect(0, 64, 64, 128),
		image.Rect(64, 64, 128, 128),
	}
	for i, want := range expected {
		if tiles[i] != want {
			t.Errorf("Tile %d: expected %v, got %v", i, want, tiles[i])
		}
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(scene.NewDefaultScene(), smallConfig(), &testLogger{})

	canvas, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}

	if canvas.Width() != 64 || canvas.Height() != 64 {
		t.Fatalf("Expected a 64x64 canvas, got %dx%d", canvas.Width(), canvas.Height())
	}
	if stats.TotalPixels != 64*64 {
		t.Errorf("Expected 4096 pixels traced, got %d", stats.TotalPixels)
	}
	if stats.TilesRendered != 16 {
		t.Errorf("Expected 16 tiles, got %d", stats.TilesRendered)
	}
	if stats.NumWorkers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.NumWorkers)
	}
	if stats.Elapsed <= 0 {
		t.Errorf("Expected positive elapsed time, got %v", stats.Elapsed)
	}

	// The center ray grazes the red sphere; the top-left corner misses
	center := canvas.PixelAt(32, 31)
	if center.R <= 0 || center.G != 0 || center.B != 0 {
		t.Errorf("Expected a shaded red center pixel, got %v", center)
	}
	if corner := canvas.PixelAt(0, 0); corner != core.White {
		t.Errorf("Expected the white background in the corner, got %v", corner)
	}
}

func TestRenderer_Render_Idempotent(t *testing.T) {
	// Two renders of the same scene and config must agree on every pixel
	first, _, err := NewRenderer(scene.NewDefaultScene(), smallConfig(), &testLogger{}).Render(context.Background())
	if err != nil {
		t.Fatalf("First render failed: %v", err)
	}
	second, _, err := NewRenderer(scene.NewDefaultScene(), smallConfig(), &testLogger{}).Render(context.Background())
	if err != nil {
		t.Fatalf("Second render failed: %v", err)
	}

	for y := 0; y < first.Height(); y++ {
		for x := 0; x < first.Width(); x++ {
			if first.PixelAt(x, y) != second.PixelAt(x, y) {
				t.Fatalf("Pixel (%d,%d) differs between renders: %v vs %v",
					x, y, first.PixelAt(x, y), second.PixelAt(x, y))
			}
		}
	}
}

func TestRenderer_RenderWithProgress_TileCallbacks(t *testing.T) {
	config := smallConfig()
	r := NewRenderer(scene.NewRGBScene(), config, &testLogger{})

	var updates []TileUpdate
	_, stats, err := r.RenderWithProgress(context.Background(), func(update TileUpdate) {
		updates = append(updates, update)
	})
	if err != nil {
		t.Fatalf("RenderWithProgress returned unexpected error: %v", err)
	}

	if len(updates) != stats.TilesRendered {
		t.Fatalf("Expected %d callbacks, got %d", stats.TilesRendered, len(updates))
	}

	// Callbacks arrive in completion order with 1-based numbering, and
	// together the tiles cover every canvas pixel exactly once
	covered := make(map[image.Point]bool)
	for i, update := range updates {
		if update.TileNumber != i+1 {
			t.Errorf("Callback %d: expected tile number %d, got %d", i, i+1, update.TileNumber)
		}
		if update.TotalTiles != len(updates) {
			t.Errorf("Callback %d: expected %d total tiles, got %d", i, len(updates), update.TotalTiles)
		}
		if update.Image.Bounds().Dx() != update.Bounds.Dx() || update.Image.Bounds().Dy() != update.Bounds.Dy() {
			t.Errorf("Callback %d: image size %v does not match bounds %v",
				i, update.Image.Bounds(), update.Bounds)
		}

		for y := update.Bounds.Min.Y; y < update.Bounds.Max.Y; y++ {
			for x := update.Bounds.Min.X; x < update.Bounds.Max.X; x++ {
				p := image.Pt(x, y)
				if covered[p] {
					t.Fatalf("Pixel %v covered by more than one tile", p)
				}
				covered[p] = true
			}
		}
	}

	if len(covered) != config.CanvasWidth*config.CanvasHeight {
		t.Errorf("Tiles covered %d pixels, canvas has %d",
			len(covered), config.CanvasWidth*config.CanvasHeight)
	}
}

func TestRenderer_Render_InvalidConfig(t *testing.T) {
	config := smallConfig()
	config.CanvasWidth = 0
	r := NewRenderer(scene.NewDefaultScene(), config, &testLogger{})

	_, _, err := r.Render(context.Background())
	if err == nil {
		t.Fatal("Expected an error for an invalid config")
	}
}

func TestRenderer_Render_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRenderer(scene.NewDefaultScene(), smallConfig(), &testLogger{})
	_, _, err := r.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRenderer_Render_ReferenceScene(t *testing.T) {
	// The full-size reference render: 2000x2000 canvas, 1x1 viewport one
	// unit from the camera. The exact center pixel grazes the red sphere
	// with a known closed-form intensity.
	r := NewRenderer(scene.NewDefaultScene(), DefaultConfig(), &testLogger{})

	canvas, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}
	if stats.TotalPixels != 2000*2000 {
		t.Errorf("Expected 4M pixels, got %d", stats.TotalPixels)
	}

	img := canvas.ToRGBA()

	// intensity = 0.2 + 0.6/sqrt(14) + 0.8/sqrt(33) ~= 0.49962
	// red channel = floor(255 * intensity) = 127
	center := img.RGBAAt(1000, 999)
	if center.R != 127 || center.G != 0 || center.B != 0 || center.A != 255 {
		t.Errorf("Expected the center pixel (127,0,0,255), got %v", center)
	}

	// The top-left corner ray misses every sphere
	if corner := img.RGBAAt(0, 0); corner.R != 255 || corner.G != 255 || corner.B != 255 {
		t.Errorf("Expected the white background in the corner, got %v", corner)
	}
}
