package renderer

import "time"

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels   int           // pixels traced, one primary ray each
	TilesRendered int           // tiles completed
	NumWorkers    int           // goroutines that traced them
	Elapsed       time.Duration // wall-clock render time
}

// PixelsPerSecond returns the render throughput, or 0 before any time has
// been recorded
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}
