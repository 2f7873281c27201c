package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/ngynkvn/raytracer/pkg/renderer"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

// TileUpdate represents one finished tile sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"` // tile grid coordinates
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // canvas pixel origin of the tile
	Y          int    `json:"y"`
	Width      int    `json:"width"` // tile size in pixels
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // completion counter, 1-based
	TotalTiles int    `json:"totalTiles"`
}

// CompleteUpdate is the final SSE event carrying the whole render
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG of the full canvas
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels   int `json:"totalPixels"`
	TilesRendered int `json:"tilesRendered"`
	NumWorkers    int `json:"numWorkers"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string // "console", "tile", "error", "complete"
	Data string // JSON-encoded payload
}

// handleRender renders a scene, streaming tiles over SSE as they finish.
// With ?format=png the render runs synchronously and the response is the
// finished PNG instead of an event stream. Client disconnects cancel the
// render through the request context.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "png" {
		s.handleRenderPNG(w, r)
		return
	}

	s.setSSEHeaders(w)
	ctx := r.Context()

	// All SSE writes go through one channel drained by a single goroutine,
	// so the console stream and the tile stream never interleave mid-event.
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go s.writeSSEEvents(w, ctx, sseEventChan, writerDone)

	// The final event must reach the client before the handler returns
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	// Render log lines stream to the browser console
	consoleChan := make(chan ConsoleMessage, 50)
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	// Stop the console forwarder before the event channel closes under it
	defer func() {
		close(consoleChan)
		<-consoleDone
	}()

	webLogger := NewWebLogger(consoleChan)
	rend := renderer.NewRenderer(sceneObj, req.config(), webLogger)

	startTime := time.Now()
	canvas, stats, err := rend.RenderWithProgress(ctx, func(update renderer.TileUpdate) {
		s.sendTileUpdate(ctx, sseEventChan, update)
	})
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Render failed: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(canvas.ToRGBA())
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	complete := CompleteUpdate{
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:   stats.TotalPixels,
			TilesRendered: stats.TilesRendered,
			NumWorkers:    stats.NumWorkers,
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	}
	data, err := json.Marshal(complete)
	if err != nil {
		log.Printf("Error marshaling completion event: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, "complete", string(data))
}

// handleRenderPNG renders synchronously and responds with the image itself
func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rend := renderer.NewRenderer(sceneObj, req.config(), nil)
	canvas, _, err := rend.Render(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Render failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, canvas.ToRGBA()); err != nil {
		log.Printf("Error writing PNG response: %v", err)
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents drains the event channel onto the wire from a single
// goroutine. Closes done when the channel closes or the client goes away.
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards render log lines to the SSE channel
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking the render
			}

		case <-ctx.Done():
			return
		}
	}
}

// sendTileUpdate encodes one finished tile and queues it for the client.
// Encoding failures are logged and the tile skipped; the full image still
// arrives with the completion event.
func (s *Server) sendTileUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, update renderer.TileUpdate) {
	tileData, err := imageToBase64PNG(update.Image)
	if err != nil {
		log.Printf("Error encoding tile (%d, %d): %v", update.TileX, update.TileY, err)
		return
	}

	tileUpdate := TileUpdate{
		TileX:      update.TileX,
		TileY:      update.TileY,
		X:          update.Bounds.Min.X,
		Y:          update.Bounds.Min.Y,
		Width:      update.Bounds.Dx(),
		Height:     update.Bounds.Dy(),
		ImageData:  tileData,
		TileNumber: update.TileNumber,
		TotalTiles: update.TotalTiles,
	}

	data, err := json.Marshal(tileUpdate)
	if err != nil {
		log.Printf("Error marshaling tile update: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, "tile", string(data))
}

// sendEvent queues an SSE event unless the client has disconnected
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}
