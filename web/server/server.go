package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ngynkvn/raytracer/pkg/renderer"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

// Default canvas size for web renders. Smaller than the CLI default so the
// first preview comes back quickly.
const (
	DefaultWebWidth  = 800
	DefaultWebHeight = 800
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene              string  `json:"scene"`              // Built-in scene ID
	Width              int     `json:"width"`              // Canvas width in pixels
	Height             int     `json:"height"`             // Canvas height in pixels
	ViewportWidth      float64 `json:"viewportWidth"`      // Viewport width in world units
	ViewportHeight     float64 `json:"viewportHeight"`     // Viewport height in world units
	ProjectionDistance float64 `json:"projectionDistance"` // Camera-to-viewport distance
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/inspect", s.handleInspect)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scene-config", s.handleSceneConfig)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleSceneConfig returns the available scenes plus render parameter
// defaults and validation limits, so the client can build its form without
// hardcoding them.
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	defaults := renderer.DefaultConfig()
	response := map[string]interface{}{
		"scenes": scene.List(),
		"defaults": map[string]interface{}{
			"scene":              "default",
			"width":              DefaultWebWidth,
			"height":             DefaultWebHeight,
			"viewportWidth":      defaults.ViewportWidth,
			"viewportHeight":     defaults.ViewportHeight,
			"projectionDistance": defaults.ProjectionDistance,
		},
		"limits": map[string]interface{}{
			"width": map[string]int{
				"min": 16,
				"max": 4000,
			},
			"height": map[string]int{
				"min": 16,
				"max": 4000,
			},
			"viewportWidth": map[string]float64{
				"min": 0.1,
				"max": 10,
			},
			"viewportHeight": map[string]float64{
				"min": 0.1,
				"max": 10,
			},
			"projectionDistance": map[string]float64{
				"min": 0.1,
				"max": 100,
			},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseRenderRequest parses and validates render parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	// Scene name is validated when the scene is built
	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", DefaultWebWidth, 16, 4000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", DefaultWebHeight, 16, 4000); err != nil {
		return nil, err
	}
	if req.ViewportWidth, err = parseFloatParam(r.URL.Query(), "viewportWidth", 1, 0.1, 10); err != nil {
		return nil, err
	}
	if req.ViewportHeight, err = parseFloatParam(r.URL.Query(), "viewportHeight", 1, 0.1, 10); err != nil {
		return nil, err
	}
	if req.ProjectionDistance, err = parseFloatParam(r.URL.Query(), "projectionDistance", 1, 0.1, 100); err != nil {
		return nil, err
	}

	return req, nil
}

// config translates the request into render parameters, keeping the
// defaults for everything the web API does not expose.
func (req *RenderRequest) config() renderer.Config {
	config := renderer.DefaultConfig()
	config.CanvasWidth = req.Width
	config.CanvasHeight = req.Height
	config.ViewportWidth = req.ViewportWidth
	config.ViewportHeight = req.ViewportHeight
	config.ProjectionDistance = req.ProjectionDistance
	return config
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
