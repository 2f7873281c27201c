package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ngynkvn/raytracer/pkg/core"
	"github.com/ngynkvn/raytracer/pkg/lights"
	"github.com/ngynkvn/raytracer/pkg/renderer"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

// SphereInfo describes the sphere an inspection ray hit
type SphereInfo struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"` // base color as #rrggbb
}

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool        `json:"hit"`
	Pixel     [2]int      `json:"pixel"`
	Direction [3]float64  `json:"direction"` // viewport direction of the pixel ray
	Sphere    *SphereInfo `json:"sphere,omitempty"`
	Point     [3]float64  `json:"point,omitempty"`
	Normal    [3]float64  `json:"normal,omitempty"`
	Distance  float64     `json:"distance,omitempty"` // parametric t along the ray
	Lighting  float64     `json:"lighting,omitempty"` // accumulated light intensity
	Color     string      `json:"color"`              // shaded pixel color as #rrggbb
}

// handleInspect casts the primary ray for one pixel and reports what it hit:
// the sphere, the surface point and normal, the lighting intensity and the
// final shaded color. Misses report the background color.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Pixel coordinates are required; -1 marks an absent parameter
	px, err := parseIntParam(r.URL.Query(), "x", -1, 0, req.Width-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	py, err := parseIntParam(r.URL.Query(), "y", -1, 0, req.Height-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if px < 0 || py < 0 {
		writeJSONError(w, http.StatusBadRequest, "missing pixel coordinates: x and y are required")
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, req.config(), px, py)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Inspection failed: %v", err))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// inspectPixel traces the primary ray for the pixel at (px, py) and collects
// the intermediate shading values a normal render never exposes
func inspectPixel(sceneObj *scene.Scene, config renderer.Config, px, py int) (InspectResponse, error) {
	camera := renderer.NewCamera(sceneObj.Camera, config)
	tracer := renderer.NewRaytracer(sceneObj)

	ray := camera.PixelRay(px, py)
	response := InspectResponse{
		Pixel:     [2]int{px, py},
		Direction: vecToArray(ray.Direction),
	}

	hit, ok, err := tracer.ClosestHit(ray, config.TMin, config.TMax)
	if err != nil {
		return InspectResponse{}, err
	}
	if !ok {
		response.Color = colorToHex(sceneObj.Background)
		return response, nil
	}

	p := ray.At(hit.T)
	n, err := p.Subtract(hit.Sphere.Center).Normalize()
	if err != nil {
		return InspectResponse{}, err
	}
	intensity := lights.ComputeLighting(p, n, sceneObj.Lights)

	response.Hit = true
	response.Sphere = &SphereInfo{
		Center: vecToArray(hit.Sphere.Center),
		Radius: hit.Sphere.Radius,
		Color:  colorToHex(hit.Sphere.Color),
	}
	response.Point = vecToArray(p)
	response.Normal = vecToArray(n)
	response.Distance = hit.T
	response.Lighting = intensity
	response.Color = colorToHex(hit.Sphere.Color.Scale(intensity))
	return response, nil
}

// writeJSONError sends an error response in the JSON envelope the client
// expects from API endpoints
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// vecToArray converts a vector to the flat array used in JSON responses
func vecToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// colorToHex formats a color as #rrggbb, clamping like the canvas does
func colorToHex(c core.Color) string {
	px := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", px.R, px.G, px.B)
}
