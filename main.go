package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/ngynkvn/raytracer/pkg/renderer"
	"github.com/ngynkvn/raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to render: 'default' or 'rgb'")
	width := flag.Int("width", 2000, "Canvas width in pixels")
	height := flag.Int("height", 2000, "Canvas height in pixels")
	workers := flag.Int("workers", 0, "Render goroutines (0 = one per CPU)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.List() {
			fmt.Printf("  %-7s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Initialized %s scene: camera at %v, %d spheres, %d lights\n",
		*sceneType, selectedScene.Camera, len(selectedScene.Spheres), len(selectedScene.Lights))

	config := renderer.DefaultConfig()
	config.CanvasWidth = *width
	config.CanvasHeight = *height
	config.NumWorkers = *workers

	// Render the whole canvas; the renderer reports timing through its logger
	r := renderer.NewRenderer(selectedScene, config, nil)
	canvas, _, err := r.Render(context.Background())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	filename := outputPath(*sceneType, *output)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToRGBA()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.ByName(sceneType)
}

// outputPath returns the file the render is written to: the override when
// given, otherwise a timestamped PNG under output/<scene>/.
func outputPath(sceneType, override string) string {
	if override != "" {
		return override
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
}
