package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/halverson/go-sphere-tracer/internal/config"
	"github.com/halverson/go-sphere-tracer/pkg/renderer"
	"github.com/halverson/go-sphere-tracer/pkg/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 600)")
	format := flag.String("format", "", "Output format: png or webp (default: png)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU; 1 disables parallelism)")
	outputDir := flag.String("out", "", "Output directory (default: output)")
	lightX := flag.Float64("light-x", 2, "Light X position")
	lightY := flag.Float64("light-y", 5, "Light Y position")
	lightZ := flag.Float64("light-z", 2, "Light Z position")
	intensity := flag.Float64("intensity", 1.5, "Light intensity")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Format:    *format,
		Workers:   *workers,
		OutputDir: *outputDir,
	})

	s := scene.NewDefaultScene()
	light := s.Lights()[0]
	light.Position.X = *lightX
	light.Position.Y = *lightY
	light.Position.Z = *lightZ
	light.Intensity = *intensity

	r := renderer.New(s)

	fmt.Printf("Rendering %dx%d...\n", cfg.Width, cfg.Height)
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	if cfg.Workers == 1 {
		img.Pix = r.Render(cfg.Width, cfg.Height)
	} else {
		img.Pix = r.RenderParallel(cfg.Width, cfg.Height, cfg.Workers)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(cfg.OutputDir, fmt.Sprintf("render_%s.%s", timestamp, cfg.Format))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := renderer.Encode(file, img, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
