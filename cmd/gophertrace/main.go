// Command gophertrace renders a scene description file to a PNG image.
// Replaces the teacher's runtime/main.go GLFW game loop with a single
// batch render-and-exit CLI, in the flag-parsing/summary-printing style
// of drsaluml-mu-bmd-to-webp's cmd/render/main.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/nicolasmd87/gophertrace/internal/config"
	"github.com/nicolasmd87/gophertrace/internal/logger"
	"github.com/nicolasmd87/gophertrace/internal/png"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/camera"
	"github.com/nicolasmd87/gophertrace/internal/scenefile"
)

// rebuildCamera re-derives a camera at a different resolution, keeping the
// scene file's field of view, transform, background and jitter seed.
func rebuildCamera(src *camera.Camera, hsize, vsize int) *camera.Camera {
	c := camera.New(hsize, vsize, src.FieldOfView)
	c.SetTransform(src.Transform)
	c.Background = src.Background
	c.Seed = src.Seed
	return c
}

func main() {
	scenePath := flag.String("scene", "", "Path to a scene description file (required)")
	outputPath := flag.String("output", "", "Output PNG path (default: render.png)")
	width := flag.Int("width", 0, "Canvas width override (default: scene camera hsize)")
	height := flag.Int("height", 0, "Canvas height override (default: scene camera vsize)")
	aa := flag.Int("aa", 0, "Antialiasing samples per axis per pixel (default: 1)")
	depth := flag.Int("depth", 0, "Max recursion depth (default: 5)")
	workers := flag.Int("workers", 0, "Worker count (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Antialiasing jitter seed (default: 1)")
	dev := flag.Bool("dev", false, "Enable development (human-readable) logging")
	flag.Parse()

	if err := logger.Init(*dev); err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene is required")
		os.Exit(1)
	}

	cfg := config.Resolve(config.Flags{
		Width:        *width,
		Height:       *height,
		Antialiasing: *aa,
		MaxDepth:     *depth,
		Workers:      *workers,
		Seed:         *seed,
		ScenePath:    *scenePath,
		OutputPath:   *outputPath,
	})

	file, err := os.Open(cfg.ScenePath)
	if err != nil {
		logger.Log.Error("failed to open scene file", zap.Error(err))
		os.Exit(1)
	}
	scene, err := scenefile.Load(file)
	file.Close()
	if err != nil {
		logger.Log.Error("failed to parse scene file", zap.Error(err))
		os.Exit(1)
	}

	cam := scene.Camera
	cam.Seed = cfg.Seed
	if *width > 0 || *height > 0 {
		hsize, vsize := cam.HSize, cam.VSize
		if *width > 0 {
			hsize = *width
		}
		if *height > 0 {
			vsize = *height
		}
		cam = rebuildCamera(cam, hsize, vsize)
	}

	logger.Log.Info("render starting",
		zap.Int("width", cam.HSize),
		zap.Int("height", cam.VSize),
		zap.Int("objects", len(scene.World.Objects)),
		zap.Int("lights", len(scene.World.Lights)),
		zap.Int("aa", cfg.Antialiasing),
		zap.Int("depth", cfg.MaxDepth),
		zap.Int("workers", cfg.Workers))

	start := time.Now()
	img := cam.Render(scene.World.ColorAt, cfg.Antialiasing, cfg.MaxDepth, cfg.Workers)
	elapsed := time.Since(start)

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		logger.Log.Error("failed to create output file", zap.Error(err))
		os.Exit(1)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		logger.Log.Error("failed to encode PNG", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("render finished",
		zap.Duration("elapsed", elapsed),
		zap.String("output", cfg.OutputPath))
}
