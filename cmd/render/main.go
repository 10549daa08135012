package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gmath/internal/batch"
	"gmath/internal/config"
	"gmath/internal/mathutil"
	"gmath/internal/mesh"
	"gmath/internal/raster"
	"gmath/internal/texture"
	"gmath/internal/viewmatrix"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	meshArg := flag.String("mesh", "", "OBJ file or built-in mesh: cube, tetrahedron (default: cube)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	backdrop := flag.String("backdrop", "", "Backdrop image (png, jpeg, tga, webp)")
	mode := flag.String("mode", "", "Projection: viewport or perspective (default: viewport)")
	size := flag.Int("size", 0, "Output width and height in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Turntable frames (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	animate := flag.Bool("animate", false, "Also write turntable.webp")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mesh:      *meshArg,
		OutputDir: *outputDir,
		Backdrop:  *backdrop,
		Mode:      *mode,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Animate:   *animate,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := loadMesh(cfg.Mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	if cfg.FitRadius > 0 {
		m.Recenter(cfg.FitRadius)
	}

	projMode, _ := viewmatrix.ParseMode(cfg.Mode)
	col := raster.DefaultColor
	if cfg.Color != "" {
		col, _ = config.ParseColor(cfg.Color)
	}

	// Print summary
	fmt.Printf("Mesh %q: %d verts, %d tris\n", m.Name, len(m.Verts), len(m.Tris))
	fmt.Printf("Frames: %d, Workers: %d, Mode: %s, Size: %dx%d (x%d)\n",
		cfg.Frames, cfg.Workers, projMode, cfg.Width, cfg.Height, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	textures := texture.NewCache()
	if _, err := textures.Load(cfg.Backdrop); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading backdrop: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Mesh:        m,
		Backdrop:    cfg.Backdrop,
		Textures:    textures,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Projection: viewmatrix.Projection{
			Mode: projMode,
			FOV:  mathutil.Deg2Rad(cfg.FOV),
			Near: cfg.Near,
			Far:  cfg.Far,
		},
		Position:  vec(cfg.Position),
		Camera:    vec(cfg.Camera),
		CameraRot: degVec(cfg.CameraRot),
		Color:     col,
	}

	frameList := batch.Turntable(degVec(cfg.Angles), cfg.Frames, mathutil.Deg2Rad(cfg.Step))
	results := batch.Run(batchCfg, frameList)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifest := batch.Manifest{Mesh: m.Name, Width: cfg.Width, Height: cfg.Height}

	if cfg.Animate && success > 0 {
		animPath := filepath.Join(cfg.OutputDir, "turntable.webp")
		if err := batch.WriteAnimation(animPath, results, cfg.FrameDelay); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			manifest.Animation = "turntable.webp"
			fmt.Printf("Animation: %s\n", animPath)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, manifest, frameList, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func loadMesh(name string) (*mesh.Mesh, error) {
	if m := mesh.Builtin(name); m != nil {
		return m, nil
	}
	return mesh.LoadOBJ(name)
}

func vec(a [3]float32) mathutil.Vec3 {
	return mathutil.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func degVec(a [3]float32) mathutil.Vec3 {
	return mathutil.Vec3{X: mathutil.Deg2Rad(a[0]), Y: mathutil.Deg2Rad(a[1]), Z: mathutil.Deg2Rad(a[2])}
}
