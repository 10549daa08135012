package batch

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/chewxy/math32"

	"gmath/internal/mathutil"
	"gmath/internal/mesh"
	"gmath/internal/postprocess"
	"gmath/internal/raster"
	"gmath/internal/texture"
	"gmath/internal/viewmatrix"
)

// Config holds all shared resources for a batch run. Angles are radians.
type Config struct {
	OutputDir   string
	Mesh        *mesh.Mesh
	Backdrop    string
	Textures    texture.Loader
	Width       int
	Height      int
	Supersample int
	Workers     int
	Projection  viewmatrix.Projection
	Position    mathutil.Vec3
	Camera      mathutil.Vec3
	CameraRot   mathutil.Vec3
	Color       color.NRGBA
	Quiet       bool
}

// Frame is one turntable step.
type Frame struct {
	Index  int
	Angles mathutil.Vec3
}

// Turntable spreads n frames around the Y axis, step radians apart,
// starting from base.
func Turntable(base mathutil.Vec3, n int, step float32) []Frame {
	frames := make([]Frame, mathutil.Max(n, 0))
	for i := range frames {
		a := base
		a.Y = math32.Mod(a.Y+float32(i)*step, 2*mathutil.Pi)
		frames[i] = Frame{Index: i, Angles: a}
	}
	return frames
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
	Image   *image.NRGBA
}

// FrameName is the output file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%03d.webp", i)
}

// Run renders all frames using a worker pool. Each worker owns its
// framebuffer; only the mesh and the texture cache are shared.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if !cfg.Quiet {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// RenderFrame renders, downsamples and composites a single frame.
// A backdrop that cannot be loaded fails the frame.
func RenderFrame(cfg Config, fr Frame) (*image.NRGBA, error) {
	img := raster.RenderMesh(cfg.Mesh, raster.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Projection:  cfg.Projection,
		Model:       viewmatrix.ModelMatrix(cfg.Position, fr.Angles),
		View:        viewmatrix.ViewMatrix(cfg.Camera, cfg.CameraRot),
		Color:       cfg.Color,
	})

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	if cfg.Backdrop == "" {
		return img, nil
	}
	if cfg.Textures == nil {
		return nil, fmt.Errorf("batch: backdrop %s: no texture loader", cfg.Backdrop)
	}
	bg, err := cfg.Textures.Load(cfg.Backdrop)
	if err != nil {
		return nil, fmt.Errorf("batch: backdrop: %w", err)
	}
	return postprocess.Composite(img, bg), nil
}

func processFrame(cfg Config, fr Frame) Result {
	if cfg.Mesh == nil || len(cfg.Mesh.Tris) == 0 {
		return Result{Frame: fr.Index, Error: "no triangles to render"}
	}

	outPath := filepath.Join(cfg.OutputDir, FrameName(fr.Index))
	img, err := RenderFrame(cfg, fr)
	if err != nil {
		return Result{Frame: fr.Index, Path: outPath, Error: err.Error()}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: fr.Index, Path: outPath, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: fr.Index, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: fr.Index, Path: outPath, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: fr.Index, Path: outPath, Success: true, Image: img}
}

// WriteAnimation encodes the successful frames, in order, as one looping
// animated WebP with delayMS milliseconds per frame.
func WriteAnimation(path string, results []Result, delayMS int) error {
	ani := &nativewebp.Animation{}
	for _, r := range results {
		if !r.Success || r.Image == nil {
			continue
		}
		ani.Images = append(ani.Images, r.Image)
		ani.Durations = append(ani.Durations, uint(delayMS))
		ani.Disposals = append(ani.Disposals, 0)
	}
	if len(ani.Images) == 0 {
		return fmt.Errorf("batch: animation %s: no frames rendered", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		return fmt.Errorf("batch: encode %s: %w", path, err)
	}
	return nil
}
