package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"

	"gmath/internal/mathutil"
	"gmath/internal/mesh"
	"gmath/internal/raster"
	"gmath/internal/viewmatrix"
)

var (
	sinkMat  mathutil.Mat4
	sinkVec  mathutil.Vec3
	sinkF32s []float32
)

type result struct {
	name  string
	iters int
	dur   time.Duration
}

func (r result) String() string {
	return fmt.Sprintf("%-24s %10d iters %12.1f ns/op", r.name, r.iters, float64(r.dur.Nanoseconds())/float64(r.iters))
}

// timeIt runs fn at least once so the per-op figure is always defined.
func timeIt(name string, iters int, fn func()) result {
	iters = max(iters, 1)
	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	return result{name, iters, time.Since(start)}
}

func main() {
	dir := flag.String("dir", "bench", "Directory for result logs")
	iters := flag.Int("n", 1_000_000, "Iterations for matrix and vector loops")
	frames := flag.Int("frames", 20, "Frames for the render loop")
	size := flag.Int("size", 256, "Render size in pixels")
	flag.Parse()

	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = "unknown"
	}
	brand = strings.ReplaceAll(brand, string(filepath.Separator), "_")
	fmt.Printf("CPU: %s (%d physical, %d logical cores)\n", brand, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)

	model := mathutil.Mat4Model(mathutil.V3(1, 2, 3), mathutil.V3(0.3, 0.6, 0.9))
	other := mathutil.Mat4Model(mathutil.V3(-1, 0, 4), mathutil.V3(1.1, -0.2, 0.5))
	view := viewmatrix.ViewMatrix(mathutil.V3(0, 0, -3), mathutil.Vec3{})
	cube := mesh.Cube(1)
	mv := viewmatrix.ModelView(mathutil.Mat4Identity(), view)
	p := mathutil.V3(0.5, -0.25, 2)

	results := []result{
		timeIt("Mat4Mul", *iters, func() { sinkMat = mathutil.Mat4Mul(model, other) }),
		timeIt("Mat4.Multiply", *iters, func() { m := model; m.Multiply(other); sinkMat = m }),
		timeIt("Mat4RigidInverse", *iters, func() { sinkMat = mathutil.Mat4RigidInverse(model) }),
		timeIt("Vec3.MulMat4", *iters, func() { sinkVec = p.MulMat4(model) }),
		timeIt("Vec3.ProjectViewport", *iters, func() { sinkVec = p.ProjectViewport(800, 600) }),
		timeIt("ProjectVertices", max(*iters/10, 1), func() {
			sinkF32s, _, _ = viewmatrix.ProjectVertices(cube.Verts, mv, viewmatrix.Projection{Width: 800, Height: 600})
		}),
	}

	renderOpts := raster.Options{
		Width:       *size,
		Height:      *size,
		Supersample: 1,
		Projection:  viewmatrix.Projection{Mode: viewmatrix.ModePerspective, FOV: mathutil.Deg2Rad(60), Near: 0.1, Far: 100},
		View:        view,
	}
	step := 2 * mathutil.Pi / float32(max(*frames, 1))
	frame := 0
	results = append(results, timeIt("RenderMesh", *frames, func() {
		renderOpts.Model = mathutil.Mat4Model(mathutil.Vec3{}, mathutil.V3(0.4, float32(frame)*step, 0))
		raster.RenderMesh(cube, renderOpts)
		frame++
	}))

	for _, r := range results {
		fmt.Println(r)
	}

	// One log per CPU brand.
	logDir := filepath.Join(*dir, brand)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logPath := filepath.Join(logDir, "bench.txt")
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	fmt.Fprintf(f, "# %s\n", time.Now().Format(time.RFC3339))
	for _, r := range results {
		fmt.Fprintln(f, r)
	}
	fmt.Printf("Log: %s\n", logPath)
}
