package batch

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HugoSmits86/nativewebp"

	"gmath/internal/mathutil"
	"gmath/internal/mesh"
	"gmath/internal/texture"
	"gmath/internal/viewmatrix"
)

func testConfig(dir string) Config {
	return Config{
		OutputDir:   dir,
		Mesh:        mesh.Cube(1),
		Width:       24,
		Height:      16,
		Supersample: 2,
		Workers:     3,
		Projection:  viewmatrix.Projection{Mode: viewmatrix.ModePerspective, FOV: mathutil.Deg2Rad(60), Near: 0.1, Far: 50},
		Camera:      mathutil.Vec3{Z: -3},
		Quiet:       true,
	}
}

func TestTurntable(t *testing.T) {
	frames := Turntable(mathutil.Vec3{X: 0.5}, 4, mathutil.Pi/2)
	if len(frames) != 4 {
		t.Fatalf("frames=%d", len(frames))
	}
	for i, f := range frames {
		if f.Index != i || f.Angles.X != 0.5 {
			t.Fatalf("frame %d=%+v", i, f)
		}
		if want := float32(i) * mathutil.Pi / 2; !mathutil.FloatEqEps(f.Angles.Y, want, 1e-5) {
			t.Fatalf("frame %d yaw=%v, want %v", i, f.Angles.Y, want)
		}
	}
	if len(Turntable(mathutil.Vec3{}, -1, 1)) != 0 {
		t.Fatalf("negative count should give no frames")
	}
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	frames := Turntable(mathutil.Vec3{}, 5, mathutil.Deg2Rad(72))

	results := Run(cfg, frames)
	if len(results) != 5 {
		t.Fatalf("results=%d", len(results))
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Frame != i || filepath.Base(r.Path) != FrameName(i) {
			t.Fatalf("frame %d result=%+v", i, r)
		}
		f, err := os.Open(r.Path)
		if err != nil {
			t.Fatal(err)
		}
		cfgImg, err := nativewebp.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %d decode: %v", i, err)
		}
		if cfgImg.Width != 24 || cfgImg.Height != 16 {
			t.Fatalf("frame %d size=%dx%d", i, cfgImg.Width, cfgImg.Height)
		}
	}

	anim := filepath.Join(dir, "turntable.webp")
	if err := WriteAnimation(anim, results, 50); err != nil {
		t.Fatalf("WriteAnimation: %v", err)
	}
	if st, err := os.Stat(anim); err != nil || st.Size() == 0 {
		t.Fatalf("animation missing: %v", err)
	}

	manifest := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifest, Manifest{Mesh: "cube", Width: 24, Height: 16}, frames, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest json: %v", err)
	}
	if len(m.Frames) != 5 || m.Frames[1].Image != FrameName(1) {
		t.Fatalf("manifest=%+v", m)
	}
	if !mathutil.FloatEqEps(m.Frames[1].Angles[1], 72, 1e-3) {
		t.Fatalf("manifest yaw=%v", m.Frames[1].Angles[1])
	}
}

func TestRunReportsEmptyMesh(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Mesh = &mesh.Mesh{}
	results := Run(cfg, Turntable(mathutil.Vec3{}, 2, 1))
	for _, r := range results {
		if r.Success || r.Error == "" {
			t.Fatalf("empty mesh result=%+v", r)
		}
	}
	if err := WriteAnimation(filepath.Join(t.TempDir(), "a.webp"), results, 50); err == nil {
		t.Fatalf("expected error with no successful frames")
	}
}

func TestRenderFrameBackdrop(t *testing.T) {
	dir := t.TempDir()
	bgPath := filepath.Join(dir, "bg.png")
	bg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(bg.Pix); i += 4 {
		copy(bg.Pix[i:], []uint8{0, 200, 0, 255})
	}
	f, err := os.Create(bgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, bg); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := testConfig(dir)
	cfg.Backdrop = bgPath
	cfg.Textures = texture.NewCache()
	img, err := RenderFrame(cfg, Frame{})
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	if c := img.NRGBAAt(0, 0); c.A != 255 || c.R > 2 || c.B > 2 || c.G < 198 {
		t.Fatalf("corner should show backdrop, got %v", c)
	}
	if c := img.NRGBAAt(12, 8); c.G == 200 && c.R == 0 {
		t.Fatalf("center should show the mesh, got %v", c)
	}
}

func TestRunReportsBadBackdrop(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Backdrop = filepath.Join(dir, "missing.png")
	cfg.Textures = texture.NewCache()

	if _, err := RenderFrame(cfg, Frame{}); err == nil || !strings.Contains(err.Error(), "backdrop") {
		t.Fatalf("RenderFrame err=%v", err)
	}

	results := Run(cfg, Turntable(mathutil.Vec3{}, 2, 1))
	for i, r := range results {
		if r.Success || !strings.Contains(r.Error, "backdrop") || !strings.Contains(r.Error, "missing.png") {
			t.Fatalf("result %d=%+v", i, r)
		}
		if _, err := os.Stat(r.Path); !os.IsNotExist(err) {
			t.Fatalf("frame %d should not be written, stat err=%v", i, err)
		}
	}

	cfg.Textures = nil
	if _, err := RenderFrame(cfg, Frame{}); err == nil {
		t.Fatalf("expected error without a texture loader")
	}
}
