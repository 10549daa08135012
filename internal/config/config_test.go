package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"base_dir": "` + filepath.ToSlash(dir) + `", "mesh": "models/ship.obj", "width": 320, "frames": 12, "mode": "perspective", "angles": [10, 20, 30]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{Workers: 3})

	if cfg.Mesh != filepath.Join(dir, "models", "ship.obj") {
		t.Fatalf("mesh=%q", cfg.Mesh)
	}
	if cfg.OutputDir != "renders" {
		t.Fatalf("output=%q", cfg.OutputDir)
	}
	if cfg.Width != 320 || cfg.Height != 320 {
		t.Fatalf("size=%dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Workers != 3 {
		t.Fatalf("workers=%d", cfg.Workers)
	}
	if cfg.Step != 30 {
		t.Fatalf("step=%v, want 360/12", cfg.Step)
	}
	if cfg.Angles != [3]float32{10, 20, 30} {
		t.Fatalf("angles=%v", cfg.Angles)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Mesh != "cube" || cfg.Mode != "viewport" || cfg.OutputDir != "renders" {
		t.Fatalf("defaults=%+v", cfg)
	}
	if cfg.Width != 256 || cfg.Height != 256 || cfg.Supersample != 2 || cfg.Frames != 1 {
		t.Fatalf("render defaults=%+v", cfg)
	}
	if cfg.Workers <= 0 || cfg.Far <= cfg.Near || cfg.Camera == ([3]float32{}) {
		t.Fatalf("derived defaults=%+v", cfg)
	}
}

func TestFlagsOverride(t *testing.T) {
	cfg := Config{Mesh: "cube", Width: 100, Height: 50, Mode: "perspective"}
	cfg.Resolve(Flags{Mesh: "tetra", Size: 64, Mode: "viewport", Animate: true})
	if cfg.Mesh != "tetra" || cfg.Width != 64 || cfg.Height != 64 || cfg.Mode != "viewport" || !cfg.Animate {
		t.Fatalf("override=%+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected read error")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	for _, mode := range []string{"raw", "ortho"} {
		cfg := Config{Mode: mode}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("mode %q accepted", mode)
		}
	}
	cfg := Config{Mode: "viewport", Color: "#12"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("bad color accepted")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#a0a0aa")
	if err != nil || c != (color.NRGBA{0xa0, 0xa0, 0xaa, 0xff}) {
		t.Fatalf("ParseColor=%v, %v", c, err)
	}
	c, err = ParseColor("11223344")
	if err != nil || c != (color.NRGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Fatalf("ParseColor=%v, %v", c, err)
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Fatalf("expected error")
	}
}
