package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gmath/internal/viewmatrix"
)

// Config holds all configurable paths and render settings.
// Angles and FOV are in degrees.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	Mesh      string `json:"mesh"` // OBJ path or a built-in name ("cube", "tetrahedron")
	Backdrop  string `json:"backdrop"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Mode        string  `json:"mode"` // "viewport" or "perspective"
	FOV         float32 `json:"fov"`
	Near        float32 `json:"near"`
	Far         float32 `json:"far"`
	Color       string  `json:"color"` // "#rrggbb" or "#rrggbbaa"

	// Scene
	Position   [3]float32 `json:"position"`
	Angles     [3]float32 `json:"angles"`
	Camera     [3]float32 `json:"camera"`
	CameraRot  [3]float32 `json:"camera_angles"`
	FitRadius  float32    `json:"fit_radius"` // rescale the mesh to this radius, negative keeps it as loaded
	Frames     int        `json:"frames"`
	Step       float32    `json:"turntable_step"` // degrees per frame, 0 spreads one turn over Frames
	FrameDelay int        `json:"frame_delay_ms"`
	Animate    bool       `json:"animate"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Size > 0 {
		c.Width, c.Height = flags.Size, flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Animate {
		c.Animate = true
	}

	// Relative paths resolve against base dir
	if c.BaseDir != "" {
		c.OutputDir = c.join(c.OutputDir)
		c.Backdrop = c.join(c.Backdrop)
		if strings.HasSuffix(strings.ToLower(c.Mesh), ".obj") {
			c.Mesh = c.join(c.Mesh)
		}
	}

	if c.Mesh == "" {
		c.Mesh = "cube"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 256
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Mode == "" {
		c.Mode = "viewport"
	}
	if c.FOV <= 0 {
		c.FOV = 60
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= c.Near {
		c.Far = c.Near * 1000
	}
	if c.Camera == ([3]float32{}) {
		c.Camera = [3]float32{0, 0, -3}
	}
	if c.FitRadius == 0 {
		c.FitRadius = 1
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Step == 0 {
		c.Step = 360 / float32(c.Frames)
	}
	if c.FrameDelay <= 0 {
		c.FrameDelay = 80
	}
}

func (c *Config) join(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Validate checks fields Resolve cannot default.
func (c *Config) Validate() error {
	mode, err := viewmatrix.ParseMode(c.Mode)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if mode == viewmatrix.ModeRaw {
		return fmt.Errorf("config: mode %q does not produce pixels", c.Mode)
	}
	if c.Color != "" {
		if _, err := ParseColor(c.Color); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("config: bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh      string
	OutputDir string
	Backdrop  string
	Mode      string
	Size      int
	Frames    int
	Workers   int
	Animate   bool
}
