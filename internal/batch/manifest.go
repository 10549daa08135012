package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gmath/internal/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame  int        `json:"frame"`
	Image  string     `json:"image,omitempty"`
	Angles [3]float32 `json:"angles_deg"`
	Error  string     `json:"error,omitempty"`
}

// Manifest is written as manifest.json next to the frames.
type Manifest struct {
	Mesh      string          `json:"mesh"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Animation string          `json:"animation,omitempty"`
	Frames    []ManifestEntry `json:"frames"`
}

// WriteManifest writes the manifest for a finished run. Image paths are
// stored relative to the manifest's directory.
func WriteManifest(path string, m Manifest, frames []Frame, results []Result) error {
	dir := filepath.Dir(path)
	m.Frames = make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{Frame: r.Frame, Error: r.Error}
		if r.Success {
			if rel, err := filepath.Rel(dir, r.Path); err == nil {
				e.Image = filepath.ToSlash(rel)
			} else {
				e.Image = r.Path
			}
		}
		if i < len(frames) {
			a := frames[i].Angles
			e.Angles = [3]float32{mathutil.Rad2Deg(a.X), mathutil.Rad2Deg(a.Y), mathutil.Rad2Deg(a.Z)}
		}
		m.Frames[i] = e
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
