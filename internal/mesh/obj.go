package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"gmath/internal/mathutil"
)

// LoadOBJ reads a Wavefront OBJ file. Only positions and faces are used.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// ParseOBJ parses "v" and "f" records. Polygons are fan-triangulated;
// "v/vt/vn" references and negative (relative) indices are accepted.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		if t == "" || t[0] == '#' {
			continue
		}
		fields := strings.Fields(t)
		switch fields[0] {
		case "o":
			if len(fields) > 1 && m.Name == "" {
				m.Name = objectName(fields[1])
			}
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var c [3]float32
			for i := range c {
				x, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				c[i] = float32(x)
			}
			m.Verts = append(m.Verts, mathutil.Vec3{X: c[0], Y: c[1], Z: c[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			idx := make([]int, len(fields)-1)
			for i, ref := range fields[1:] {
				v, err := resolveIndex(ref, len(m.Verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx[i] = v
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Tris = append(m.Tris, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(m.Tris) == 0 {
		return nil, fmt.Errorf("no faces")
	}
	return m, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ vertex
// reference into a 0-based index into a list of n vertices.
func resolveIndex(ref string, n int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	v, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q", ref)
	}
	switch {
	case v > 0:
		v--
	case v < 0:
		v += n
	default:
		return 0, fmt.Errorf("vertex index 0, indices start at 1")
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("vertex index %s out of range (%d vertices)", ref, n)
	}
	return v, nil
}

// objectName decodes names written by exporters that use Windows-1252
// instead of UTF-8.
func objectName(raw string) string {
	if utf8.ValidString(raw) {
		return raw
	}
	name, err := charmap.Windows1252.NewDecoder().String(raw)
	if err != nil {
		return raw
	}
	return name
}
