package mesh

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const stlTriangleSize = 50

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the triangle record within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t *stlTriangle) get(b []byte) {
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

// LoadSTL reads a binary STL file. Exact-duplicate vertices are welded into
// shared indices so faces across adjacent triangles reference the same
// vertex; triangles whose corners weld together are dropped. STL carries no
// up-axis metadata and is taken as Z-up (the CAD convention).
func LoadSTL(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stl: read %s: %w", path, err)
	}
	m, err := parseSTL(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("stl: parse %s: %w", path, err)
	}
	return m, nil
}

func parseSTL(data []byte, name string) (*Mesh, error) {
	var header stlHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("header read failed: %w", err)
	}
	body := data[84:]
	if len(body) < int(header.Count)*stlTriangleSize {
		// A "solid" prefix with an implausible record count is the ASCII
		// variant, not a truncated binary file.
		if bytes.HasPrefix(data, []byte("solid")) {
			return nil, fmt.Errorf("ASCII STL is not supported, convert to binary")
		}
		return nil, fmt.Errorf("truncated: header declares %d triangles, body holds %d bytes",
			header.Count, len(body))
	}
	if header.Count == 0 {
		return nil, fmt.Errorf("header declares 0 triangles")
	}

	m := &Mesh{Name: name}
	weld := make(map[[3]float32]int)
	index := func(v [3]float32) int {
		if i, ok := weld[v]; ok {
			return i
		}
		i := len(m.Verts)
		weld[v] = i
		m.Verts = append(m.Verts, r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		return i
	}

	var d stlTriangle
	degenerate := 0
	for i := 0; i < int(header.Count); i++ {
		d.get(body[i*stlTriangleSize:])
		if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
			return nil, fmt.Errorf("triangle %d: inf/NaN vertex", i)
		}
		a, b, c := index(d.Vertex1), index(d.Vertex2), index(d.Vertex3)
		if a == b || b == c || c == a {
			degenerate++
			continue
		}
		m.Faces = append(m.Faces, [3]int{a, b, c})
	}
	if degenerate > 0 {
		fmt.Printf("  %s: skipped %d degenerate triangles\n", name, degenerate)
	}
	return m, nil
}
