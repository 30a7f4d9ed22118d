// Package mesh holds the triangle mesh consumed by the render pipeline and
// loads it from binary STL or glTF/GLB files.
//
// Meshes live in a Z-up world; loaders remap as needed on the way in.
package mesh

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a set of world-space vertices and triangular faces indexing them.
type Mesh struct {
	Name  string
	Verts []r3.Vec
	Faces [][3]int
}

// Validate checks mesh topology: every face must hold three distinct
// indices into Verts. The rasterizer panics on bad topology, so callers
// run this check first and surface the error instead.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Verts) {
				return fmt.Errorf("mesh %s: face %d references vertex %d of %d", m.Name, i, v, len(m.Verts))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("mesh %s: face %d has repeated vertex indices %v", m.Name, i, f)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box. An empty mesh bounds to the
// origin.
func (m *Mesh) Bounds() (min, max r3.Vec) {
	if len(m.Verts) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() r3.Vec {
	min, max := m.Bounds()
	return r3.Scale(0.5, r3.Add(min, max))
}

// BoundingRadius returns the largest distance from the bounding-box center
// to any vertex. Orbit radii are derived from it.
func (m *Mesh) BoundingRadius() float64 {
	c := m.Center()
	var max float64
	for _, v := range m.Verts {
		if d := r3.Norm(r3.Sub(v, c)); d > max {
			max = d
		}
	}
	return max
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Verts) }

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// Load reads a mesh file, dispatching on extension: .stl, .gltf or .glb.
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return LoadSTL(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("mesh: unsupported file type %q", filepath.Ext(path))
}
