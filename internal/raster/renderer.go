// Package raster renders triangle meshes with painter's-algorithm depth
// ordering: faces are sorted far to near by mean depth and flat-filled in
// that order, so nearer triangles overwrite farther ones.
package raster

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Render fills every face of the mesh into a fresh framebuffer of the
// requested size and returns it.
//
// Depths are per-vertex: faces[i] indexes both verts and depths. They are
// normalized against their maximum on a private copy (the caller's slice is
// never written), so the nearest geometry shades toward white and the
// farthest toward black via c = 255·(1−avgDepth) per face.
//
// Preconditions are programmer errors and panic: len(verts) must equal
// len(depths), and every face must hold three distinct in-range indices.
// All faces are checked before any pixel is written. An empty face list
// yields an all-black image.
func Render(verts []r2.Vec, depths []float64, faces [][3]int, width, height int) *FrameBuffer {
	if len(verts) != len(depths) {
		panic(fmt.Sprintf("raster: %d vertices but %d depths", len(verts), len(depths)))
	}
	for i, f := range faces {
		for _, v := range f {
			if v < 0 || v >= len(verts) {
				panic(fmt.Sprintf("raster: face %d references vertex %d of %d", i, v, len(verts)))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			panic(fmt.Sprintf("raster: face %d has repeated vertex indices %v", i, f))
		}
	}

	fb := NewFrameBuffer(width, height)
	if len(faces) == 0 {
		return fb
	}

	zs := slices.Clone(depths)
	if max := floats.Max(zs); max != 0 {
		floats.Scale(1/max, zs)
	}

	// Sort far to near. Keys are negated mean depths, so ascending order
	// draws the largest mean depth first; the stable sort keeps ties in
	// submission order.
	key := make([]float64, len(faces))
	for i, f := range faces {
		key[i] = -(zs[f[0]] + zs[f[1]] + zs[f[2]]) / 3
	}
	order := make([]int, len(faces))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(key[a], key[b])
	})

	for _, i := range order {
		f := faces[i]
		avg := (zs[f[0]] + zs[f[1]] + zs[f[2]]) / 3
		shade := clamp255(255 * (1 - avg))
		fillTriangle(fb, verts[f[0]], verts[f[1]], verts[f[2]], shade)
	}
	return fb
}
