// Package project maps world-space mesh vertices into screen space for the
// rasterizer: view transform, fit-to-viewport scaling, and per-vertex depth
// along the view axis.
package project

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ProjectVertices transforms verts into the camera frame and fits them to a
// size×size viewport with the given pixel margin on each side.
//
// view holds the camera basis in its columns, so the world→view transform is
// a transpose-multiply of the eye-relative position. Screen X grows right
// and screen Y grows down. The returned depth is each vertex's view-space Z
// minus the minimum over all vertices — distance past the nearest vertex —
// so the rasterizer's divide-by-max normalization spreads shades over the
// full range regardless of how far away the camera orbits.
func ProjectVertices(verts []r3.Vec, view *r3.Mat, eye r3.Vec, size, margin int) ([]r2.Vec, []float64) {
	n := len(verts)
	if n == 0 {
		return nil, nil
	}

	t := make([]r3.Vec, n)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	minZ := math.Inf(1)
	for i, v := range verts {
		t[i] = view.MulVecTrans(r3.Sub(v, eye))
		minX = math.Min(minX, t[i].X)
		maxX = math.Max(maxX, t[i].X)
		minY = math.Min(minY, t[i].Y)
		maxY = math.Max(maxY, t[i].Y)
		minZ = math.Min(minZ, t[i].Z)
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	span := maxX - minX
	if s := maxY - minY; s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}

	inner := size - 2*margin
	if inner < 1 {
		inner = 1
	}
	scale := float64(inner) / span
	half := float64(size) / 2

	screen := make([]r2.Vec, n)
	depths := make([]float64, n)
	for i := range t {
		screen[i] = r2.Vec{
			X: (t[i].X-cx)*scale + half,
			Y: -(t[i].Y-cy)*scale + half,
		}
		depths[i] = t[i].Z - minZ
	}
	return screen, depths
}
