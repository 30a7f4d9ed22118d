package raster

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// fillTriangle flat-fills the triangle (a, b, c) with a grayscale shade.
//
// This is the HOT PATH — designed for zero allocation in the inner loop.
// A pixel is covered when its center passes the edge-function test for all
// three edges; dividing by the signed determinant makes the test
// winding-independent, and the small negative tolerance keeps pixels on
// shared edges from dropping out.
func fillTriangle(fb *FrameBuffer, a, b, c r2.Vec, shade uint8) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	x2, y2 := c.X, c.Y

	// Bounding box clipped to the image
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup; near-zero area draws nothing
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			i := (rowOff + sx) * 3
			fb.Pix[i] = shade
			fb.Pix[i+1] = shade
			fb.Pix[i+2] = shade
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
