package raster

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func tri(x0, y0, x1, y1, x2, y2 float64) []r2.Vec {
	return []r2.Vec{{X: x0, Y: y0}, {X: x1, Y: y1}, {X: x2, Y: y2}}
}

func pixel(t *testing.T, fb *FrameBuffer, x, y int, want uint8) {
	t.Helper()
	r, g, b := fb.RGB(x, y)
	if r != want || g != want || b != want {
		t.Errorf("pixel (%d,%d) = (%d,%d,%d), want uniform %d", x, y, r, g, b, want)
	}
}

func TestRenderSingleTriangleFarIsBlack(t *testing.T) {
	verts := tri(0, 0, 4, 0, 0, 4)
	fb := Render(verts, []float64{1, 1, 1}, [][3]int{{0, 1, 2}}, 4, 4)

	// Depth normalizes to 1, so covered pixels shade to 0 — same as the
	// background. Verify through the white case below that coverage is real;
	// here just confirm nothing escaped the clamp.
	for _, p := range [][2]int{{0, 0}, {1, 1}, {3, 0}, {3, 3}} {
		pixel(t, fb, p[0], p[1], 0)
	}
}

func TestRenderSingleTriangleNearIsWhite(t *testing.T) {
	verts := tri(0, 0, 4, 0, 0, 4)
	fb := Render(verts, []float64{0, 0, 0}, [][3]int{{0, 1, 2}}, 4, 4)

	pixel(t, fb, 0, 0, 255)
	pixel(t, fb, 1, 1, 255)
	pixel(t, fb, 3, 0, 255)
	// Outside the hypotenuse the background stays black.
	pixel(t, fb, 3, 3, 0)
}

func TestRenderDoesNotMutateDepths(t *testing.T) {
	verts := tri(0, 0, 4, 0, 0, 4)
	depths := []float64{2, 4, 8}
	Render(verts, depths, [][3]int{{0, 1, 2}}, 4, 4)
	if depths[0] != 2 || depths[1] != 4 || depths[2] != 8 {
		t.Errorf("depth slice mutated: %v", depths)
	}
}

func TestRenderPainterOrdering(t *testing.T) {
	// Two triangles covering the same region, one far (0.9) and one near
	// (0.1). The near one must win regardless of submission order.
	verts := append(tri(0, 0, 8, 0, 0, 8), tri(0, 0, 8, 0, 0, 8)...)
	depths := []float64{0.9, 0.9, 0.9, 0.1, 0.1, 0.1}

	want := clamp255(255 * (1 - 0.1/0.9))
	for _, faces := range [][][3]int{
		{{0, 1, 2}, {3, 4, 5}},
		{{3, 4, 5}, {0, 1, 2}},
	} {
		fb := Render(verts, depths, faces, 4, 4)
		pixel(t, fb, 1, 1, want)
		pixel(t, fb, 0, 3, want)
	}
}

func TestRenderNegativeDepthClampsWhite(t *testing.T) {
	// Two disjoint triangles; the negative-depth one normalizes below zero
	// and its shade clamps at 255.
	verts := append(tri(0, 0, 3, 0, 0, 3), tri(8, 8, 15, 8, 8, 15)...)
	depths := []float64{-0.5, -0.5, -0.5, 1, 1, 1}
	fb := Render(verts, depths, [][3]int{{0, 1, 2}, {3, 4, 5}}, 16, 16)

	pixel(t, fb, 0, 0, 255)
	pixel(t, fb, 9, 9, 0)
}

func TestRenderUniformZeroDepth(t *testing.T) {
	// A zero depth maximum skips normalization instead of dividing by zero;
	// zero depth means nearest, so the fill is white.
	verts := tri(0, 0, 4, 0, 0, 4)
	fb := Render(verts, []float64{0, 0, 0}, [][3]int{{0, 1, 2}}, 4, 4)
	pixel(t, fb, 1, 1, 255)
}

func TestRenderEmptyFaces(t *testing.T) {
	fb := Render(tri(0, 0, 1, 0, 0, 1), []float64{1, 1, 1}, nil, 8, 8)
	for _, v := range fb.Pix {
		if v != 0 {
			t.Fatal("empty face list produced non-zero pixels")
		}
	}
}

func TestRenderDegenerateTriangle(t *testing.T) {
	// Collinear vertices have near-zero area and draw nothing.
	verts := tri(0, 0, 2, 2, 4, 4)
	fb := Render(verts, []float64{0, 0, 0}, [][3]int{{0, 1, 2}}, 8, 8)
	for _, v := range fb.Pix {
		if v != 0 {
			t.Fatal("degenerate triangle produced pixels")
		}
	}
}

func TestRenderPanicsOnCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched vertex/depth counts did not panic")
		}
	}()
	Render(tri(0, 0, 1, 0, 0, 1), []float64{1, 1}, [][3]int{{0, 1, 2}}, 4, 4)
}

func TestRenderPanicsOnOutOfRangeIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range face index did not panic")
		}
	}()
	Render(tri(0, 0, 1, 0, 0, 1), []float64{1, 1, 1}, [][3]int{{0, 1, 10}}, 4, 4)
}

func TestRenderPanicsOnRepeatedIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("repeated face index did not panic")
		}
	}()
	Render(tri(0, 0, 1, 0, 0, 1), []float64{1, 1, 1}, [][3]int{{0, 1, 1}}, 4, 4)
}

func TestNRGBABridge(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Pix[0], fb.Pix[1], fb.Pix[2] = 10, 20, 30

	img := fb.NRGBA()
	if got := img.Bounds(); got.Dx() != 2 || got.Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", got)
	}
	c := img.NRGBAAt(0, 0)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("NRGBA(0,0) = %+v, want {10 20 30 255}", c)
	}
	if a := img.NRGBAAt(1, 1).A; a != 255 {
		t.Errorf("background alpha = %d, want 255", a)
	}
}
