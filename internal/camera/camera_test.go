package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

// checkOrthonormal multiplies R by its transpose and compares against the
// identity.
func checkOrthonormal(t *testing.T, name string, R *r3.Mat) {
	t.Helper()
	prod := r3.NewMat(nil)
	prod.Mul(R, R.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod.At(i, j)-want) > tol {
				t.Fatalf("%s: R·Rᵀ[%d,%d] = %v, want %v", name, i, j, prod.At(i, j), want)
			}
		}
	}
}

func TestRotationKnownFrame(t *testing.T) {
	R := Rotation(r3.Vec{X: 2}, r3.Vec{}, WorldUp)

	// Columns are right (0,-1,0), up (0,0,1), forward (-1,0,0).
	want := [3][3]float64{
		{0, 0, -1},
		{-1, 0, 0},
		{0, 1, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(R.At(i, j)-want[i][j]) > tol {
				t.Errorf("R[%d,%d] = %v, want %v", i, j, R.At(i, j), want[i][j])
			}
		}
	}
	checkOrthonormal(t, "known frame", R)
}

func TestRotationOrthonormal(t *testing.T) {
	eyes := []r3.Vec{
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 0.5, Z: 2},
		{X: 0.1, Y: -0.1, Z: 0.02},
		{X: 100, Y: -250, Z: 75},
	}
	for _, eye := range eyes {
		checkOrthonormal(t, "general position", Rotation(eye, r3.Vec{}, WorldUp))
	}
}

func TestRotationDegenerateAbovePole(t *testing.T) {
	// Looking straight down the up axis: the primary construction collapses
	// and the recovery path must still produce a full frame.
	R := Rotation(r3.Vec{Z: 5}, r3.Vec{}, WorldUp)
	checkOrthonormal(t, "above pole", R)

	right := math.Hypot(math.Hypot(R.At(0, 0), R.At(1, 0)), R.At(2, 0))
	if math.Abs(right-1) > tol {
		t.Errorf("right column norm = %v, want 1", right)
	}
	// Forward must point down at the target.
	if math.Abs(R.At(2, 2)+1) > tol {
		t.Errorf("forward column = (%v,%v,%v), want (0,0,-1)", R.At(0, 2), R.At(1, 2), R.At(2, 2))
	}
}

func TestRotationDegenerateBelowPole(t *testing.T) {
	R := Rotation(r3.Vec{Z: -5}, r3.Vec{}, WorldUp)
	checkOrthonormal(t, "below pole", R)
	if math.Abs(R.At(2, 2)-1) > tol {
		t.Errorf("forward column z = %v, want 1", R.At(2, 2))
	}
}

func TestRotationNearParallel(t *testing.T) {
	// Just off the pole: the cross product is tiny but nonzero, which takes
	// the first recovery branch rather than the axis reseed.
	R := Rotation(r3.Vec{X: 1e-9, Z: 5}, r3.Vec{}, WorldUp)
	checkOrthonormal(t, "near parallel", R)
}

func TestRotationCustomUp(t *testing.T) {
	// With up along +X the degenerate direction moves to the X axis.
	R := Rotation(r3.Vec{X: 3}, r3.Vec{}, r3.Vec{X: 1})
	checkOrthonormal(t, "custom up degenerate", R)

	R = Rotation(r3.Vec{Y: 3}, r3.Vec{}, r3.Vec{X: 1})
	checkOrthonormal(t, "custom up regular", R)
}

func TestRotationViewTransform(t *testing.T) {
	// A camera 5 units away sees its target 5 units down the view axis.
	eye := r3.Vec{Y: -5}
	R := Rotation(eye, r3.Vec{}, WorldUp)
	v := R.MulVecTrans(r3.Sub(r3.Vec{}, eye))
	if math.Abs(v.X) > tol || math.Abs(v.Y) > tol || math.Abs(v.Z-5) > tol {
		t.Errorf("target in view space = %v, want (0,0,5)", v)
	}
}

func TestLookAtBroadcast(t *testing.T) {
	eyes := []r3.Vec{{X: 3}, {Y: 3}, {X: -3}}
	mats := LookAt(eyes, []r3.Vec{{}}, nil)
	if len(mats) != len(eyes) {
		t.Fatalf("got %d matrices, want %d", len(mats), len(eyes))
	}
	for k, m := range mats {
		want := Rotation(eyes[k], r3.Vec{}, WorldUp)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if m.At(i, j) != want.At(i, j) {
					t.Errorf("mats[%d][%d,%d] = %v, want %v", k, i, j, m.At(i, j), want.At(i, j))
				}
			}
		}
	}
}

func TestLookAtDefaults(t *testing.T) {
	mats := LookAt([]r3.Vec{{X: 2}}, nil, nil)
	if len(mats) != 1 {
		t.Fatalf("got %d matrices, want 1", len(mats))
	}
	want := Rotation(r3.Vec{X: 2}, r3.Vec{}, WorldUp)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if mats[0].At(i, j) != want.At(i, j) {
				t.Errorf("defaulted matrix differs at [%d,%d]", i, j)
			}
		}
	}
}

func TestLookAtEmpty(t *testing.T) {
	if mats := LookAt(nil, nil, nil); mats != nil {
		t.Errorf("LookAt(nil) = %v, want nil", mats)
	}
}

func TestLookAtShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched target length did not panic")
		}
	}()
	LookAt([]r3.Vec{{X: 1}, {X: 2}, {X: 3}}, []r3.Vec{{}, {}}, nil)
}
