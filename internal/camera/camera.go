// Package camera builds world→view rotation matrices from camera position,
// look-at target and up vector, with deterministic recovery when the view
// direction lines up with the up axis.
package camera

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// WorldUp is the canonical up axis used when no up vector is supplied.
var WorldUp = r3.Vec{Z: 1}

const (
	// normEps floors the divisor in unit so zero-length vectors stay
	// near zero instead of becoming NaN.
	normEps = 1e-5
	// rightTol is the per-component tolerance under which the right axis
	// counts as degenerate, meaning up and forward were collinear.
	rightTol = 5e-3
)

// Rotation builds the view rotation for a single camera at eye looking at
// target with the given up vector.
//
// The returned matrix holds the camera basis vectors (right, up, forward)
// in its columns; transform a world-space point into view coordinates with
// MulVecTrans. The result is orthonormal for every eye ≠ target, including
// a camera looking straight along the up axis. eye == target is a
// precondition violation and produces a garbage frame.
func Rotation(eye, target, up r3.Vec) *r3.Mat {
	forward := unit(r3.Sub(target, eye))
	right := unit(r3.Cross(up, forward))
	trueUp := unit(r3.Cross(forward, right))
	if nearZero(right) {
		// up and forward were collinear. The derived trueUp usually
		// still spans the missing direction; rebuild right from it.
		right = unit(r3.Cross(trueUp, forward))
		if nearZero(right) {
			// Exactly collinear inputs leave no usable cross product
			// anywhere. Seed the frame from a world axis instead.
			seed := r3.Vec{X: 1}
			if math.Abs(forward.X) > 0.9 {
				seed = r3.Vec{Y: 1}
			}
			right = unit(r3.Cross(seed, forward))
		}
		trueUp = unit(r3.Cross(forward, right))
	}
	return r3.NewMat([]float64{
		right.X, trueUp.X, forward.X,
		right.Y, trueUp.Y, forward.Y,
		right.Z, trueUp.Z, forward.Z,
	})
}

// LookAt builds one view rotation per camera. eyes sets the batch size N.
// targets and ups may be nil (defaulting to the origin and WorldUp), hold a
// single element broadcast to every instance, or hold exactly N elements.
// Any other length is a programmer error and panics.
func LookAt(eyes, targets, ups []r3.Vec) []*r3.Mat {
	n := len(eyes)
	if n == 0 {
		return nil
	}
	targets = broadcast("targets", targets, r3.Vec{}, n)
	ups = broadcast("ups", ups, WorldUp, n)

	mats := make([]*r3.Mat, n)
	for i := range eyes {
		mats[i] = Rotation(eyes[i], targets[i], ups[i])
	}
	return mats
}

func broadcast(name string, v []r3.Vec, def r3.Vec, n int) []r3.Vec {
	switch len(v) {
	case n:
		return v
	case 0:
		out := make([]r3.Vec, n)
		for i := range out {
			out[i] = def
		}
		return out
	case 1:
		out := make([]r3.Vec, n)
		for i := range out {
			out[i] = v[0]
		}
		return out
	}
	panic(fmt.Sprintf("camera: %s has length %d, want nil, 1 or %d", name, len(v), n))
}

// unit scales v to unit length with a floored divisor, so near-zero input
// comes back near zero rather than NaN.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < normEps {
		n = normEps
	}
	return r3.Scale(1/n, v)
}

func nearZero(v r3.Vec) bool {
	return math.Abs(v.X) <= rightTol && math.Abs(v.Y) <= rightTol && math.Abs(v.Z) <= rightTol
}
