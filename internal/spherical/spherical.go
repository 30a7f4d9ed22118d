// Package spherical converts spherical camera coordinates to cartesian
// positions and generates orbit paths around the pole.
package spherical

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a spherical position: distance from the origin, elevation
// measured from the +Z pole (physics convention, not latitude), and azimuth
// measured from +X in the XY plane.
type Point struct {
	Radius    float64
	Elevation float64
	Azimuth   float64
}

// Cartesian maps p to a cartesian position. When degrees is true the two
// angles are scaled by π/180 first. A zero radius yields the origin
// regardless of angles.
func Cartesian(p Point, degrees bool) r3.Vec {
	elev, azim := p.Elevation, p.Azimuth
	if degrees {
		elev *= math.Pi / 180
		azim *= math.Pi / 180
	}
	sinE, cosE := math.Sincos(elev)
	sinA, cosA := math.Sincos(azim)
	return r3.Vec{
		X: p.Radius * sinE * cosA,
		Y: p.Radius * sinE * sinA,
		Z: p.Radius * cosE,
	}
}

// ToCartesian converts points one-to-one, preserving order. The result is
// freshly allocated and the input slice is never written, so callers may
// reuse their point buffers across calls.
func ToCartesian(points []Point, degrees bool) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = Cartesian(p, degrees)
	}
	return out
}

// Orbit returns count points circling the pole at a fixed radius and
// elevation, with azimuth stepped evenly over one full revolution starting
// at zero. The angle unit follows the degrees flag, matching what
// ToCartesian expects for the same flag. A non-positive count yields nil.
func Orbit(radius, elevation float64, count int, degrees bool) []Point {
	if count <= 0 {
		return nil
	}
	turn := 2 * math.Pi
	if degrees {
		turn = 360
	}
	step := turn / float64(count)
	pts := make([]Point, count)
	for i := range pts {
		pts[i] = Point{Radius: radius, Elevation: elevation, Azimuth: float64(i) * step}
	}
	return pts
}
