package batch

import (
	"gonum.org/v1/gonum/spatial/r3"

	"turntable-renderer/internal/camera"
	"turntable-renderer/internal/mesh"
	"turntable-renderer/internal/spherical"
)

// Frame is one turntable view: an orbit position and the camera frame built
// for it.
type Frame struct {
	Index  int
	Camera spherical.Point // angles in degrees
	Eye    r3.Vec
	View   *r3.Mat
}

// Frames places count cameras on an even orbit around the mesh center at
// the given radius and elevation (degrees) and builds their view rotations,
// all looking at the center with the world-up axis.
func Frames(m *mesh.Mesh, radius, elevation float64, count int) []Frame {
	center := m.Center()
	points := spherical.Orbit(radius, elevation, count, true)
	offsets := spherical.ToCartesian(points, true)

	eyes := make([]r3.Vec, len(offsets))
	for i, off := range offsets {
		eyes[i] = r3.Add(center, off)
	}
	views := camera.LookAt(eyes, []r3.Vec{center}, nil)

	frames := make([]Frame, len(points))
	for i := range frames {
		frames[i] = Frame{
			Index:  i,
			Camera: points[i],
			Eye:    eyes[i],
			View:   views[i],
		}
	}
	return frames
}
