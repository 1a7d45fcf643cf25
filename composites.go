package polyscene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ring places count copies of shape evenly around a circle of the given
// radius in the XZ plane. Each copy is turned about Y so the same side of it
// faces the centre.
func Ring(shape *Shape, radius float64, count int) *Shape {
	m := NewMultiShape()
	yAxis := mgl64.Vec3{0, 1, 0}
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi * float64(i) / float64(count)
		m.Add(shape, Placement{
			Position:    mgl64.Vec3{radius * math.Cos(theta), 0, radius * math.Sin(theta)},
			Orientation: mgl64.QuatRotate(-theta, yAxis),
		})
	}
	return m.AsShape()
}

// TriRings is three rings of the same radius, one around each axis.
func TriRings(shape *Shape, radius float64, count int) *Shape {
	ring := Ring(shape, radius, count)
	m := NewMultiShape()
	m.Add(ring, Placement{})
	m.Add(ring, Placement{Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})})
	m.Add(ring, Placement{Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})})
	return m.AsShape()
}

// CubeCross is a cube of colour centre with a cube of colour arm stuck to
// each of its faces.
func CubeCross(edge float64, centre, arm color.RGBA) *Shape {
	m := NewMultiShape()
	m.Add(Cube(edge, centre), Placement{})
	armCube := Cube(edge, arm)
	for axis := 0; axis < 3; axis++ {
		for _, sign := range []float64{-1, 1} {
			var p Placement
			p.Position[axis] = sign * edge
			m.Add(armCube, p)
		}
	}
	return m.AsShape()
}
