package polyscene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Placement positions and orients a shape in its parent's space.
type Placement struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// At is a placement with no rotation.
func At(x, y, z float64) Placement {
	return Placement{Position: mgl64.Vec3{x, y, z}, Orientation: mgl64.QuatIdent()}
}

// Matrix maps a local point to parent space. The zero Orientation counts as
// no rotation.
func (p Placement) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(p.Position[0], p.Position[1], p.Position[2])
	if p.Orientation == (mgl64.Quat{}) {
		return m
	}
	return m.Mul4(p.Orientation.Normalize().Mat4())
}

// MultiShape sticks many shapes together so they can be drawn with a single
// glyph instead of one per shape. Every Add copies the source geometry.
type MultiShape struct {
	Shape
}

func NewMultiShape() *MultiShape {
	return &MultiShape{}
}

// Add appends a transformed copy of child. Its face indices are shifted by the
// number of vertices already held.
func (m *MultiShape) Add(child *Shape, placement Placement) {
	matrix := placement.Matrix()
	childOffset := len(m.Vertices)

	for _, v := range child.Vertices {
		m.Vertices = append(m.Vertices, mgl64.TransformCoordinate(v, matrix))
	}
	for _, f := range child.Faces {
		indices := make([]int, len(f.Indices))
		for i, index := range f.Indices {
			indices[i] = index + childOffset
		}
		face := newTaggedFace(indices, f.Color, m.Vertices, f.Source)
		m.Faces = append(m.Faces, face)
	}
}

// AsShape returns the accumulated geometry.
func (m *MultiShape) AsShape() *Shape {
	return &m.Shape
}
