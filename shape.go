package polyscene

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrFaceTooSmall    = errors.New("face has fewer than 3 indices")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrColorCount      = errors.New("color count does not match face count")
	ErrBadPoint        = errors.New("point needs 3 coordinates")
)

// Shape is a polyhedron: a list of vertices and a list of flat faces that
// index into them. Each face carries its own colour.
//
// Editing operations swap Vertices and Faces wholesale. Nothing patches a
// single vertex in place, so face normals stay in step with their corners.
type Shape struct {
	Vertices []mgl64.Vec3
	Faces    []*Face
}

// NewShape builds a shape from raw vertex and face data. colors holds either
// a single colour used for every face or exactly one colour per face.
func NewShape(vertices []mgl64.Vec3, faces [][]int, colors ...color.RGBA) (*Shape, error) {
	if err := validateFaces(len(vertices), faces); err != nil {
		return nil, err
	}
	if len(colors) != 1 && len(colors) != len(faces) {
		return nil, fmt.Errorf("%d colors for %d faces: %w", len(colors), len(faces), ErrColorCount)
	}

	s := &Shape{
		Vertices: append([]mgl64.Vec3(nil), vertices...),
		Faces:    make([]*Face, len(faces)),
	}
	for i, indices := range faces {
		col := colors[0]
		if len(colors) > 1 {
			col = colors[i]
		}
		s.Faces[i] = NewFace(indices, col, s.Vertices)
	}
	return s, nil
}

// MustShape is NewShape for constructors whose data is known to be valid.
func MustShape(vertices []mgl64.Vec3, faces [][]int, colors ...color.RGBA) *Shape {
	s, err := NewShape(vertices, faces, colors...)
	if err != nil {
		panic(fmt.Sprintf("polyscene: invalid shape: %v", err))
	}
	return s
}

// NewShapeFromPoints accepts vertices as numeric triples.
func NewShapeFromPoints(points [][]float64, faces [][]int, colors ...color.RGBA) (*Shape, error) {
	vertices, err := PointsToVertices(points)
	if err != nil {
		return nil, err
	}
	return NewShape(vertices, faces, colors...)
}

// PointsToVertices converts numeric triples to vectors. Coordinates past the
// third are ignored.
func PointsToVertices(points [][]float64) ([]mgl64.Vec3, error) {
	vertices := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		if len(p) < 3 {
			return nil, fmt.Errorf("point %d has %d coordinates: %w", i, len(p), ErrBadPoint)
		}
		vertices[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	return vertices, nil
}

func validateFaces(numVertices int, faces [][]int) error {
	for fi, face := range faces {
		if len(face) < 3 {
			return fmt.Errorf("face %d %v: %w", fi, face, ErrFaceTooSmall)
		}
		for _, index := range face {
			if index < 0 || index >= numVertices {
				return fmt.Errorf("face %d index %d with %d vertices: %w", fi, index, numVertices, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// Validate checks that every face has at least 3 corners and that every
// index is in range.
func (s *Shape) Validate() error {
	faces := make([][]int, len(s.Faces))
	for i, f := range s.Faces {
		faces[i] = f.Indices
	}
	return validateFaces(len(s.Vertices), faces)
}

// IsEmpty reports whether s is nil or has no faces.
func (s *Shape) IsEmpty() bool {
	return s == nil || len(s.Faces) == 0
}

// Copy returns a deep copy.
func (s *Shape) Copy() *Shape {
	c := &Shape{
		Vertices: append([]mgl64.Vec3(nil), s.Vertices...),
		Faces:    make([]*Face, len(s.Faces)),
	}
	for i, f := range s.Faces {
		c.Faces[i] = f.Copy()
	}
	return c
}

func (s *Shape) String() string {
	return fmt.Sprintf("<Shape %d verts, %d faces>", len(s.Vertices), len(s.Faces))
}

// replace swaps in new geometry and recomputes every normal.
func (s *Shape) replace(vertices []mgl64.Vec3, faces []*Face) {
	s.Vertices = vertices
	s.Faces = faces
	s.UpdateNormals()
}

func (s *Shape) UpdateNormals() {
	for _, f := range s.Faces {
		f.UpdateNormal(s.Vertices)
	}
}

// FacesWithSource returns the indices of faces whose Source ends with
// suffix. An empty suffix selects every face.
func (s *Shape) FacesWithSource(suffix string) []int {
	indices := make([]int, 0, len(s.Faces))
	for i, f := range s.Faces {
		if strings.HasSuffix(f.Source, suffix) {
			indices = append(indices, i)
		}
	}
	return indices
}

type edgeKey [2]int

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// EdgeCount returns the number of distinct undirected edges.
func (s *Shape) EdgeCount() int {
	edges := make(map[edgeKey]struct{})
	for _, f := range s.Faces {
		for i, start := range f.Indices {
			end := f.Indices[(i+1)%len(f.Indices)]
			edges[newEdgeKey(start, end)] = struct{}{}
		}
	}
	return len(edges)
}

// Bounds returns the axis aligned bounding box of the vertices.
func (s *Shape) Bounds() (lo, hi mgl64.Vec3) {
	if len(s.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = s.Vertices[0], s.Vertices[0]
	for _, v := range s.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < lo[axis] {
				lo[axis] = v[axis]
			} else if v[axis] > hi[axis] {
				hi[axis] = v[axis]
			}
		}
	}
	return lo, hi
}

// Size is the extent of the bounding box along each axis.
func (s *Shape) Size() mgl64.Vec3 {
	lo, hi := s.Bounds()
	return hi.Sub(lo)
}

// Centre moves all vertices so the centre of the bounding box is at the
// origin. Normals are unaffected by a translation.
func (s *Shape) Centre() {
	if len(s.Vertices) == 0 {
		return
	}
	lo, hi := s.Bounds()
	centre := lo.Add(hi).Mul(0.5)
	vertices := make([]mgl64.Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		vertices[i] = v.Sub(centre)
	}
	s.Vertices = vertices
}

// Scale multiplies every vertex by factor.
func (s *Shape) Scale(factor float64) {
	vertices := make([]mgl64.Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		vertices[i] = v.Mul(factor)
	}
	s.replace(vertices, s.Faces)
}

func addVertex(vertices []mgl64.Vec3, v mgl64.Vec3) ([]mgl64.Vec3, int) {
	vertices = append(vertices, v)
	return vertices, len(vertices) - 1
}
