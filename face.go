package polyscene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Tags written to Face.Source by the editing operations.
const (
	SourceSubdivideCorner = "subdivide-corner"
	SourceSubdivideCenter = "subdivide-center"
	SourceStellate        = "stellate"
	SourceExtrudeEnd      = "extrude-end"
	SourceExtrudeSide     = "extrude-side"
)

// Face is a flat convex polygon, stored as a ring of indices into the
// vertices of the Shape that owns it.
type Face struct {
	Indices []int
	Color   color.RGBA
	Normal  mgl64.Vec3
	// Source names the operation that produced this face, empty for faces
	// made by a constructor.
	Source string
}

// NewFace copies indices and computes the normal from vertices.
func NewFace(indices []int, col color.RGBA, vertices []mgl64.Vec3) *Face {
	f := &Face{
		Indices: append([]int(nil), indices...),
		Color:   col,
	}
	f.Normal = faceNormal(vertices, f.Indices)
	return f
}

func newTaggedFace(indices []int, col color.RGBA, vertices []mgl64.Vec3, source string) *Face {
	f := NewFace(indices, col, vertices)
	f.Source = source
	return f
}

// Len returns the number of corners.
func (f *Face) Len() int {
	return len(f.Indices)
}

// Copy returns a deep copy.
func (f *Face) Copy() *Face {
	return &Face{
		Indices: append([]int(nil), f.Indices...),
		Color:   f.Color,
		Normal:  f.Normal,
		Source:  f.Source,
	}
}

// UpdateNormal recomputes the normal against vertices.
func (f *Face) UpdateNormal(vertices []mgl64.Vec3) {
	f.Normal = faceNormal(vertices, f.Indices)
}

// Centroid is the mean of the face's corners.
func (f *Face) Centroid(vertices []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(f.Indices) == 0 {
		return sum
	}
	for _, i := range f.Indices {
		sum = sum.Add(vertices[i])
	}
	return sum.Mul(1 / float64(len(f.Indices)))
}

// meanRadius is the average distance from the centroid to each corner.
func (f *Face) meanRadius(vertices []mgl64.Vec3, centroid mgl64.Vec3) float64 {
	if len(f.Indices) == 0 {
		return 0
	}
	total := 0.0
	for _, i := range f.Indices {
		total += vertices[i].Sub(centroid).Len()
	}
	return total / float64(len(f.Indices))
}

// faceNormal flips sign when the winding is reversed. A degenerate face gets
// a zero normal.
func faceNormal(vertices []mgl64.Vec3, indices []int) mgl64.Vec3 {
	if len(indices) < 3 {
		return mgl64.Vec3{}
	}
	v0 := vertices[indices[0]]
	v1 := vertices[indices[1]]
	v2 := vertices[indices[2]]
	n := v2.Sub(v1).Cross(v0.Sub(v1))
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}
