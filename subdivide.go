package polyscene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// selection turns a face index list into a lookup. A nil list selects every
// face.
func selection(s *Shape, faces []int) []bool {
	selected := make([]bool, len(s.Faces))
	if faces == nil {
		for i := range selected {
			selected[i] = true
		}
		return selected
	}
	for _, i := range faces {
		if i < 0 || i >= len(s.Faces) {
			panic(fmt.Sprintf("polyscene: face %d out of range, shape has %d faces", i, len(s.Faces)))
		}
		selected[i] = true
	}
	return selected
}

// Subdivided returns a new shape in which every triangle of original has
// been split into four:
//
//	            a
//	           / \
//	      mCA /---\ mAB
//	         / \ / \
//	        c---+---b
//	           mBC
//
// The three corner triangles keep the face colour, the centre one takes its
// inverse. original must be made of triangles only.
func Subdivided(original *Shape) *Shape {
	s := original.Copy()
	Subdivide(s, nil)
	return s
}

// Subdivide splits the selected triangular faces of s in place. Faces that
// are not selected are kept as they are.
func Subdivide(s *Shape, faces []int) {
	selected := selection(s, faces)
	vertices := append([]mgl64.Vec3(nil), s.Vertices...)
	newFaces := make([]*Face, 0, len(s.Faces)+3*len(faces))

	// one entry per edge touched in this pass, value is the midpoint vertex
	edges := make(map[edgeKey]int)
	midpoint := func(start, end int) int {
		key := newEdgeKey(start, end)
		if index, found := edges[key]; found {
			return index
		}
		var index int
		vertices, index = addVertex(vertices, vertices[start].Add(vertices[end]).Mul(0.5))
		edges[key] = index
		return index
	}

	for fi, face := range s.Faces {
		if !selected[fi] {
			newFaces = append(newFaces, face.Copy())
			continue
		}
		if face.Len() != 3 {
			panic(fmt.Sprintf("polyscene: cannot subdivide face %d with %d corners", fi, face.Len()))
		}

		mid := [3]int{}
		for i := range mid {
			mid[i] = midpoint(face.Indices[i], face.Indices[(i+1)%3])
		}
		for i := range mid {
			prev := (i + 2) % 3
			newFaces = append(newFaces, &Face{
				Indices: []int{face.Indices[i], mid[i], mid[prev]},
				Color:   face.Color,
				Source:  SourceSubdivideCorner,
			})
		}
		newFaces = append(newFaces, &Face{
			Indices: []int{mid[0], mid[1], mid[2]},
			Color:   Inverted(face.Color),
			Source:  SourceSubdivideCenter,
		})
	}

	s.replace(vertices, newFaces)
}
