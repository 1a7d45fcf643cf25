package polyscene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Stellate raises a pyramid on each selected face. The apex sits above the
// face centroid at height times the face's mean radius; a negative height
// pushes it inwards. Each n-sided face becomes n triangles.
func Stellate(s *Shape, faces []int, height float64) {
	selected := selection(s, faces)
	vertices := append([]mgl64.Vec3(nil), s.Vertices...)
	newFaces := make([]*Face, 0, len(s.Faces)*3)

	for fi, face := range s.Faces {
		if !selected[fi] {
			newFaces = append(newFaces, face.Copy())
			continue
		}
		centroid := face.Centroid(vertices)
		offset := face.Normal.Mul(height * face.meanRadius(vertices, centroid))
		var apex int
		vertices, apex = addVertex(vertices, centroid.Add(offset))

		n := face.Len()
		for i := 0; i < n; i++ {
			newFaces = append(newFaces, &Face{
				Indices: []int{face.Indices[i], face.Indices[(i+1)%n], apex},
				Color:   face.Color,
				Source:  SourceStellate,
			})
		}
	}

	s.replace(vertices, newFaces)
}

// Extrude lifts each selected face along its normal by length times the
// face's mean radius. The lifted copy replaces the face and a quad joins each
// original edge to its lifted twin, so an n-sided face becomes n+1 faces.
func Extrude(s *Shape, faces []int, length float64) {
	selected := selection(s, faces)
	vertices := append([]mgl64.Vec3(nil), s.Vertices...)
	newFaces := make([]*Face, 0, len(s.Faces)*2)

	for fi, face := range s.Faces {
		if !selected[fi] {
			newFaces = append(newFaces, face.Copy())
			continue
		}
		centroid := face.Centroid(vertices)
		offset := face.Normal.Mul(length * face.meanRadius(vertices, centroid))

		n := face.Len()
		lifted := make([]int, n)
		for i, index := range face.Indices {
			vertices, lifted[i] = addVertex(vertices, vertices[index].Add(offset))
		}

		for i := 0; i < n; i++ {
			next := (i + 1) % n
			newFaces = append(newFaces, &Face{
				Indices: []int{face.Indices[i], face.Indices[next], lifted[next], lifted[i]},
				Color:   face.Color,
				Source:  SourceExtrudeSide,
			})
		}
		newFaces = append(newFaces, &Face{
			Indices: lifted,
			Color:   face.Color,
			Source:  SourceExtrudeEnd,
		})
	}

	s.replace(vertices, newFaces)
}

// Normalize moves every vertex onto the unit sphere around the origin.
// A vertex at the origin is left where it is.
func Normalize(s *Shape) {
	vertices := make([]mgl64.Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		if v.Len() == 0 {
			vertices[i] = v
			continue
		}
		vertices[i] = v.Normalize()
	}
	faces := make([]*Face, len(s.Faces))
	for i, f := range s.Faces {
		faces[i] = f.Copy()
	}
	s.replace(vertices, faces)
}

// Recolor paints the selected faces.
func Recolor(s *Shape, faces []int, col color.RGBA) {
	selected := selection(s, faces)
	for i, f := range s.Faces {
		if selected[i] {
			f.Color = col
		}
	}
}
