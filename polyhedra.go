package polyscene

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Every constructor here takes either one colour for all faces or one per
// face, and winds faces counter-clockwise seen from outside so normals point
// away from the origin. With no colours the faces are white.

func defaultColors(colors []color.RGBA) []color.RGBA {
	if len(colors) == 0 {
		return []color.RGBA{White}
	}
	return colors
}

// Tetrahedron has its four corners at distance size from the origin.
func Tetrahedron(size float64, colors ...color.RGBA) *Shape {
	s := size / math.Sqrt(3)
	vertices := []mgl64.Vec3{
		{s, s, s},
		{s, -s, -s},
		{-s, s, -s},
		{-s, -s, s},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return MustShape(vertices, faces, defaultColors(colors)...)
}

// DualTetrahedron is two interpenetrating tetrahedra, the second turned a
// quarter turn about Z so its corners sit opposite the first one's.
func DualTetrahedron(size float64, c1, c2 color.RGBA) *Shape {
	m := NewMultiShape()
	m.Add(Tetrahedron(size, c1), Placement{})
	m.Add(Tetrahedron(size, c2), Placement{
		Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	})
	return m.AsShape()
}

// Cube has edges of length edge. Corner i has +x when bit 0 is set, +y for
// bit 1 and +z for bit 2.
func Cube(edge float64, colors ...color.RGBA) *Shape {
	h := edge / 2
	vertices := make([]mgl64.Vec3, 8)
	for i := range vertices {
		v := mgl64.Vec3{-h, -h, -h}
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				v[axis] = h
			}
		}
		vertices[i] = v
	}
	faces := [][]int{
		{1, 3, 7, 5}, // +x
		{0, 4, 6, 2}, // -x
		{2, 6, 7, 3}, // +y
		{0, 1, 5, 4}, // -y
		{4, 5, 7, 6}, // +z
		{0, 2, 3, 1}, // -z
	}
	return MustShape(vertices, faces, defaultColors(colors)...)
}

func Octahedron(radius float64, colors ...color.RGBA) *Shape {
	vertices := []mgl64.Vec3{
		{+radius, 0, 0}, // 0
		{0, +radius, 0}, // 1
		{0, 0, +radius}, // 2
		{0, -radius, 0}, // 3
		{0, 0, -radius}, // 4
		{-radius, 0, 0}, // 5
	}
	faces := [][]int{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
		{5, 2, 1}, {5, 3, 2}, {5, 4, 3}, {5, 1, 4},
	}
	return MustShape(vertices, faces, defaultColors(colors)...)
}

// Icosahedron has edges of length size.
func Icosahedron(size float64, colors ...color.RGBA) *Shape {
	phi := (math.Sqrt(5) + 1) / 2
	p, h := size*phi/2, size/2
	vertices := []mgl64.Vec3{
		{p, h, 0},   // 0
		{p, -h, 0},  // 1
		{-p, -h, 0}, // 2
		{-p, h, 0},  // 3
		{-h, 0, p},  // 4
		{h, 0, p},   // 5
		{h, 0, -p},  // 6
		{-h, 0, -p}, // 7
		{0, p, h},   // 8
		{0, p, -h},  // 9
		{0, -p, -h}, // 10
		{0, -p, h},  // 11
	}
	// 20 equilateral triangles
	faces := [][]int{
		{5, 4, 11}, {5, 11, 1}, {5, 1, 0}, {0, 8, 5}, {5, 8, 4},
		{6, 7, 9}, {9, 7, 3}, {3, 7, 2}, {2, 7, 10}, {10, 7, 6},
		{9, 3, 8}, {9, 8, 0}, {9, 0, 6}, {6, 0, 1}, {6, 1, 10},
		{10, 1, 11}, {10, 11, 2}, {2, 11, 4}, {2, 4, 3}, {3, 4, 8},
	}
	return MustShape(vertices, faces, defaultColors(colors)...)
}

// Dodecahedron has its corners at distance radius from the origin. It is
// built as the dual of an icosahedron.
func Dodecahedron(radius float64, colors ...color.RGBA) *Shape {
	d, err := Dual(Icosahedron(1), defaultColors(colors)...)
	if err != nil {
		panic("polyscene: dodecahedron: " + err.Error())
	}
	Normalize(d)
	d.Scale(radius)
	return d
}

// Dual swaps the roles of faces and vertices: each face of s becomes a vertex
// at its centroid, and each vertex of s becomes a face joining the centroids
// of the faces around it. s must be convex and contain the origin.
func Dual(s *Shape, colors ...color.RGBA) (*Shape, error) {
	vertices := make([]mgl64.Vec3, len(s.Faces))
	around := make([][]int, len(s.Vertices))
	for fi, f := range s.Faces {
		vertices[fi] = f.Centroid(s.Vertices)
		for _, index := range f.Indices {
			around[index] = append(around[index], fi)
		}
	}

	faces := make([][]int, 0, len(s.Vertices))
	for vi, ring := range around {
		if len(ring) < 3 {
			continue
		}
		axis := s.Vertices[vi].Normalize()
		u := vertices[ring[0]].Sub(axis.Mul(vertices[ring[0]].Dot(axis))).Normalize()
		w := axis.Cross(u)
		angle := func(fi int) float64 {
			c := vertices[fi]
			return math.Atan2(c.Dot(w), c.Dot(u))
		}
		sort.Slice(ring, func(i, j int) bool {
			return angle(ring[i]) < angle(ring[j])
		})
		faces = append(faces, ring)
	}
	return NewShape(vertices, faces, colors...)
}
