package polyscene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyhedra(t *testing.T) {
	testCases := []struct {
		name       string
		shape      *Shape
		vertices   int
		faces      int
		edges      int
		corners    int     // per face
		radius     float64 // distance of every vertex from the origin, 0 to skip
		edgeLength float64 // 0 to skip
	}{
		{"Tetrahedron", Tetrahedron(2, Red), 4, 4, 6, 3, 2, 0},
		{"Cube", Cube(2, Red), 8, 6, 12, 4, math.Sqrt(3), 2},
		{"Octahedron", Octahedron(1.5, Red), 6, 8, 12, 3, 1.5, 1.5 * math.Sqrt2},
		{"Icosahedron", Icosahedron(0.4, Red), 12, 20, 30, 3, 0, 0.4},
		{"Dodecahedron", Dodecahedron(0.65, Red), 20, 12, 30, 5, 0.65, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.shape
			require.Len(t, s.Vertices, tc.vertices)
			require.Len(t, s.Faces, tc.faces)
			assert.Equal(t, tc.edges, s.EdgeCount())
			// Euler
			assert.Equal(t, 2, len(s.Vertices)-s.EdgeCount()+len(s.Faces))
			assert.NoError(t, s.Validate())
			assertOutward(t, s)

			for _, f := range s.Faces {
				assert.Equal(t, tc.corners, f.Len())
				assert.Equal(t, Red, f.Color)
				if tc.edgeLength == 0 {
					continue
				}
				for i, start := range f.Indices {
					end := f.Indices[(i+1)%f.Len()]
					assert.InDelta(t, tc.edgeLength, s.Vertices[start].Sub(s.Vertices[end]).Len(), float64EqualityThreshold)
				}
			}
			if tc.radius != 0 {
				for _, v := range s.Vertices {
					assert.InDelta(t, tc.radius, v.Len(), float64EqualityThreshold)
				}
			}
		})
	}
}

func TestPolyhedraColors(t *testing.T) {
	t.Run("default white", func(t *testing.T) {
		for _, f := range Cube(1).Faces {
			assert.Equal(t, White, f.Color)
		}
	})

	t.Run("one per face", func(t *testing.T) {
		s := Tetrahedron(1, Red, Green, Blue, Yellow)
		assert.Equal(t, Red, s.Faces[0].Color)
		assert.Equal(t, Yellow, s.Faces[3].Color)
	})

	t.Run("wrong count panics", func(t *testing.T) {
		assert.Panics(t, func() { Cube(1, Red, Blue) })
	})
}

func TestDual(t *testing.T) {
	t.Run("cube to octahedron", func(t *testing.T) {
		d, err := Dual(Cube(2, Red), Blue)
		require.NoError(t, err)
		assert.Len(t, d.Vertices, 6)
		assert.Len(t, d.Faces, 8)
		assertOutward(t, d)
	})

	t.Run("tetrahedron is self dual", func(t *testing.T) {
		d, err := Dual(Tetrahedron(1, Red), Red)
		require.NoError(t, err)
		assert.Len(t, d.Vertices, 4)
		assert.Len(t, d.Faces, 4)
		assertOutward(t, d)
	})

	t.Run("dodecahedron faces are regular", func(t *testing.T) {
		d := Dodecahedron(1, Red)
		for _, f := range d.Faces {
			c := f.Centroid(d.Vertices)
			for _, index := range f.Indices {
				assert.InDelta(t, f.meanRadius(d.Vertices, c), d.Vertices[index].Sub(c).Len(), 1e-9)
			}
		}
	})

	t.Run("bad colour count", func(t *testing.T) {
		_, err := Dual(Cube(1), Red, Blue)
		assert.ErrorIs(t, err, ErrColorCount)
	})
}
