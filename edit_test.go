package polyscene

import (
	"math"
	"testing"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStellate(t *testing.T) {
	t.Run("every face", func(t *testing.T) {
		s := Cube(2, Red)
		Stellate(s, nil, 1)

		assert.Len(t, s.Faces, 6*4)
		assert.Len(t, s.Vertices, 8+6)
		assert.Len(t, s.FacesWithSource(SourceStellate), 24)
		assert.NoError(t, s.Validate())
		assertOutward(t, s)

		// +x face: centroid (1,0,0), mean radius sqrt(2)
		almostEqualVec(t, mgl64.Vec3{1 + math.Sqrt2, 0, 0}, s.Vertices[8])
	})

	t.Run("inwards", func(t *testing.T) {
		s := Cube(2, Red)
		Stellate(s, []int{0}, -0.5)
		almostEqualVec(t, mgl64.Vec3{1 - 0.5*math.Sqrt2, 0, 0}, s.Vertices[8])
	})

	t.Run("some faces", func(t *testing.T) {
		s := Tetrahedron(1, Red)
		Stellate(s, []int{1, 3}, 1)

		assert.Len(t, s.Faces, 2+2*3)
		assert.Len(t, s.Vertices, 4+2)
		assert.Len(t, s.FacesWithSource(SourceStellate), 6)
		assert.NoError(t, s.Validate())
	})

	t.Run("nothing selected", func(t *testing.T) {
		s := Tetrahedron(1, Red)
		Stellate(s, []int{}, 1)
		assert.Len(t, s.Faces, 4)
		assert.Len(t, s.Vertices, 4)
	})
}

func TestExtrude(t *testing.T) {
	t.Run("one face", func(t *testing.T) {
		s := Cube(2, Red)
		Extrude(s, []int{0}, 1)

		assert.Len(t, s.Faces, 5+4+1)
		assert.Len(t, s.Vertices, 8+4)
		assert.NoError(t, s.Validate())
		assertOutward(t, s)

		sides := s.FacesWithSource(SourceExtrudeSide)
		ends := s.FacesWithSource(SourceExtrudeEnd)
		require.Len(t, sides, 4)
		require.Len(t, ends, 1)

		end := s.Faces[ends[0]]
		almostEqualVec(t, mgl64.Vec3{1, 0, 0}, end.Normal)
		for _, index := range end.Indices {
			assert.InDelta(t, 1+math.Sqrt2, s.Vertices[index][0], float64EqualityThreshold)
		}
		for _, i := range sides {
			assert.InDelta(t, 0, s.Faces[i].Normal[0], float64EqualityThreshold)
		}
	})

	t.Run("every triangle", func(t *testing.T) {
		s := Octahedron(1, Red)
		Extrude(s, nil, 0.5)

		// each triangle becomes three sides and an end
		assert.Len(t, s.Faces, 8*4)
		assert.Len(t, s.Vertices, 6+8*3)
		assert.NoError(t, s.Validate())
	})
}

func TestNormalize(t *testing.T) {
	s := MustShape([]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 3, 0}}, [][]int{{0, 1, 2}}, Red)
	Normalize(s)

	almostEqualVec(t, mgl64.Vec3{0, 0, 0}, s.Vertices[0])
	almostEqualVec(t, mgl64.Vec3{1, 0, 0}, s.Vertices[1])
	almostEqualVec(t, mgl64.Vec3{0, 1, 0}, s.Vertices[2])
	almostEqualVec(t, mgl64.Vec3{0, 0, 1}, s.Faces[0].Normal)

	cube := Cube(3, Red)
	Normalize(cube)
	for _, v := range cube.Vertices {
		assert.InDelta(t, 1, v.Len(), float64EqualityThreshold)
	}
	assertOutward(t, cube)
}

func TestRecolor(t *testing.T) {
	s := Cube(1, Red)
	Recolor(s, []int{1, 4}, Blue)
	for i, f := range s.Faces {
		if i == 1 || i == 4 {
			assert.Equal(t, Blue, f.Color)
		} else {
			assert.Equal(t, Red, f.Color)
		}
	}

	Recolor(s, nil, Green)
	for _, f := range s.Faces {
		assert.Equal(t, Green, f.Color)
	}

	assert.Panics(t, func() { Recolor(s, []int{99}, Red) })
}

func TestRoughen(t *testing.T) {
	a := Icosahedron(1, Red)
	b := Icosahedron(1, Red)
	Roughen(a, 0.2, 7)
	Roughen(b, 0.2, 7)
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Len(t, a.Faces, 20)
	assert.NoError(t, a.Validate())

	for i, v := range a.Vertices {
		original := Icosahedron(1, Red).Vertices[i]
		// only the distance from the origin changes
		assert.InDelta(t, 1, v.Normalize().Dot(original.Normalize()), float64EqualityThreshold)
	}

	// the offset is proportional to the distance from the origin
	small := Icosahedron(1, Red)
	large := Icosahedron(1, Red)
	large.Scale(3)
	Roughen(small, 0.2, 7)
	Roughen(large, 0.2, 7)
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, 7)
	for i, v := range Icosahedron(1, Red).Vertices {
		p := v.Mul(noiseFrequency)
		expected := v.Mul(1 + 0.2*noise.Noise3D(p[0], p[1], p[2]))
		almostEqualVec(t, expected, small.Vertices[i])

		scaled := v.Mul(3)
		q := scaled.Mul(noiseFrequency)
		almostEqualVec(t, scaled.Mul(1+0.2*noise.Noise3D(q[0], q[1], q[2])), large.Vertices[i])
	}

	still := Icosahedron(1, Red)
	Roughen(still, 0, 7)
	for i, v := range still.Vertices {
		almostEqualVec(t, Icosahedron(1, Red).Vertices[i], v)
	}
}
