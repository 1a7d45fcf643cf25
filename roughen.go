package polyscene

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseFrequency = 1.7
)

// Roughen scales every vertex about the origin by 1 + amount*noise, where
// noise is Perlin noise sampled at the vertex. The same seed always gives the
// same surface. Shared vertices move once, so faces stay joined.
func Roughen(s *Shape, amount float64, seed int64) {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	vertices := make([]mgl64.Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		p := v.Mul(noiseFrequency)
		n := noise.Noise3D(p[0], p[1], p[2])
		vertices[i] = v.Mul(1 + amount*n)
	}

	faces := make([]*Face, len(s.Faces))
	for i, f := range s.Faces {
		faces[i] = f.Copy()
	}
	s.replace(vertices, faces)
}
