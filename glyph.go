package polyscene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Glyph is a shape flattened into the parallel buffers a GPU draws from.
// Shared vertices are duplicated per face so every face can carry its own
// colour and normal (flat shading). Indices describe a triangle list.
type Glyph struct {
	Positions []mgl32.Vec3
	Colors    []color.RGBA
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// NewGlyph builds the draw buffers for s. Faces are fan tessellated, which
// is only correct for convex faces.
func NewGlyph(s *Shape) *Glyph {
	numVerts := 0
	numIndices := 0
	for _, f := range s.Faces {
		numVerts += f.Len()
		numIndices += 3 * max(0, f.Len()-2)
	}

	g := &Glyph{
		Positions: make([]mgl32.Vec3, 0, numVerts),
		Colors:    make([]color.RGBA, 0, numVerts),
		Normals:   make([]mgl32.Vec3, 0, numVerts),
		Indices:   make([]uint32, 0, numIndices),
	}

	ring := make([]int, 0, 8)
	for _, f := range s.Faces {
		offset := len(g.Positions)
		normal := vec3To32(f.Normal)
		ring = ring[:0]
		for i, index := range f.Indices {
			g.Positions = append(g.Positions, vec3To32(s.Vertices[index]))
			g.Colors = append(g.Colors, f.Color)
			g.Normals = append(g.Normals, normal)
			ring = append(ring, offset+i)
		}
		for _, tri := range Tessellate(ring) {
			g.Indices = append(g.Indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
		}
	}
	return g
}

// Tessellate splits a convex ring of indices into triangles sharing its first
// index, keeping the ring's winding.
// e.g. [0 1 2 3 4] -> [0 1 2] [0 2 3] [0 3 4]
func Tessellate(indices []int) [][3]int {
	if len(indices) < 3 {
		return nil
	}
	triangles := make([][3]int, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		triangles = append(triangles, [3]int{indices[0], indices[i], indices[i+1]})
	}
	return triangles
}

// VertexCount is the number of emitted corners, one per face corner.
func (g *Glyph) VertexCount() int {
	return len(g.Positions)
}

// TriangleCount is the number of triangles the index buffer describes.
func (g *Glyph) TriangleCount() int {
	return len(g.Indices) / 3
}

// Validate checks the buffer invariants the renderer relies on.
func (g *Glyph) Validate() error {
	n := len(g.Positions)
	if len(g.Colors) != n || len(g.Normals) != n {
		return fmt.Errorf("glyph buffers differ in length: %d positions, %d colors, %d normals", n, len(g.Colors), len(g.Normals))
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("glyph has %d indices, not a multiple of 3", len(g.Indices))
	}
	for i, index := range g.Indices {
		if int(index) >= n {
			return fmt.Errorf("glyph index %d at %d out of range for %d vertices", index, i, n)
		}
	}
	return nil
}

func vec3To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
