// Package render turns the items of a polyscene.World into flat shaded,
// depth sorted screen polygons. It does no drawing itself; a backend fills
// the polygons it returns.
package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/polyscene"
)

// Polygon is a convex screen space polygon, X right and Y down in pixels.
type Polygon struct {
	X, Y  []float32
	Color color.RGBA
	Depth float64 // distance in front of the camera, larger is further away
}

type Renderer struct {
	Camera *Camera

	// DrawAllFaces turns off backface culling.
	DrawAllFaces bool
	// Flat skips lighting and uses each face's own colour.
	Flat bool

	polygons []Polygon
}

func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{Camera: camera}
}

// Frame returns the visible polygons of every drawable item, furthest first.
// Glyphs are built on demand. The returned slice is reused by the next call.
func (r *Renderer) Frame(world *polyscene.World, width, height int) []Polygon {
	r.polygons = r.polygons[:0]
	if width <= 0 || height <= 0 {
		return r.polygons
	}

	view := r.Camera.View()
	projection := r.Camera.Projection(float64(width) / float64(height))

	for _, item := range world.Items() {
		g := item.Glyph()
		if g == nil {
			continue
		}
		r.addGlyph(g, view.Mul4(item.ModelMatrix()), projection, float64(width), float64(height))
	}

	sort.SliceStable(r.polygons, func(i, j int) bool {
		return r.polygons[i].Depth > r.polygons[j].Depth
	})
	return r.polygons
}

func (r *Renderer) addGlyph(g *polyscene.Glyph, modelView, projection mgl64.Mat4, width, height float64) {
	normalMatrix := modelView.Mat3()
	points := make([]mgl64.Vec3, 3)

	for t := 0; t+2 < len(g.Indices); t += 3 {
		first := g.Indices[t]
		for k := 0; k < 3; k++ {
			points[k] = mgl64.TransformCoordinate(vec3To64(g.Positions[g.Indices[t+k]]), modelView)
		}

		normal := normalMatrix.Mul3x1(vec3To64(g.Normals[first]))
		if l := normal.Len(); l > 0 {
			normal = normal.Mul(1 / l)
		}
		if !r.DrawAllFaces && normal.Dot(points[0]) >= 0 {
			continue
		}

		clipped := clipAgainstNearPlane(points, r.Camera.Near)
		if len(clipped) < 3 {
			continue
		}

		centroid := mgl64.Vec3{}
		for _, p := range clipped {
			centroid = centroid.Add(p)
		}
		centroid = centroid.Mul(1 / float64(len(clipped)))

		col := g.Colors[first]
		if !r.Flat {
			col = shade(col, centroid, normal)
		}

		poly := Polygon{
			X:     make([]float32, len(clipped)),
			Y:     make([]float32, len(clipped)),
			Color: col,
			Depth: -centroid[2],
		}
		for i, p := range clipped {
			x, y := toScreen(p, projection, width, height)
			poly.X[i] = x
			poly.Y[i] = y
		}
		r.polygons = append(r.polygons, poly)
	}
}

// toScreen projects a camera space point in front of the camera to pixels.
func toScreen(p mgl64.Vec3, projection mgl64.Mat4, width, height float64) (float32, float32) {
	clip := projection.Mul4x1(p.Vec4(1))
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return float32((ndcX + 1) / 2 * width), float32((1 - ndcY) / 2 * height)
}

func vec3To64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
