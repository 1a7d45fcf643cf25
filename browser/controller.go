// Package browser holds the behaviour behind the interactive shape browser:
// what each key does to the world, kept apart from the window and input code
// so it can be driven from tests.
package browser

import (
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/polyscene"
	"github.com/smasonuk/polyscene/render"
)

var yAxis = mgl64.Vec3{0, 1, 0}

// Controller applies browser actions to a world. Edits act on the selected
// item, restricted to the faces whose source tag ends with FacesSuffix.
type Controller struct {
	World    *polyscene.World
	Orbit    *render.Orbit
	Renderer *render.Renderer

	FacesSuffix string

	rand   *rand.Rand
	logger *slog.Logger
}

func NewController(world *polyscene.World, orbit *render.Orbit, renderer *render.Renderer, seed int64, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		World:    world,
		Orbit:    orbit,
		Renderer: renderer,
		rand:     rand.New(rand.NewSource(seed)),
		logger:   logger,
	}
}

func (c *Controller) randomColor() color.RGBA {
	return polyscene.RandomColorFrom(c.rand.Float64)
}

// AddShape puts shape into the world as a new item, which becomes the
// selection. The face filter is reset so the next edit hits every face.
func (c *Controller) AddShape(shape *polyscene.Shape, update polyscene.UpdateFunc) *polyscene.Item {
	item := polyscene.NewItem(shape)
	item.Update = update
	c.World.Add(item)
	c.FacesSuffix = ""
	c.logger.Info("added shape", "id", item.ID(), "vertices", len(shape.Vertices), "faces", len(shape.Faces))
	return item
}

func (c *Controller) AddTetrahedron() *polyscene.Item {
	return c.AddShape(polyscene.Tetrahedron(1, c.randomColor()), nil)
}

func (c *Controller) AddCube() *polyscene.Item {
	return c.AddShape(polyscene.Cube(0.75, c.randomColor()), nil)
}

func (c *Controller) AddOctahedron() *polyscene.Item {
	return c.AddShape(polyscene.Octahedron(0.75, c.randomColor()), nil)
}

func (c *Controller) AddDodecahedron() *polyscene.Item {
	return c.AddShape(polyscene.Dodecahedron(0.65, c.randomColor()), nil)
}

func (c *Controller) AddIcosahedron() *polyscene.Item {
	return c.AddShape(polyscene.Icosahedron(0.4, c.randomColor()), nil)
}

func (c *Controller) AddDualTetrahedron() *polyscene.Item {
	first := c.randomColor()
	return c.AddShape(polyscene.DualTetrahedron(0.9, first, polyscene.Inverted(first)), nil)
}

// AddTriangleSquare adds a double sided triangle standing on a double sided
// square, handy for checking culling and winding.
func (c *Controller) AddTriangleSquare() *polyscene.Item {
	vertices := []mgl64.Vec3{
		{0, 2, 1},   // p0
		{-1, 0, 1},  // p1
		{1, 0, 1},   // p2
		{1, 0, -1},  // p3
		{-1, 0, -1}, // p4
	}
	faces := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 2, 3, 4},
		{4, 3, 2, 1},
	}
	colors := []color.RGBA{polyscene.Red, polyscene.Red, polyscene.Yellow, polyscene.Yellow}
	return c.AddShape(polyscene.MustShape(vertices, faces, colors...), nil)
}

func (c *Controller) AddCubeCross() *polyscene.Item {
	return c.AddShape(polyscene.CubeCross(0.67, polyscene.Red, polyscene.Tinted(polyscene.Red, polyscene.Orange, 0.5)), nil)
}

func (c *Controller) AddRing() *polyscene.Item {
	return c.AddShape(polyscene.Ring(polyscene.Cube(0.5, polyscene.Green), 2, 20), polyscene.Spinner(yAxis, 1))
}

func (c *Controller) AddTriRings() *polyscene.Item {
	return c.AddShape(polyscene.TriRings(polyscene.Cube(1.02, polyscene.DarkTeal), 8, 40), polyscene.WobblySpinner(-0.2))
}

func (c *Controller) AddOctahedronTriRings() *polyscene.Item {
	return c.AddShape(polyscene.TriRings(polyscene.Octahedron(5, polyscene.Teal), 12, 8), polyscene.WobblySpinner(-1))
}

// AddCoaxialRings adds a ring of cube crosses at a random height, spinning
// about Y at a random speed. Rings further from the middle fade to grey.
func (c *Controller) AddCoaxialRings() *polyscene.Item {
	height := c.rand.Intn(22) - 10
	radius := 3 + c.rand.Intn(8)
	fade := float64(height) / 10
	if fade < 0 {
		fade = -fade
	}
	centre := polyscene.Tinted(polyscene.Blue, polyscene.Grey, fade)
	arm := polyscene.Tinted(polyscene.Blue, polyscene.White, fade)

	shape := polyscene.Ring(polyscene.CubeCross(4, centre, arm), float64(radius*6), radius*5)
	item := c.AddShape(shape, polyscene.Spinner(yAxis, 2*c.rand.Float64()-1))
	item.Position = mgl64.Vec3{0, float64(height * 6), 0}
	return item
}

// Remove deletes the selected item.
func (c *Controller) Remove() bool {
	item, ok := c.World.Selected()
	if !ok {
		return false
	}
	c.logger.Info("removed shape", "id", item.ID())
	return c.World.Remove(item.ID())
}

// SetFacesSuffix narrows later edits to faces whose source ends with suffix.
func (c *Controller) SetFacesSuffix(suffix string) {
	c.FacesSuffix = suffix
	c.logger.Debug("face filter", "suffix", suffix)
}

// modShape applies op to the chosen faces of the selected item.
func (c *Controller) modShape(name string, op func(s *polyscene.Shape, faces []int)) bool {
	done := c.World.Edit(func(s *polyscene.Shape) {
		faces := s.FacesWithSource(c.FacesSuffix)
		op(s, faces)
		c.logger.Debug(name, "faces", len(faces), "shape", s)
	})
	if !done {
		c.logger.Debug(name+" skipped, nothing selected")
	}
	return done
}

func (c *Controller) Normalize() bool {
	return c.World.Edit(polyscene.Normalize)
}

// Subdivide splits the chosen faces. Faces that are not triangles are left
// alone.
func (c *Controller) Subdivide() bool {
	subdivided := false
	done := c.modShape("subdivide", func(s *polyscene.Shape, faces []int) {
		triangles := faces[:0]
		for _, fi := range faces {
			if s.Faces[fi].Len() == 3 {
				triangles = append(triangles, fi)
			}
		}
		if len(triangles) < len(faces) {
			c.logger.Warn("subdivide skipped non-triangular faces", "skipped", len(faces)-len(triangles))
		}
		polyscene.Subdivide(s, triangles)
		subdivided = len(triangles) > 0
	})
	if subdivided {
		c.SetFacesSuffix(polyscene.SourceSubdivideCenter)
	}
	return done
}

func (c *Controller) Stellate(height float64) bool {
	done := c.modShape("stellate", func(s *polyscene.Shape, faces []int) {
		polyscene.Stellate(s, faces, height)
	})
	if done {
		c.SetFacesSuffix(polyscene.SourceStellate)
	}
	return done
}

func (c *Controller) Extrude(length float64) bool {
	done := c.modShape("extrude", func(s *polyscene.Shape, faces []int) {
		polyscene.Extrude(s, faces, length)
	})
	if done {
		c.SetFacesSuffix(polyscene.SourceExtrudeEnd)
	}
	return done
}

func (c *Controller) Recolor() bool {
	col := c.randomColor()
	return c.modShape("recolor", func(s *polyscene.Shape, faces []int) {
		polyscene.Recolor(s, faces, col)
	})
}

// Roughen shakes up the selected item's surface with noise.
func (c *Controller) Roughen(amount float64) bool {
	seed := c.rand.Int63()
	return c.World.Edit(func(s *polyscene.Shape) {
		polyscene.Roughen(s, amount, seed)
	})
}

// ToggleSpin starts the selected item tumbling, or stops whatever update it
// already has.
func (c *Controller) ToggleSpin() bool {
	item, ok := c.World.Selected()
	if !ok {
		return false
	}
	if item.Update != nil {
		item.Update = nil
	} else {
		item.Update = polyscene.WobblySpinner(1)
	}
	return true
}

// MoveTo sends the selected item gliding to target.
func (c *Controller) MoveTo(target mgl64.Vec3) bool {
	item, ok := c.World.Selected()
	if !ok {
		return false
	}
	item.Update = polyscene.Mover(target, 1)
	return true
}

// MoveRandom sends the selected item to a random point five units out.
func (c *Controller) MoveRandom() bool {
	return c.MoveTo(polyscene.RandomShell(5, c.rand.Float64))
}

func (c *Controller) ToggleBackfaceCulling() {
	c.Renderer.DrawAllFaces = !c.Renderer.DrawAllFaces
	c.logger.Info("backface culling", "enabled", !c.Renderer.DrawAllFaces)
}

func (c *Controller) ToggleLighting() {
	c.Renderer.Flat = !c.Renderer.Flat
}

// CameraOrbit scales the camera's distance from the centre.
func (c *Controller) CameraOrbit(factor float64) {
	c.Orbit.Zoom(factor)
}

// Update advances every item and the camera.
func (c *Controller) Update(t, dt float64) {
	c.World.UpdateAll(t, dt)
	c.Orbit.Update(c.Renderer.Camera, t, dt)
}
