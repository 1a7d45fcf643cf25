package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/polyscene"
	"github.com/smasonuk/polyscene/browser"
)

type keyMap map[ebiten.Key]func()

// keyBindings returns the plain, shift and ctrl key tables.
func (g *Game) keyBindings(c *browser.Controller) (keyMap, keyMap, keyMap) {
	add := func(fn func() *polyscene.Item) func() {
		return func() { fn() }
	}
	edit := func(fn func() bool) func() {
		return func() { fn() }
	}
	stellate := func(height float64) func() {
		return func() { c.Stellate(height) }
	}
	extrude := func(length float64) func() {
		return func() { c.Extrude(length) }
	}
	suffix := func(s string) func() {
		return func() { c.SetFacesSuffix(s) }
	}

	plain := keyMap{
		ebiten.Key1:         add(c.AddTetrahedron),
		ebiten.Key2:         add(c.AddCube),
		ebiten.Key3:         add(c.AddOctahedron),
		ebiten.Key4:         add(c.AddDodecahedron),
		ebiten.Key5:         add(c.AddIcosahedron),
		ebiten.Key6:         add(c.AddDualTetrahedron),
		ebiten.Key0:         add(c.AddTriangleSquare),
		ebiten.KeyQ:         add(c.AddCubeCross),
		ebiten.KeyE:         add(c.AddRing),
		ebiten.KeyT:         add(c.AddTriRings),
		ebiten.KeyY:         add(c.AddOctahedronTriRings),
		ebiten.KeyU:         add(c.AddCoaxialRings),
		ebiten.KeyBackspace: edit(c.Remove),
		ebiten.KeyF9:        func() { g.outlines = !g.outlines },
		ebiten.KeyF10:       c.ToggleLighting,
		ebiten.KeyF11:       c.ToggleBackfaceCulling,
		ebiten.KeyF12:       func() { g.showFPS = !g.showFPS },
		ebiten.KeyArrowUp:   func() { c.CameraOrbit(0.5) },
		ebiten.KeyArrowDown: func() { c.CameraOrbit(2.0) },
		ebiten.KeyPageUp:    func() { c.CameraOrbit(0.5) },
		ebiten.KeyPageDown:  func() { c.CameraOrbit(2.0) },
	}

	shift := keyMap{
		ebiten.KeyA: suffix(""),
		ebiten.KeyS: suffix(polyscene.SourceSubdivideCenter),
		ebiten.KeyD: suffix(polyscene.SourceSubdivideCorner),
		ebiten.KeyE: suffix(polyscene.SourceExtrudeEnd),
		ebiten.KeyR: suffix(polyscene.SourceExtrudeSide),
	}

	ctrl := keyMap{
		ebiten.KeyN: edit(c.Normalize),
		ebiten.KeyS: edit(c.Subdivide),
		ebiten.KeyU: stellate(-0.67),
		ebiten.KeyI: stellate(-0.33),
		ebiten.KeyO: stellate(0.5),
		ebiten.KeyP: stellate(1),
		ebiten.KeyQ: extrude(0.25),
		ebiten.KeyW: extrude(0.5),
		ebiten.KeyE: extrude(1),
		ebiten.KeyR: extrude(2),
		ebiten.KeyT: extrude(4),
		ebiten.KeyY: extrude(8),
		ebiten.KeyC: edit(c.Recolor),
		ebiten.KeyG: func() { c.Roughen(0.1) },
		ebiten.KeyX: edit(c.ToggleSpin),
		ebiten.KeyM: edit(c.MoveRandom),
		ebiten.KeyZ: func() { c.MoveTo(mgl64.Vec3{0, 20, 0}) },
	}
	return plain, shift, ctrl
}

// handleKeys runs the action for each key pressed this tick. Shift takes
// precedence over ctrl.
func (g *Game) handleKeys() {
	table := g.plainKeys
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		table = g.shiftKeys
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		table = g.ctrlKeys
	}
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, key := range g.pressed {
		if action, ok := table[key]; ok {
			action()
		}
	}
}
