package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/polyscene"
	"github.com/smasonuk/polyscene/browser"
	"github.com/smasonuk/polyscene/render"
)

var outlineColor = color.RGBA{R: 50, G: 50, B: 50, A: 25}

type Game struct {
	world      *polyscene.World
	renderer   *render.Renderer
	controller *browser.Controller
	batcher    *PolygonBatcher
	logger     *slog.Logger

	plainKeys, shiftKeys, ctrlKeys keyMap
	pressed                        []ebiten.Key

	time     float64
	showFPS  bool
	outlines bool
	dragging bool
	lastX    int
}

func NewGame(opts browser.Options, logger *slog.Logger) (*Game, error) {
	background, err := opts.BackgroundColor()
	if err != nil {
		return nil, err
	}

	world := polyscene.NewWorld()
	world.SetLogger(logger)
	world.Background = background

	camera := render.NewCameraLookAt(mgl64.Vec3{0, 0, opts.CameraRadius}, mgl64.Vec3{})
	orbit := render.NewOrbit(mgl64.Vec3{}, opts.CameraRadius, mgl64.Vec3{2, -3, 1}, 0.8)
	renderer := render.NewRenderer(camera)

	g := &Game{
		world:      world,
		renderer:   renderer,
		controller: browser.NewController(world, orbit, renderer, opts.Seed, logger),
		batcher:    NewPolygonBatcher(),
		logger:     logger,
		showFPS:    opts.ShowFPS,
	}
	g.plainKeys, g.shiftKeys, g.ctrlKeys = g.keyBindings(g.controller)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Debug("escape pressed", "items", g.world.Len())
		return ebiten.Termination
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, _ = ebiten.CursorPosition()
	}
	if g.dragging {
		x, _ := ebiten.CursorPosition()
		g.controller.Orbit.Turn(float64(x-g.lastX) / 200.0)
		g.lastX = x
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.time += dt
	g.controller.Update(g.time, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.world.Background)

	bounds := screen.Bounds()
	polygons := g.renderer.Frame(g.world, bounds.Dx(), bounds.Dy())

	g.batcher.Begin(screen)
	for _, p := range polygons {
		if g.outlines {
			g.batcher.AddPolygonAndOutline(p.X, p.Y, p.Color, outlineColor, 1.0)
		} else {
			g.batcher.AddPolygon(p.X, p.Y, p.Color)
		}
	}
	g.batcher.Flush()

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  items: %d  polygons: %d",
			ebiten.ActualFPS(), g.world.Len(), len(polygons)))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
