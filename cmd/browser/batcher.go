package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// PolygonBatcher collects filled convex polygons and outlines into as few
// DrawTriangles calls as the uint16 index limit allows.
type PolygonBatcher struct {
	screen   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	path     vector.Path
	stroke   []ebiten.Vertex
	strokeIx []uint16
}

func NewPolygonBatcher() *PolygonBatcher {
	return &PolygonBatcher{
		vertices: make([]ebiten.Vertex, 0, 4096),
		indices:  make([]uint16, 0, 8192),
	}
}

func (b *PolygonBatcher) Begin(screen *ebiten.Image) {
	b.screen = screen
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	b.reserve(len(xp))

	cr, cg, cb, ca := colorComponents(clr)
	base := uint16(len(b.vertices))
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

// AddPolygonAndOutline fills the polygon then strokes its edges.
func (b *PolygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	if len(xp) < 2 {
		return
	}

	b.path = vector.Path{}
	b.path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		b.path.LineTo(xp[i], yp[i])
	}
	b.path.Close()

	b.stroke, b.strokeIx = b.path.AppendVerticesAndIndicesForStroke(b.stroke[:0], b.strokeIx[:0], &vector.StrokeOptions{
		Width: strokeWidth,
	})
	b.reserve(len(b.stroke))

	cr, cg, cb, ca := colorComponents(strokeClr)
	base := uint16(len(b.vertices))
	for _, v := range b.stroke {
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
		b.vertices = append(b.vertices, v)
	}
	for _, ix := range b.strokeIx {
		b.indices = append(b.indices, base+ix)
	}
}

// reserve flushes if n more vertices would overflow the uint16 indices.
func (b *PolygonBatcher) reserve(n int) {
	if len(b.vertices)+n > math.MaxUint16 {
		b.Flush()
	}
}

func (b *PolygonBatcher) Flush() {
	if len(b.indices) > 0 && b.screen != nil {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		b.screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func colorComponents(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}
