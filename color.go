package polyscene

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 127, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Teal       = color.RGBA{R: 0, G: 128, B: 128, A: 255}
	DarkTeal   = color.RGBA{R: 0, G: 64, B: 64, A: 255}
	DarkRed    = color.RGBA{R: 128, G: 0, B: 0, A: 255}
	SeaGreen   = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	Periwinkle = color.RGBA{R: 204, G: 204, B: 255, A: 255}
)

// Inverted returns the complement of c. Alpha is kept.
func Inverted(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Tinted blends c towards other by amount (0 = c, 1 = other), mixing in RGB
// space. Alpha is interpolated linearly.
func Tinted(c, other color.RGBA, amount float64) color.RGBA {
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return other
	}
	from, _ := colorful.MakeColor(opaque(c))
	to, _ := colorful.MakeColor(opaque(other))
	r, g, b := from.BlendRgb(to, amount).Clamped().RGB255()
	a := float64(c.A) + (float64(other.A)-float64(c.A))*amount
	return color.RGBA{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

// RandomColor returns a saturated, reasonably bright opaque colour.
func RandomColor() color.RGBA {
	return RandomColorFrom(rand.Float64)
}

// RandomColorFrom is RandomColor with an injectable source, so callers can
// produce repeatable palettes.
func RandomColorFrom(rnd func() float64) color.RGBA {
	c := colorful.Hsv(rnd()*360.0, 0.5+rnd()*0.5, 0.6+rnd()*0.4)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// go-colorful refuses colours with zero alpha
func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
