package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ambientLight         = 0.65
	spotlightConePower   = 10.0
	spotlightLightAmount = 1.0 - ambientLight
)

// shade darkens polyColor using a headlight at the camera: ambient light plus
// a diffuse term that is strongest for faces turned towards the viewer in the
// middle of the view. point and normal are in camera space.
func shade(polyColor color.RGBA, point, normal mgl64.Vec3) color.RGBA {
	diffuseFactor := normal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	var spotlightFactor float64
	lenVecToPoint := point.Len()
	if lenVecToPoint > 0 {
		cosAngle := -point[2] / lenVecToPoint
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	} else {
		spotlightFactor = 1.0
	}

	spotlightBrightness := diffuseFactor * spotlightFactor * spotlightLightAmount
	finalBrightness := ambientLight + spotlightBrightness

	c := 240 - int(finalBrightness*240)
	const min = 7
	return color.RGBA{
		R: uint8(clamp(int(polyColor.R)-c, min, 255)),
		G: uint8(clamp(int(polyColor.G)-c, min, 255)),
		B: uint8(clamp(int(polyColor.B)-c, min, 255)),
		A: polyColor.A,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
