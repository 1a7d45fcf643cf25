package polyscene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spinner turns an item about axis at speed radians per second.
func Spinner(axis mgl64.Vec3, speed float64) UpdateFunc {
	axis = axis.Normalize()
	return func(item *Item, t, dt float64) {
		item.Orientation = mgl64.QuatRotate(speed*dt, axis).Mul(item.Orientation).Normalize()
	}
}

// WobblySpinner spins an item about an axis that itself drifts slowly, so
// the item tumbles rather than turning in place.
func WobblySpinner(speed float64) UpdateFunc {
	return func(item *Item, t, dt float64) {
		axis := mgl64.Vec3{math.Sin(t * 0.37), 1, math.Cos(t * 0.53)}.Normalize()
		item.Orientation = mgl64.QuatRotate(speed*dt, axis).Mul(item.Orientation).Normalize()
	}
}

// Mover eases an item's position towards target. rate is the fraction of the
// remaining distance covered per second.
func Mover(target mgl64.Vec3, rate float64) UpdateFunc {
	return func(item *Item, t, dt float64) {
		step := math.Min(1, rate*dt)
		item.Position = item.Position.Add(target.Sub(item.Position).Mul(step))
	}
}

// RandomShell returns a point uniformly spread over the sphere of the given
// radius, drawing from rnd which must return values in [0, 1).
func RandomShell(radius float64, rnd func() float64) mgl64.Vec3 {
	z := 2*rnd() - 1
	theta := 2 * math.Pi * rnd()
	r := math.Sqrt(1 - z*z)
	return mgl64.Vec3{r * math.Cos(theta), r * math.Sin(theta), z}.Mul(radius)
}
