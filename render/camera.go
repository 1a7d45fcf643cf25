package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // radians
	Near   float64
	Far    float64
}

func NewCameraLookAt(eye, target mgl64.Vec3) *Camera {
	return &Camera{
		Eye:    eye,
		Target: target,
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   mgl64.DegToRad(45),
		Near:   0.1,
		Far:    1000,
	}
}

// View maps world space to camera space. The camera looks down -Z.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Orbit swings a camera around Center in the plane at right angles to Axis.
// Radius eases towards TargetRadius so zooming is smooth.
type Orbit struct {
	Center          mgl64.Vec3
	Axis            mgl64.Vec3
	Radius          float64
	TargetRadius    float64
	AngularVelocity float64 // radians per second
	Phase           float64 // radians added to the swept angle
	WobbleSize      float64 // fraction of Radius
	WobbleFreq      float64 // cycles per second
}

func NewOrbit(center mgl64.Vec3, radius float64, axis mgl64.Vec3, angularVelocity float64) *Orbit {
	return &Orbit{
		Center:          center,
		Axis:            axis.Normalize(),
		Radius:          radius,
		TargetRadius:    radius,
		AngularVelocity: angularVelocity,
	}
}

// Zoom scales the radius the orbit is heading for.
func (o *Orbit) Zoom(factor float64) {
	o.TargetRadius *= factor
}

// Turn swings the orbit by delta radians on top of its steady rotation.
func (o *Orbit) Turn(delta float64) {
	o.Phase += delta
}

// Update moves c to where the orbit puts it at time t.
func (o *Orbit) Update(c *Camera, t, dt float64) {
	o.Radius += (o.TargetRadius - o.Radius) * math.Min(1, 3*dt)

	radius := o.Radius * (1 + o.WobbleSize*math.Sin(2*math.Pi*o.WobbleFreq*t))
	q := mgl64.QuatRotate(o.AngularVelocity*t+o.Phase, o.Axis)
	offset := q.Rotate(perpendicular(o.Axis).Mul(radius))

	c.Eye = o.Center.Add(offset)
	c.Target = o.Center
	c.Up = o.Axis
}

// perpendicular returns a unit vector at right angles to v.
func perpendicular(v mgl64.Vec3) mgl64.Vec3 {
	other := mgl64.Vec3{1, 0, 0}
	if math.Abs(v[0]) > 0.9 {
		other = mgl64.Vec3{0, 1, 0}
	}
	return v.Cross(other).Normalize()
}
