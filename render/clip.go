package render

import "github.com/go-gl/mathgl/mgl64"

// clipAgainstNearPlane cuts a convex camera space polygon down to the part
// in front of the plane z = -near. Returns nil when nothing is left.
func clipAgainstNearPlane(polygon []mgl64.Vec3, near float64) []mgl64.Vec3 {
	if len(polygon) == 0 {
		return nil
	}
	inside := func(p mgl64.Vec3) bool {
		return p[2] <= -near
	}

	clipped := make([]mgl64.Vec3, 0, len(polygon)+1)
	prev := polygon[len(polygon)-1]
	for _, cur := range polygon {
		switch {
		case inside(cur) && inside(prev):
			clipped = append(clipped, cur)
		case inside(cur):
			clipped = append(clipped, intersectNearPlane(prev, cur, near), cur)
		case inside(prev):
			clipped = append(clipped, intersectNearPlane(prev, cur, near))
		}
		prev = cur
	}
	if len(clipped) == 0 {
		return nil
	}
	return clipped
}

// intersectNearPlane returns where segment p1-p2 crosses z = -near, or p1 if
// the segment runs parallel to the plane.
func intersectNearPlane(p1, p2 mgl64.Vec3, near float64) mgl64.Vec3 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return p1
	}
	t := (-near - p1[2]) / dz
	return p1.Add(p2.Sub(p1).Mul(t))
}
