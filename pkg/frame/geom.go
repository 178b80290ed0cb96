package frame

import "math"

// Rotate rotates p by theta degrees around the origin. Callers pass
// center-relative points when they need rotation about an arbitrary center.
func Rotate(p Vector2, thetaDeg float64) Vector2 {
	rad := thetaDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// InBounds reports whether the rounded pixel coordinate (x, y) lies inside a
// W x H image.
func InBounds(w, h int, x, y float64) bool {
	xi := int(math.Round(x))
	yi := int(math.Round(y))
	return xi >= 0 && xi < w && yi >= 0 && yi < h
}

// NormalizeAngle wraps a degree angle into (-180, 180].
func NormalizeAngle(a float64) float64 {
	wrapped := a - 360*math.Round(a/360)
	if wrapped <= -180 {
		wrapped += 360
	}
	if wrapped > 180 {
		wrapped -= 360
	}
	return wrapped
}

// NormalizeRotation brings a rectangle's rotation into the canonical range
// (-45, 45], swapping width/height when a 90-degree correction is required.
// This is the representation every BoundingBox the pipeline returns must
// satisfy.
func NormalizeRotation(a, w, h float64) (angle, width, height float64) {
	angle = NormalizeAngle(a)
	width, height = w, h

	if angle > 90 {
		angle -= 180
	} else if angle < -90 {
		angle += 180
	}

	if angle > 45 {
		angle -= 90
		width, height = height, width
	} else if angle <= -45 {
		angle += 90
		width, height = height, width
	}

	return angle, width, height
}
