package frame

import "math"

// DefaultAngleRefineWindow and DefaultAngleRefineIterations are the golden
// section search defaults.
const (
	DefaultAngleRefineWindow     = 3.0
	DefaultAngleRefineIterations = 10
)

// goldenRatio is the inverse golden ratio used by golden-section search.
const goldenRatio = 0.6180339887498949

// PCAAngle returns, in degrees, the direction of the eigenvector of the
// smaller eigenvalue of the points' 2x2 covariance matrix, which is
// perpendicular to the principal axis. The second return
// value is false when the discriminant is negative or both eigenvector
// components are near zero, signaling "no usable angle".
func PCAAngle(points []Vector2) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}

	var meanX, meanY float64
	for _, p := range points {
		meanX += p.X
		meanY += p.Y
	}
	n := float64(len(points))
	meanX /= n
	meanY /= n

	var sxx, sxy, syy float64
	for _, p := range points {
		dx, dy := p.X-meanX, p.Y-meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	sxx /= n
	sxy /= n
	syy /= n

	trace := sxx + syy
	det := sxx*syy - sxy*sxy
	discriminant := trace*trace/4 - det
	if discriminant < 0 {
		return 0, false
	}

	lambda := trace/2 - math.Sqrt(discriminant)

	ex := lambda - syy
	ey := sxy
	if math.Abs(ex) < 1e-9 && math.Abs(ey) < 1e-9 {
		return 0, false
	}

	return math.Atan2(ey, ex) * 180 / math.Pi, true
}

// project returns the point's extent along the axis perpendicular to alpha.
func project(p, c Vector2, alphaDeg float64) float64 {
	rad := alphaDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return (p.X-c.X)*sin + (p.Y-c.Y)*cos
}

// projectedHeight returns max(project) - min(project) over points at angle
// alpha around center c.
func projectedHeight(points []Vector2, c Vector2, alphaDeg float64) float64 {
	if len(points) == 0 {
		return 0
	}
	minP, maxP := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		v := project(p, c, alphaDeg)
		if v < minP {
			minP = v
		}
		if v > maxP {
			maxP = v
		}
	}
	return maxP - minP
}

// RefineAngle performs golden-section search over [alpha-window, alpha+window]
// minimizing projectedHeight, returning the midpoint of the final bracket.
func RefineAngle(points []Vector2, alpha float64, center Vector2, window float64, iterations int) float64 {
	if window <= 0 {
		window = DefaultAngleRefineWindow
	}
	if iterations <= 0 {
		iterations = DefaultAngleRefineIterations
	}

	lo := alpha - window
	hi := alpha + window

	f := func(a float64) float64 { return projectedHeight(points, center, a) }

	x1 := hi - goldenRatio*(hi-lo)
	x2 := lo + goldenRatio*(hi-lo)
	f1 := f(x1)
	f2 := f(x2)

	for i := 0; i < iterations; i++ {
		if f1 < f2 {
			hi = x2
			x2 = x1
			f2 = f1
			x1 = hi - goldenRatio*(hi-lo)
			f1 = f(x1)
		} else {
			lo = x1
			x1 = x2
			f1 = f2
			x2 = lo + goldenRatio*(hi-lo)
			f2 = f(x2)
		}
	}

	return (lo + hi) / 2
}

// ChooseBestAngle picks between the rotating-calipers angle alphaC and an
// optional PCA angle alphaP. alphaC wins unless alphaP disagrees by more
// than 5 degrees AND strictly minimizes the projected height.
func ChooseBestAngle(points []Vector2, center Vector2, alphaC float64, alphaP *float64) float64 {
	if alphaP == nil {
		return alphaC
	}
	if math.Abs(NormalizeAngle(alphaC-*alphaP)) <= 5 {
		return alphaC
	}

	heightC := projectedHeight(points, center, alphaC)
	heightP := projectedHeight(points, center, *alphaP)
	if heightP < heightC {
		return *alphaP
	}
	return alphaC
}
