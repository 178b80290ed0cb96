package frame

import (
	"math"
)

// DefaultMinArea is the minimum rectangle area accepted by MinAreaRect
// before it fails with RegionTooSmall.
const DefaultMinArea = 100.0

// OBBConfig controls the optional PCA override and angle-refinement passes
// of the minimum-area bounding rectangle.
type OBBConfig struct {
	UsePCA                bool
	EnableAngleRefine     bool
	AngleRefineWindow     float64
	AngleRefineIterations int
}

// MinAreaRect computes the minimum-area oriented bounding rectangle over
// points via rotating calipers on the convex hull, with optional PCA
// override and golden-section angle refinement.
func MinAreaRect(points []Vector2, minArea float64, cfg OBBConfig) (BoundingBox, error) {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}

	hull := ConvexHull(points)
	if len(hull) < 3 {
		minX, minY, maxX, maxY := axisExtent(points)
		width, height := maxX-minX, maxY-minY
		return BoundingBox{X: minX, Y: minY, Width: width, Height: height, Rotation: 0}, nil
	}

	var (
		bestArea   = math.Inf(1)
		bestAngle  float64
		bestWidth  float64
		bestHeight float64
		bestCenter Vector2
	)

	n := len(hull)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := hull[j].X - hull[i].X
		dy := hull[j].Y - hull[i].Y
		theta := math.Atan2(dy, dx) * 180 / math.Pi

		width, height, center := boxForAngle(hull, theta)
		area := width * height
		if area < bestArea {
			bestArea = area
			bestAngle = theta
			bestWidth = width
			bestHeight = height
			bestCenter = center
		}
	}

	if bestArea < minArea {
		return BoundingBox{}, newErr(RegionTooSmall, "MinAreaRect", "", Vector2{}, nil)
	}

	angle := bestAngle
	center := bestCenter

	if cfg.UsePCA {
		pcaAngle, ok := PCAAngle(points)
		var alphaP *float64
		if ok {
			alphaP = &pcaAngle
		}
		chosen := ChooseBestAngle(points, center, angle, alphaP)
		if chosen != angle {
			angle = chosen
			bestWidth, bestHeight, center = boxForAngle(points, angle)
		}
	}

	if cfg.EnableAngleRefine {
		refined := RefineAngle(points, angle, center, cfg.AngleRefineWindow, cfg.AngleRefineIterations)
		if refined != angle {
			angle = refined
			bestWidth, bestHeight, center = boxForAngle(points, angle)
		}
	}

	canonAngle, canonWidth, canonHeight := NormalizeRotation(angle, bestWidth, bestHeight)

	half := Vector2{X: -canonWidth / 2, Y: -canonHeight / 2}
	corner := center.Add(Rotate(half, canonAngle))

	return BoundingBox{
		X:        corner.X,
		Y:        corner.Y,
		Width:    canonWidth,
		Height:   canonHeight,
		Rotation: canonAngle,
	}, nil
}

// boxForAngle rotates points by -angleDeg, takes the axis-aligned min/max in
// that frame, and returns the resulting width/height plus the box's center
// expressed back in world coordinates.
func boxForAngle(points []Vector2, angleDeg float64) (width, height float64, center Vector2) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		rp := Rotate(p, -angleDeg)
		if rp.X < minX {
			minX = rp.X
		}
		if rp.X > maxX {
			maxX = rp.X
		}
		if rp.Y < minY {
			minY = rp.Y
		}
		if rp.Y > maxY {
			maxY = rp.Y
		}
	}
	localCenter := Vector2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	return maxX - minX, maxY - minY, Rotate(localCenter, angleDeg)
}

// axisExtent returns the axis-aligned min/max coordinates of points.
func axisExtent(points []Vector2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}
