package frame

import "math"

// ScalePoint multiplies p by s without early rounding.
func ScalePoint(p Vector2, s float64) Vector2 {
	return Vector2{X: p.X * s, Y: p.Y * s}
}

// ScaleBox scales a BoundingBox's position and dimensions by s; rotation is
// scale-invariant.
func ScaleBox(box BoundingBox, s float64) BoundingBox {
	return BoundingBox{
		X:        box.X * s,
		Y:        box.Y * s,
		Width:    box.Width * s,
		Height:   box.Height * s,
		Rotation: box.Rotation,
	}
}

// ScaleRegion scales every point of a Region by s.
func ScaleRegion(region Region, s float64) Region {
	out := make(Region, len(region))
	for i, p := range region {
		out[i] = ScalePoint(p, s)
	}
	return out
}

// axes returns the box's local +x (u) and +y (v) unit vectors in world
// coordinates.
func axes(box BoundingBox) (u, v Vector2) {
	rad := box.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	u = Vector2{X: cos, Y: sin}
	v = Vector2{X: -sin, Y: cos}
	return
}

// TransformCorners returns the box's four corners in order
// [origin, origin+W*u, origin+W*u+H*v, origin+H*v].
func TransformCorners(box BoundingBox) [4]Vector2 {
	origin := Vector2{X: box.X, Y: box.Y}
	u, v := axes(box)

	wu := u.Scale(box.Width)
	hv := v.Scale(box.Height)

	return [4]Vector2{
		origin,
		origin.Add(wu),
		origin.Add(wu).Add(hv),
		origin.Add(hv),
	}
}

// AxisAlignedBounds returns the floor/ceil clamp of corners' min/max. The x
// range is clipped to [0, w) when w > 0 and the y range to [0, h) when
// h > 0, each independently.
func AxisAlignedBounds(corners [4]Vector2, w, h int) (minX, minY, maxX, maxY int) {
	fMinX, fMinY := math.Inf(1), math.Inf(1)
	fMaxX, fMaxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		if c.X < fMinX {
			fMinX = c.X
		}
		if c.X > fMaxX {
			fMaxX = c.X
		}
		if c.Y < fMinY {
			fMinY = c.Y
		}
		if c.Y > fMaxY {
			fMaxY = c.Y
		}
	}

	minX = int(math.Floor(fMinX))
	minY = int(math.Floor(fMinY))
	maxX = int(math.Ceil(fMaxX))
	maxY = int(math.Ceil(fMaxY))

	if w > 0 {
		if minX < 0 {
			minX = 0
		}
		if maxX > w {
			maxX = w
		}
	}
	if h > 0 {
		if minY < 0 {
			minY = 0
		}
		if maxY > h {
			maxY = h
		}
	}
	return
}

// Center returns the world-space center of box.
func Center(box BoundingBox) Vector2 {
	origin := Vector2{X: box.X, Y: box.Y}
	u, v := axes(box)
	return origin.Add(u.Scale(box.Width / 2)).Add(v.Scale(box.Height / 2))
}
