package frame

import "sort"

// ConvexHull computes the convex hull of points using the monotone-chain
// algorithm, returning a strictly convex polygon (collinear points dropped)
// in counter-clockwise order without a repeated first vertex. Inputs with
// fewer than 3 points are returned unchanged.
func ConvexHull(points []Vector2) []Vector2 {
	if len(points) < 3 {
		out := make([]Vector2, len(points))
		copy(out, points)
		return out
	}

	pts := make([]Vector2, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Build lower and upper hulls; cross <= 0 rejects right turns and
	// collinear points, keeping the hull strictly convex.
	lower := make([]Vector2, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Vector2, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Concatenate, dropping the last point of each half since it's the
	// first point of the other half.
	hull := make([]Vector2, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// cross returns the z-component of (b-o) x (c-o). Positive means o->b->c
// turns left (counter-clockwise).
func cross(o, b, c Vector2) float64 {
	return (b.X-o.X)*(c.Y-o.Y) - (b.Y-o.Y)*(c.X-o.X)
}

// SignedArea returns twice the signed area of the polygon traced by pts; a
// positive value means the polygon is wound counter-clockwise.
func SignedArea(pts []Vector2) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}
