package frame

import "math"

// DefaultMaxPixels is the default hard cap on accepted pixels.
const DefaultMaxPixels = 2_000_000

// neighborOffsets lists the 8-connected neighborhood in a fixed clockwise
// order starting north, so traversal order is deterministic regardless of
// map iteration order.
var neighborOffsets = [8][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// FloodFill performs an 8-connected breadth-first search from seed over img,
// accepting a pixel when predicate(pixel, seedPixel) holds. Returned points
// are pixel centers in img's own coordinate space, in BFS visitation order.
func FloodFill(img Image, seed Vector2, predicate ColorPredicate, maxPixels int) (Region, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	sx := int(math.Round(seed.X))
	sy := int(math.Round(seed.Y))
	if sx < 0 || sx >= w || sy < 0 || sy >= h {
		return nil, newErr(OutOfBounds, "FloodFill", "", seed, nil)
	}

	seedPixel := img.At(sx, sy)
	if !predicate(seedPixel, seedPixel) {
		return nil, newErr(EmptyRegion, "FloodFill", "", seed, nil)
	}

	visited := make([]bool, w*h)
	index := func(x, y int) int { return y*w + x }

	type point struct{ x, y int }
	queue := make([]point, 0, 256)
	queue = append(queue, point{sx, sy})
	visited[index(sx, sy)] = true

	region := make(Region, 0, 1024)
	region = append(region, Vector2{X: float64(sx), Y: float64(sy)})

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, off := range neighborOffsets {
			nx, ny := cur.x+off[0], cur.y+off[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			idx := index(nx, ny)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			if !predicate(img.At(nx, ny), seedPixel) {
				continue
			}
			if len(region) >= maxPixels {
				return nil, newErr(RegionTooLarge, "FloodFill", "", seed, nil)
			}
			region = append(region, Vector2{X: float64(nx), Y: float64(ny)})
			queue = append(queue, point{nx, ny})
		}
	}

	return region, nil
}
