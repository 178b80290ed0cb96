package frame

// DefaultWhiteThreshold is the default upper brightness bound (exclusive)
// used by the standard white-boundary predicate.
const DefaultWhiteThreshold = 220

// ColorPredicate decides whether a pixel belongs to the region being
// flood-filled. It receives both the pixel under test and the seed pixel so
// future seed-relative predicates have somewhere to plug in; the standard
// predicate below ignores seedPixel. Must be pure and safe to call up to
// maxPixels times.
type ColorPredicate func(pixel, seedPixel RGB) bool

// WhiteBoundaryPredicate returns the standard predicate: a pixel belongs to
// the region if its brightness falls strictly below threshold.
func WhiteBoundaryPredicate(threshold int) ColorPredicate {
	return func(pixel, _ RGB) bool {
		return pixel.Brightness() < float64(threshold)
	}
}
