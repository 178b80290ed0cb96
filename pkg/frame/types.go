// Package frame implements the image-analysis core described in the
// seed-crop specification: bounded flood-fill from a user seed, a
// minimum-area oriented bounding rectangle over the filled region, and a
// rotation-corrected crop of the original-resolution image.
package frame

import "fmt"

// Vector2 is a 2D point or vector with sub-pixel precision. Pixel rounding
// only happens at the final image-write step.
type Vector2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

func (v Vector2) String() string { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }

// RGB is an ordered 8-bit channel triple.
type RGB struct {
	R, G, B uint8
}

// Brightness is the unweighted channel average used by the color predicate.
func (c RGB) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
}

// BoundingBox is an oriented rectangle. (X, Y) is the image-space position
// of the rectangle's local origin corner; the local +x axis is the world +x
// axis rotated by Rotation degrees. After canonicalization (see
// NormalizeRotation), Rotation lies in (-90, 90] and more specifically in
// (-45, 45] once dimension-swapping has been applied.
type BoundingBox struct {
	X, Y, Width, Height float64
	Rotation            float64
}

// Region is the ordered set of pixel coordinates a flood-fill accepted.
type Region []Vector2

// FrameRecord is a BoundingBox plus the bookkeeping a frame registry and UI
// need to redisplay, regenerate, or reorient a crop.
type FrameRecord struct {
	BoundingBox
	ID                           string
	Label                        string
	Orientation                  int // one of 0, 90, 180, 270
	SourcePath                   string
	ScaleFactorDisplayToOriginal float64
}

// FramePatch carries the subset of FrameRecord fields an UpdateFrame call
// may modify; a nil field means "leave as is". ID is intentionally absent:
// it is never patchable.
type FramePatch struct {
	Label       *string
	Orientation *int
	BoundingBox *BoundingBox
}

// Apply merges the non-nil fields of p onto a copy of rec and returns it.
func (p FramePatch) Apply(rec FrameRecord) FrameRecord {
	if p.Label != nil {
		rec.Label = *p.Label
	}
	if p.Orientation != nil {
		rec.Orientation = *p.Orientation
	}
	if p.BoundingBox != nil {
		rec.BoundingBox = *p.BoundingBox
	}
	return rec
}

// RotateCycle returns a copy of rec with orientation advanced by 90 degrees.
// This is a metadata-only change; it never touches the stored BoundingBox or
// triggers pixel work.
func RotateCycle(rec FrameRecord) FrameRecord {
	rec.Orientation = (rec.Orientation + 90) % 360
	return rec
}
