package frame

import (
	"image"
	"math"
)

// DefaultCropInset and DefaultMinRotation are SmartCrop's defaults.
const (
	DefaultCropInset  = 8
	DefaultMinRotation = 0.2
)

// SmartCropConfig controls SmartCrop's padding, rotation threshold, and
// final edge inset.
type SmartCropConfig struct {
	Padding     float64
	CropInset   int
	MinRotation float64
}

// SmartCrop extracts box from original: an optional local-frame padding
// inflation, an axis-aligned pre-crop, a rotate-to-upright (or direct crop
// when already upright) inner crop, and a final symmetric edge inset.
func SmartCrop(original Image, box BoundingBox, cfg SmartCropConfig) (Image, error) {
	if cfg.CropInset <= 0 {
		cfg.CropInset = DefaultCropInset
	}
	if cfg.MinRotation == 0 {
		cfg.MinRotation = DefaultMinRotation
	}

	working := box
	if cfg.Padding > 0 {
		working = inflate(box, cfg.Padding)
	}

	bounds := original.Bounds()
	corners := TransformCorners(working)
	minX, minY, maxX, maxY := AxisAlignedBounds(corners, bounds.Dx(), bounds.Dy())
	if minX >= maxX || minY >= maxY {
		return nil, newErr(CropOutOfImage, "SmartCrop", "", Vector2{}, nil)
	}

	preCrop := original.Crop(image.Rect(minX, minY, maxX, maxY))
	localBox := working
	localBox.X -= float64(minX)
	localBox.Y -= float64(minY)

	var inner Image
	if math.Abs(NormalizeAngle(localBox.Rotation)) <= cfg.MinRotation {
		inner = cropUpright(preCrop, localBox)
	} else {
		inner = cropRotated(preCrop, localBox)
	}

	return applyInset(inner, cfg.CropInset), nil
}

// inflate grows box by padding in its own local frame.
func inflate(box BoundingBox, padding float64) BoundingBox {
	u, v := axes(box)
	shift := u.Scale(-padding).Add(v.Scale(-padding))
	return BoundingBox{
		X:        box.X + shift.X,
		Y:        box.Y + shift.Y,
		Width:    box.Width + 2*padding,
		Height:   box.Height + 2*padding,
		Rotation: box.Rotation,
	}
}

// cropUpright crops directly to round(box), clamped to img's own bounds.
func cropUpright(img Image, box BoundingBox) Image {
	b := img.Bounds()
	rect := image.Rect(
		roundInt(box.X), roundInt(box.Y),
		roundInt(box.X+box.Width), roundInt(box.Y+box.Height),
	).Intersect(b)
	if rect.Empty() {
		rect = image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Min.Y+1)
	}
	return img.Crop(rect)
}

// cropRotated brings box upright by rotating img by box's rotation through
// Image.Rotate, which turns counter-clockwise on screen and so undoes the
// clockwise-on-screen tilt of box's local +x axis (cos r, sin r) in y-down
// image coordinates. It then crops a round(W)xround(H) region centered on
// the rotated canvas' center, which is where box's center lands after
// imaging.Rotate re-centers the content. The crop is clamped to the rotated
// canvas and never fails.
func cropRotated(img Image, box BoundingBox) Image {
	angle := NormalizeAngle(box.Rotation)
	rotated := img.Rotate(angle)

	rb := rotated.Bounds()
	cx := (rb.Min.X + rb.Max.X) / 2
	cy := (rb.Min.Y + rb.Max.Y) / 2

	w := roundInt(box.Width)
	h := roundInt(box.Height)

	rect := image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h).Intersect(rb)
	if rect.Empty() {
		rect = rb
	}
	return rotated.Crop(rect)
}

// applyInset trims inset pixels off every side, never shrinking below 1x1.
func applyInset(img Image, inset int) Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	xInset := inset
	if maxXInset := (w - 1) / 2; xInset > maxXInset {
		xInset = maxXInset
	}
	yInset := inset
	if maxYInset := (h - 1) / 2; yInset > maxYInset {
		yInset = maxYInset
	}
	if xInset < 0 {
		xInset = 0
	}
	if yInset < 0 {
		yInset = 0
	}

	rect := image.Rect(b.Min.X+xInset, b.Min.Y+yInset, b.Max.X-xInset, b.Max.Y-yInset)
	return img.Crop(rect)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
