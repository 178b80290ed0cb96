package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Image is the raster abstraction the pipeline operates on. It wraps a
// decoded image.Image and adds the structural operations the core needs:
// cropping, rotation-with-expansion, resizing, and encoding. Alpha is
// preserved through imaging's NRGBA representation but never interpreted.
type Image interface {
	Bounds() image.Rectangle
	At(x, y int) RGB
	Clone() Image
	Crop(rect image.Rectangle) Image
	Rotate(degrees float64) Image
	Resize(width, height int) Image
	// ResizeHQ downsamples with a wider, more expensive kernel than Resize's
	// resampler, for the one path (the display-size thumbnail the scale
	// cache produces) where a large original-to-display reduction makes the
	// quality difference visible.
	ResizeHQ(width, height int) Image
	Encode(w io.Writer, format string) error
	// Raw exposes the underlying image.Image for collaborators (encoders,
	// test fixtures) that want to operate on it directly.
	Raw() image.Image
}

// imageAdapter is the concrete Image backed by disintegration/imaging's
// *image.NRGBA, splitting decode/resize/crop/encode into separate methods.
type imageAdapter struct {
	img       *image.NRGBA
	resampler imaging.ResampleFilter
}

// NewImage wraps an already-decoded image.Image. The default resampler is
// Lanczos.
func NewImage(img image.Image) Image {
	return &imageAdapter{img: imaging.Clone(img), resampler: imaging.Lanczos}
}

// DecodeImage decodes raw bytes into an Image, dispatching on contentType
// and falling back to format sniffing for anything else.
func DecodeImage(data []byte, contentType string) (Image, error) {
	var img image.Image
	var err error

	switch contentType {
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	default:
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return NewImage(img), nil
}

func (a *imageAdapter) Bounds() image.Rectangle { return a.img.Bounds() }

func (a *imageAdapter) At(x, y int) RGB {
	r, g, b, _ := a.img.At(x, y).RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func (a *imageAdapter) Clone() Image {
	return &imageAdapter{img: imaging.Clone(a.img), resampler: a.resampler}
}

func (a *imageAdapter) Crop(rect image.Rectangle) Image {
	return &imageAdapter{img: imaging.Crop(a.img, rect), resampler: a.resampler}
}

// Rotate rotates the image by degrees counter-clockwise, producing a larger
// image with the rotated content centered on a transparent background.
// imaging.Rotate already expands the canvas to fit.
func (a *imageAdapter) Rotate(degrees float64) Image {
	rotated := imaging.Rotate(a.img, degrees, color.Transparent)
	return &imageAdapter{img: rotated, resampler: a.resampler}
}

func (a *imageAdapter) Resize(width, height int) Image {
	resized := imaging.Resize(a.img, width, height, a.resampler)
	return &imageAdapter{img: resized, resampler: a.resampler}
}

// ResizeHQ scales with draw.CatmullRom, a bicubic kernel that holds up
// better than imaging's resampler on large reductions (original resolution
// down to display bounds).
func (a *imageAdapter) ResizeHQ(width, height int) Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), a.img, a.img.Bounds(), draw.Src, nil)
	return &imageAdapter{img: dst, resampler: a.resampler}
}

func (a *imageAdapter) Encode(w io.Writer, format string) error {
	switch format {
	case "png", "":
		return png.Encode(w, a.img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, a.img, &jpeg.Options{Quality: 95})
	default:
		return fmt.Errorf("unsupported encode format: %s", format)
	}
}

func (a *imageAdapter) Raw() image.Image { return a.img }
