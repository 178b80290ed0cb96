package cache

import (
	"context"

	"github.com/seedcrop/seedcrop/pkg/frame"
)

// DefaultScaleCacheSize is the scale cache's default capacity.
const DefaultScaleCacheSize = 3

// DefaultMaxDisplayWidth and DefaultMaxDisplayHeight bound the display
// image's dimensions.
const (
	DefaultMaxDisplayWidth  = 1920
	DefaultMaxDisplayHeight = 1080
)

type scaleEntry struct {
	display frame.Image
	scale   float64
}

// ScaleCache is a per-path memoization of the display image and the
// display-to-original scale factor. In this design processing is collapsed
// onto display, so the cached triple degenerates to (display, scale).
type ScaleCache struct {
	maxWidth  int
	maxHeight int
	lru       *lruCache[scaleEntry]
}

// NewScaleCache builds a scale cache of the given capacity (<=0 uses the
// default) and display bound (<=0 on either dimension uses the defaults).
func NewScaleCache(maxSize, maxWidth, maxHeight int, clock Clock) *ScaleCache {
	if maxSize <= 0 {
		maxSize = DefaultScaleCacheSize
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxDisplayWidth
	}
	if maxHeight <= 0 {
		maxHeight = DefaultMaxDisplayHeight
	}
	return &ScaleCache{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		lru:       newLRUCache[scaleEntry](maxSize, clock),
	}
}

// DisplayScale implements frame.ScaleProvider: it returns the memoized
// display sibling of original for path, computing it on miss: reference-
// equal when it already fits, resized and scaled down otherwise.
func (c *ScaleCache) DisplayScale(_ context.Context, path string, original frame.Image) (frame.Image, float64, error) {
	if v, ok := c.lru.get(path); ok {
		return v.display, v.scale, nil
	}

	bounds := original.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var entry scaleEntry
	if w <= c.maxWidth && h <= c.maxHeight {
		entry = scaleEntry{display: original, scale: 1.0}
	} else {
		scale := float64(c.maxWidth) / float64(w)
		if hs := float64(c.maxHeight) / float64(h); hs < scale {
			scale = hs
		}
		dw := int(float64(w)*scale + 0.5)
		dh := int(float64(h)*scale + 0.5)
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		entry = scaleEntry{display: original.ResizeHQ(dw, dh), scale: scale}
	}

	c.lru.set(path, entry)
	return entry.display, entry.scale, nil
}

// Clear invalidates the scale entry for path. DecodeCache.Clear does not
// reach this cache; the Engine's ClearCache calls both for a path.
func (c *ScaleCache) Clear(path string) {
	c.lru.remove(path)
}

// ClearAll removes every cached entry.
func (c *ScaleCache) ClearAll() {
	c.lru.clear()
}
