package cache

import (
	"context"
	"fmt"

	"github.com/seedcrop/seedcrop/pkg/frame"
	"golang.org/x/sync/singleflight"
)

// keySeparator joins a path and its options fingerprint into a cache key.
// \x1f (unit separator) never appears in a filesystem path, so
// strings.HasPrefix(key, path+keySeparator) cannot false-match a sibling
// path that merely shares a prefix.
const keySeparator = "\x1f"

// DefaultDecodeCacheSize is the decode cache's default capacity.
const DefaultDecodeCacheSize = 10

// ResizeOptions selects which decoded variant of an image is wanted.
type ResizeOptions struct {
	DownsampleFactor float64
	MaxWidth         int
	MaxHeight        int
}

// Fingerprint is the canonical serialization of opts used as the cache key
// suffix; distinct fingerprints are independent entries even for the same
// path.
func (o ResizeOptions) Fingerprint() string {
	if o.DownsampleFactor == 0 && o.MaxWidth == 0 && o.MaxHeight == 0 {
		return "none"
	}
	return fmt.Sprintf("d=%g,w=%d,h=%d", o.DownsampleFactor, o.MaxWidth, o.MaxHeight)
}

// EffectiveFactor resolves opts to a single downsample factor <= 1: when
// both maxWidth and maxHeight are given, the effective factor is
// 1 / max(W/maxW, H/maxH) clamped to <= 1.
func (o ResizeOptions) EffectiveFactor(origWidth, origHeight int) float64 {
	if o.DownsampleFactor > 0 {
		if o.DownsampleFactor > 1 {
			return 1
		}
		return o.DownsampleFactor
	}
	if o.MaxWidth <= 0 && o.MaxHeight <= 0 {
		return 1
	}
	ratio := 0.0
	if o.MaxWidth > 0 {
		ratio = float64(origWidth) / float64(o.MaxWidth)
	}
	if o.MaxHeight > 0 {
		if hr := float64(origHeight) / float64(o.MaxHeight); hr > ratio {
			ratio = hr
		}
	}
	if ratio <= 0 {
		return 1
	}
	factor := 1 / ratio
	if factor > 1 {
		factor = 1
	}
	return factor
}

// DecodeCache is an LRU of decoded images keyed by (path, options
// fingerprint), with singleflight-based de-duplication of concurrent
// decodes of the same key.
type DecodeCache struct {
	decoder frame.Decoder
	lru     *lruCache[frame.Image]
	group   singleflight.Group
}

// NewDecodeCache builds a decode cache of the given capacity (<=0 uses the
// default) backed by decoder.
func NewDecodeCache(decoder frame.Decoder, maxSize int, clock Clock) *DecodeCache {
	if maxSize <= 0 {
		maxSize = DefaultDecodeCacheSize
	}
	return &DecodeCache{
		decoder: decoder,
		lru:     newLRUCache[frame.Image](maxSize, clock),
	}
}

// Get returns the decoded-and-resized variant of path for opts, decoding
// (and resizing) on a miss. Concurrent misses on the same key share one
// decode via singleflight rather than issuing a second one.
func (c *DecodeCache) Get(ctx context.Context, path string, opts ResizeOptions) (frame.Image, error) {
	key := path + keySeparator + opts.Fingerprint()

	if v, ok := c.lru.get(key); ok {
		return v, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the singleflight key: another caller's decode may
		// have completed and been inserted while we were queued behind it.
		if v, ok := c.lru.get(key); ok {
			return v, nil
		}

		img, err := c.decoder.Decode(ctx, path)
		if err != nil {
			return nil, err
		}

		variant, err := c.applyOptions(img, opts)
		if err != nil {
			return nil, err
		}

		c.lru.set(key, variant)
		return variant, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(frame.Image), nil
}

// Original is the DecodedProvider method the seed pipeline consumes: it
// always requests the unmodified ("none" fingerprint) decode.
func (c *DecodeCache) Original(ctx context.Context, path string) (frame.Image, error) {
	return c.Get(ctx, path, ResizeOptions{})
}

func (c *DecodeCache) applyOptions(img frame.Image, opts ResizeOptions) (frame.Image, error) {
	if opts.Fingerprint() == "none" {
		return img, nil
	}
	bounds := img.Bounds()
	factor := opts.EffectiveFactor(bounds.Dx(), bounds.Dy())
	if factor >= 1 {
		return img, nil
	}
	w := int(float64(bounds.Dx()) * factor)
	h := int(float64(bounds.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return img.Resize(w, h), nil
}

// Clear removes every fingerprint cached for path.
func (c *DecodeCache) Clear(path string) {
	c.lru.clearPrefix(path + keySeparator)
}

// ClearAll removes every cached entry.
func (c *DecodeCache) ClearAll() {
	c.lru.clear()
}

// Stats reports the cache's current size and capacity.
func (c *DecodeCache) Stats() (size, maxSize int) {
	return c.lru.len(), c.lru.maxSize
}
