package cache

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"
	"testing"

	"github.com/seedcrop/seedcrop/pkg/frame"
	"github.com/stretchr/testify/assert"
)

// fakeImage is a minimal frame.Image stand-in; only Bounds/Resize matter to
// the decode cache's resize-on-miss path.
type fakeImage struct {
	w, h int
}

func (f *fakeImage) Bounds() image.Rectangle          { return image.Rect(0, 0, f.w, f.h) }
func (f *fakeImage) At(x, y int) frame.RGB             { return frame.RGB{} }
func (f *fakeImage) Clone() frame.Image                { return &fakeImage{f.w, f.h} }
func (f *fakeImage) Crop(r image.Rectangle) frame.Image { return &fakeImage{r.Dx(), r.Dy()} }
func (f *fakeImage) Rotate(_ float64) frame.Image      { return f }
func (f *fakeImage) Resize(w, h int) frame.Image       { return &fakeImage{w, h} }
func (f *fakeImage) ResizeHQ(w, h int) frame.Image     { return &fakeImage{w, h} }
func (f *fakeImage) Encode(_ io.Writer, _ string) error { return nil }
func (f *fakeImage) Raw() image.Image                  { return nil }

// countingDecoder counts how many times Decode actually runs, per path, so
// tests can assert singleflight/LRU de-duplication.
type countingDecoder struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func newCountingDecoder() *countingDecoder {
	return &countingDecoder{calls: make(map[string]int)}
}

func (d *countingDecoder) Decode(_ context.Context, path string) (frame.Image, error) {
	d.mu.Lock()
	d.calls[path]++
	d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	return &fakeImage{w: 400, h: 200}, nil
}

func (d *countingDecoder) count(path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[path]
}

func TestDecodeCache_GetDecodesOnMiss(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	img, err := c.Get(context.Background(), "/a.png", ResizeOptions{})
	assert.NoError(t, err)
	assert.NotNil(t, img)
	assert.Equal(t, 1, dec.count("/a.png"))
}

func TestDecodeCache_GetReturnsCachedOnSecondCall(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	_, err := c.Get(context.Background(), "/a.png", ResizeOptions{})
	assert.NoError(t, err)
	_, err = c.Get(context.Background(), "/a.png", ResizeOptions{})
	assert.NoError(t, err)

	assert.Equal(t, 1, dec.count("/a.png"), "second call should hit the cache, not decode again")
}

func TestDecodeCache_DistinctOptionsAreDistinctEntries(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	_, err := c.Get(context.Background(), "/a.png", ResizeOptions{})
	assert.NoError(t, err)
	_, err = c.Get(context.Background(), "/a.png", ResizeOptions{MaxWidth: 100})
	assert.NoError(t, err)

	assert.Equal(t, 2, dec.count("/a.png"))
	size, _ := c.Stats()
	assert.Equal(t, 2, size)
}

func TestDecodeCache_ConcurrentMissesShareOneDecode(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Get(context.Background(), "/shared.png", ResizeOptions{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, dec.count("/shared.png"), "concurrent misses on the same key must de-duplicate through singleflight")
}

func TestDecodeCache_PropagatesDecodeError(t *testing.T) {
	dec := newCountingDecoder()
	dec.err = errors.New("disk error")
	c := NewDecodeCache(dec, 10, NewClock())

	_, err := c.Get(context.Background(), "/broken.png", ResizeOptions{})
	assert.Error(t, err)
}

func TestDecodeCache_OriginalUsesUnmodifiedFingerprint(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	img, err := c.Original(context.Background(), "/a.png")
	assert.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestDecodeCache_ClearRemovesOnlyThatPath(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	_, _ = c.Get(context.Background(), "/a.png", ResizeOptions{})
	_, _ = c.Get(context.Background(), "/b.png", ResizeOptions{})

	c.Clear("/a.png")

	_, _ = c.Get(context.Background(), "/a.png", ResizeOptions{})
	_, _ = c.Get(context.Background(), "/b.png", ResizeOptions{})

	assert.Equal(t, 2, dec.count("/a.png"), "cleared path should decode again")
	assert.Equal(t, 1, dec.count("/b.png"), "untouched path should still be cached")
}

func TestDecodeCache_ClearAllRemovesEverything(t *testing.T) {
	dec := newCountingDecoder()
	c := NewDecodeCache(dec, 10, NewClock())

	_, _ = c.Get(context.Background(), "/a.png", ResizeOptions{})
	c.ClearAll()
	size, _ := c.Stats()
	assert.Equal(t, 0, size)
}

func TestDecodeCache_DefaultSizeAppliedWhenNonPositive(t *testing.T) {
	c := NewDecodeCache(newCountingDecoder(), 0, NewClock())
	_, maxSize := c.Stats()
	assert.Equal(t, DefaultDecodeCacheSize, maxSize)
}

func TestResizeOptions_FingerprintIsStableForEquivalentOptions(t *testing.T) {
	a := ResizeOptions{MaxWidth: 800, MaxHeight: 600}
	b := ResizeOptions{MaxWidth: 800, MaxHeight: 600}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestResizeOptions_EffectiveFactor_NoneMeansNoResize(t *testing.T) {
	assert.Equal(t, 1.0, ResizeOptions{}.EffectiveFactor(1000, 1000))
}

func TestResizeOptions_EffectiveFactor_ExplicitFactorClampedToOne(t *testing.T) {
	assert.Equal(t, 1.0, ResizeOptions{DownsampleFactor: 2}.EffectiveFactor(1000, 1000))
	assert.Equal(t, 0.5, ResizeOptions{DownsampleFactor: 0.5}.EffectiveFactor(1000, 1000))
}

func TestResizeOptions_EffectiveFactor_BoundsPickTighterDimension(t *testing.T) {
	// Original 2000x1000. MaxWidth=1000 -> ratio 2; MaxHeight=200 -> ratio 5.
	// The tighter (larger) ratio wins, giving factor 1/5.
	factor := ResizeOptions{MaxWidth: 1000, MaxHeight: 200}.EffectiveFactor(2000, 1000)
	assert.InDelta(t, 0.2, factor, 1e-9)
}
