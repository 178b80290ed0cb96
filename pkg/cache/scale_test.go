package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleCache_WithinBoundsIsReferenceEqualPassthrough(t *testing.T) {
	c := NewScaleCache(3, 1920, 1080, NewClock())
	original := &fakeImage{w: 800, h: 600}

	display, scale, err := c.DisplayScale(context.Background(), "/a.png", original)
	assert.NoError(t, err)
	assert.Same(t, original, display.(*fakeImage))
	assert.Equal(t, 1.0, scale)
}

func TestScaleCache_OversizedImageIsDownscaled(t *testing.T) {
	c := NewScaleCache(3, 1920, 1080, NewClock())
	original := &fakeImage{w: 3840, h: 2160}

	display, scale, err := c.DisplayScale(context.Background(), "/a.png", original)
	assert.NoError(t, err)
	assert.Less(t, scale, 1.0)
	assert.LessOrEqual(t, display.Bounds().Dx(), 1920)
	assert.LessOrEqual(t, display.Bounds().Dy(), 1080)
}

func TestScaleCache_PicksTighterDimensionWhenAspectDiffers(t *testing.T) {
	c := NewScaleCache(3, 1000, 1000, NewClock())
	// 4000x1000: width ratio 4, height ratio 1. Width is the binding
	// constraint, so scale should be 0.25.
	original := &fakeImage{w: 4000, h: 1000}

	_, scale, err := c.DisplayScale(context.Background(), "/a.png", original)
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, scale, 1e-9)
}

func TestScaleCache_MemoizesPerPath(t *testing.T) {
	c := NewScaleCache(3, 1920, 1080, NewClock())
	first := &fakeImage{w: 3840, h: 2160}
	second := &fakeImage{w: 100, h: 100}

	display1, _, err := c.DisplayScale(context.Background(), "/a.png", first)
	assert.NoError(t, err)
	display2, _, err := c.DisplayScale(context.Background(), "/a.png", second)
	assert.NoError(t, err)

	assert.Same(t, display1.(*fakeImage), display2.(*fakeImage), "second call for the same path should return the memoized entry, ignoring the new original")
}

func TestScaleCache_ClearInvalidatesOnePath(t *testing.T) {
	c := NewScaleCache(3, 1920, 1080, NewClock())
	original := &fakeImage{w: 3840, h: 2160}

	_, firstScale, _ := c.DisplayScale(context.Background(), "/a.png", original)
	c.Clear("/a.png")

	smaller := &fakeImage{w: 100, h: 100}
	display, secondScale, err := c.DisplayScale(context.Background(), "/a.png", smaller)
	assert.NoError(t, err)
	assert.Same(t, smaller, display.(*fakeImage))
	assert.NotEqual(t, firstScale, secondScale)
}

func TestScaleCache_ClearAllRemovesEveryPath(t *testing.T) {
	c := NewScaleCache(3, 1920, 1080, NewClock())
	_, _, _ = c.DisplayScale(context.Background(), "/a.png", &fakeImage{w: 3840, h: 2160})
	_, _, _ = c.DisplayScale(context.Background(), "/b.png", &fakeImage{w: 3840, h: 2160})

	c.ClearAll()

	smaller := &fakeImage{w: 10, h: 10}
	display, scale, err := c.DisplayScale(context.Background(), "/a.png", smaller)
	assert.NoError(t, err)
	assert.Same(t, smaller, display.(*fakeImage))
	assert.Equal(t, 1.0, scale)
}

func TestScaleCache_DefaultsAppliedWhenNonPositive(t *testing.T) {
	c := NewScaleCache(0, 0, 0, NewClock())
	original := &fakeImage{w: DefaultMaxDisplayWidth + 100, h: 100}

	_, scale, err := c.DisplayScale(context.Background(), "/a.png", original)
	assert.NoError(t, err)
	assert.Less(t, scale, 1.0)
}
