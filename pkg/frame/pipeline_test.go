package frame

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDecodedProvider struct {
	img Image
	err error
}

func (f *fakeDecodedProvider) Original(_ context.Context, _ string) (Image, error) {
	return f.img, f.err
}

type fakeScaleProvider struct {
	scale float64
}

func (f *fakeScaleProvider) DisplayScale(_ context.Context, _ string, original Image) (Image, float64, error) {
	return original, f.scale, nil
}

type fakeFrameStore struct {
	next int
}

func (f *fakeFrameStore) Register(rec FrameRecord) FrameRecord {
	f.next++
	rec.ID = "frame-test"
	return rec
}

func TestExtractFrame_HappyPath(t *testing.T) {
	decode := &fakeDecodedProvider{img: darkSquareImage(60, 20)}
	scale := &fakeScaleProvider{scale: 1.0}
	store := &fakeFrameStore{}

	result, err := ExtractFrame(context.Background(), decode, scale, store, "/tmp/a.png", Vector2{X: 30, Y: 30}, DefaultProcessingConfig(), "frame-a")
	assert.NoError(t, err)
	assert.Equal(t, "frame-test", result.Record.ID)
	assert.Equal(t, "frame-a", result.Record.Label)
	assert.NotNil(t, result.Crop)
	assert.Greater(t, result.Record.Width, 0.0)
	assert.Greater(t, result.Record.Height, 0.0)
}

func TestExtractFrame_InvalidConfigFailsBeforeDecode(t *testing.T) {
	decode := &fakeDecodedProvider{img: darkSquareImage(60, 20)}
	scale := &fakeScaleProvider{scale: 1.0}
	store := &fakeFrameStore{}

	cfg := DefaultProcessingConfig()
	cfg.MaxPixels = 0

	_, err := ExtractFrame(context.Background(), decode, scale, store, "/tmp/a.png", Vector2{X: 30, Y: 30}, cfg, "frame-a")
	assert.Equal(t, InvalidInput, KindOf(err))
}

func TestExtractFrame_DecodeFailurePropagatesPathAndSeed(t *testing.T) {
	decode := &fakeDecodedProvider{err: newErr(IoError, "Decode", "", Vector2{}, errors.New("disk error"))}
	scale := &fakeScaleProvider{scale: 1.0}
	store := &fakeFrameStore{}

	seed := Vector2{X: 5, Y: 6}
	_, err := ExtractFrame(context.Background(), decode, scale, store, "/tmp/broken.png", seed, DefaultProcessingConfig(), "frame-a")
	assert.Equal(t, IoError, KindOf(err))

	var fe *Error
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "/tmp/broken.png", fe.Path)
	assert.Equal(t, seed, fe.Seed)
}

func TestExtractFrame_SeedOnWhiteFailsEmptyRegion(t *testing.T) {
	decode := &fakeDecodedProvider{img: darkSquareImage(60, 20)}
	scale := &fakeScaleProvider{scale: 1.0}
	store := &fakeFrameStore{}

	_, err := ExtractFrame(context.Background(), decode, scale, store, "/tmp/a.png", Vector2{X: 0, Y: 0}, DefaultProcessingConfig(), "frame-a")
	assert.Equal(t, EmptyRegion, KindOf(err))
}

func TestExtractFrame_RecordCarriesScaleFactor(t *testing.T) {
	decode := &fakeDecodedProvider{img: darkSquareImage(60, 20)}
	scale := &fakeScaleProvider{scale: 0.5} // display is half of original
	store := &fakeFrameStore{}

	result, err := ExtractFrame(context.Background(), decode, scale, store, "/tmp/a.png", Vector2{X: 30, Y: 30}, DefaultProcessingConfig(), "frame-a")
	assert.NoError(t, err)
	assert.Equal(t, 0.5, result.Record.ScaleFactorDisplayToOriginal)
}
