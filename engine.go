// Package seedcrop is the request-surface facade: it wires pkg/frame's
// pipeline to pkg/cache's decode/scale caches and pkg/registry's frame
// registry, exposing extractFrame, updateFrame, rotateFrame,
// loadImageForDisplay, clearCache, clearImageCache, getImageCacheStats, and
// saveFrameToPath as Go methods. Desktop-shell transport, directory walking,
// and UI presentation are not implemented here; cmd/seedcrop is a minimal
// CLI exerciser, not a full interactive shell.
package seedcrop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/seedcrop/seedcrop/pkg/cache"
	"github.com/seedcrop/seedcrop/pkg/frame"
	"github.com/seedcrop/seedcrop/pkg/registry"
)

// Engine bundles the core pipeline with its caches and registry.
type Engine struct {
	decoder   frame.Decoder
	writer    frame.FileWriter
	sanitizer frame.PathSanitizer
	logger    frame.Logger

	decodeCache *cache.DecodeCache
	scaleCache  *cache.ScaleCache
	registry    *registry.FrameRegistry
}

// Options configures NewEngine's cache sizing; zero values take the
// package defaults.
type Options struct {
	DecodeCacheSize  int
	ScaleCacheSize   int
	MaxDisplayWidth  int
	MaxDisplayHeight int
}

// NewEngine wires an Engine around the supplied collaborators.
func NewEngine(decoder frame.Decoder, writer frame.FileWriter, sanitizer frame.PathSanitizer, logger frame.Logger, opts Options) *Engine {
	clock := cache.NewClock()
	return &Engine{
		decoder:     decoder,
		writer:      writer,
		sanitizer:   sanitizer,
		logger:      logger,
		decodeCache: cache.NewDecodeCache(decoder, opts.DecodeCacheSize, clock),
		scaleCache:  cache.NewScaleCache(opts.ScaleCacheSize, opts.MaxDisplayWidth, opts.MaxDisplayHeight, clock),
		registry:    registry.NewFrameRegistry(),
	}
}

// ExtractFrame implements the extractFrame operation.
func (e *Engine) ExtractFrame(ctx context.Context, path string, seed frame.Vector2, cfg frame.ProcessingConfig, label string) (frame.FrameRecord, frame.Image, error) {
	result, err := frame.ExtractFrame(ctx, e.decodeCache, e.scaleCache, e.registry, path, seed, cfg, label)
	if err != nil {
		e.logFailure("extractFrame", path, seed, err)
		return frame.FrameRecord{}, nil, err
	}
	return result.Record, result.Crop, nil
}

// UpdateFrame implements the updateFrame operation.
func (e *Engine) UpdateFrame(id string, patch frame.FramePatch) (frame.FrameRecord, error) {
	rec, ok := e.registry.Update(id, patch)
	if !ok {
		err := newNotFound("updateFrame", id)
		e.logFailure("updateFrame", id, frame.Vector2{}, err)
		return frame.FrameRecord{}, err
	}
	return rec, nil
}

// RotateFrame implements the rotateFrame operation.
func (e *Engine) RotateFrame(id string) (frame.FrameRecord, error) {
	rec, ok := e.registry.Rotate(id)
	if !ok {
		err := newNotFound("rotateFrame", id)
		e.logFailure("rotateFrame", id, frame.Vector2{}, err)
		return frame.FrameRecord{}, err
	}
	return rec, nil
}

// DisplayImage is loadImageForDisplay's result shape.
type DisplayImage struct {
	ImageBytes                    []byte
	Width, Height                 int
	OriginalWidth, OriginalHeight int
}

// LoadImageForDisplay implements the loadImageForDisplay operation: it is
// the one surface that converts a filesystem "not found" into the NotFound
// kind; every other stage surfaces its own original kind.
func (e *Engine) LoadImageForDisplay(ctx context.Context, path string, opts cache.ResizeOptions) (DisplayImage, error) {
	original, err := e.decodeCache.Original(ctx, path)
	if err != nil {
		wrapped := asNotFound("loadImageForDisplay", path, err)
		e.logFailure("loadImageForDisplay", path, frame.Vector2{}, wrapped)
		return DisplayImage{}, wrapped
	}
	ob := original.Bounds()

	variant, err := e.decodeCache.Get(ctx, path, opts)
	if err != nil {
		wrapped := asNotFound("loadImageForDisplay", path, err)
		e.logFailure("loadImageForDisplay", path, frame.Vector2{}, wrapped)
		return DisplayImage{}, wrapped
	}
	vb := variant.Bounds()

	var buf bytes.Buffer
	if err := variant.Encode(&buf, "png"); err != nil {
		wrapped := fmt.Errorf("encoding display image: %w", err)
		e.logFailure("loadImageForDisplay", path, frame.Vector2{}, wrapped)
		return DisplayImage{}, wrapped
	}

	return DisplayImage{
		ImageBytes:     buf.Bytes(),
		Width:          vb.Dx(),
		Height:         vb.Dy(),
		OriginalWidth:  ob.Dx(),
		OriginalHeight: ob.Dy(),
	}, nil
}

// ClearCache implements clearCache: it clears the decode, scale, and
// derived caches for path, or globally when path is empty.
func (e *Engine) ClearCache(path string) {
	if path == "" {
		e.decodeCache.ClearAll()
		e.scaleCache.ClearAll()
		return
	}
	e.decodeCache.Clear(path)
	e.scaleCache.Clear(path)
}

// ClearImageCache implements clearImageCache: decode cache only.
func (e *Engine) ClearImageCache(path string) {
	if path == "" {
		e.decodeCache.ClearAll()
		return
	}
	e.decodeCache.Clear(path)
}

// GetImageCacheStats implements getImageCacheStats.
func (e *Engine) GetImageCacheStats() (size, maxSize int) {
	return e.decodeCache.Stats()
}

// SaveFrameToPath implements saveFrameToPath: it encodes crop to PNG and
// writes it via the FileWriter collaborator, returning the final path.
func (e *Engine) SaveFrameToPath(ctx context.Context, rec frame.FrameRecord, crop frame.Image, path string) (string, error) {
	if path == "" {
		path = e.sanitizer.Sanitize(rec.Label)
	}

	var buf bytes.Buffer
	if err := crop.Encode(&buf, "png"); err != nil {
		wrapped := fmt.Errorf("encoding frame crop: %w", err)
		e.logFailure("saveFrameToPath", path, frame.Vector2{}, wrapped)
		return "", wrapped
	}

	if err := e.writer.Write(ctx, path, buf.Bytes(), false); err != nil {
		e.logFailure("saveFrameToPath", path, frame.Vector2{}, err)
		return "", err
	}
	return path, nil
}

func (e *Engine) logFailure(op, path string, seed frame.Vector2, err error) {
	if e.logger == nil {
		return
	}
	kind := frame.KindOf(err)
	if kind == "" {
		kind = frame.IoError
	}
	e.logger.LogError(op, path, seed, kind, err.Error())
}

func newNotFound(op, id string) error {
	return &frame.Error{Kind: frame.NotFound, Op: op, Err: fmt.Errorf("%w: frame id %q", errNotFound, id)}
}

func asNotFound(op, path string, err error) error {
	if frame.KindOf(err) != "" || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return &frame.Error{Kind: frame.NotFound, Op: op, Path: path, Err: fmt.Errorf("%w: %v", errNotFound, err)}
}

var errNotFound = errors.New(string(frame.NotFound))
