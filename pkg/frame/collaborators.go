package frame

import "context"

// Decoder turns raw image bytes on disk into a decoded Image.
type Decoder interface {
	Decode(ctx context.Context, path string) (Image, error)
}

// FileWriter persists bytes to a path, reporting whether the target already
// existed and could not be overwritten.
type FileWriter interface {
	Write(ctx context.Context, path string, data []byte, overwrite bool) error
}

// PathSanitizer produces a filesystem-safe default filename from a frame
// label.
type PathSanitizer interface {
	Sanitize(label string) string
}

// Clock supplies the strictly-increasing access ticks the LRU caches use to
// order entries.
type Clock interface {
	Tick() int64
}

// DecodedProvider is the decode cache's contract as consumed by the seed
// pipeline: it returns the original decoded image for a path, decoding and
// caching on miss.
type DecodedProvider interface {
	Original(ctx context.Context, path string) (Image, error)
}

// ScaleProvider is the scale cache's contract: it returns the display-space
// sibling of original (identical to processing, since this design collapses
// the two) and the scale factor between them, display = original x factor
// (so the pipeline divides display coordinates by it to reach original
// ones), computing and memoizing it on miss.
type ScaleProvider interface {
	DisplayScale(ctx context.Context, path string, original Image) (display Image, scaleDisplayToOriginal float64, err error)
}

// FrameStore is the frame registry's contract as consumed by the seed
// pipeline: it assigns an id and stores the record.
type FrameStore interface {
	Register(rec FrameRecord) FrameRecord
}

// Logger is the ambient logging collaborator: the core records (operation,
// path, seed, error-kind, message) with no fallback behavior, and never
// decides where those lines go.
type Logger interface {
	LogError(op, path string, seed Vector2, kind ErrorKind, message string)
}
