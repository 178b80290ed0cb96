package seedcrop

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/seedcrop/seedcrop/pkg/frame"
	"github.com/seedcrop/seedcrop/util/log"
)

// FileDecoder implements frame.Decoder by reading a path off disk and
// sniffing its content type from the extension, falling back to format
// detection.
type FileDecoder struct{}

// Decode reads path and decodes it into a frame.Image.
func (FileDecoder) Decode(_ context.Context, path string) (frame.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	return frame.DecodeImage(data, contentType)
}

// OSFileWriter implements frame.FileWriter against the local filesystem,
// refusing to clobber an existing file unless overwrite is set.
type OSFileWriter struct{}

// Write persists data at path.
func (OSFileWriter) Write(_ context.Context, path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, os.ErrExist)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

var unsafePathChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LabelSanitizer turns a frame label into a filesystem-safe default
// filename: unsafe runs collapse to "_", and a ".png" extension is
// appended when the label did not already name an image format.
type LabelSanitizer struct{}

// Sanitize implements frame.PathSanitizer.
func (LabelSanitizer) Sanitize(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		trimmed = "frame"
	}
	safe := unsafePathChars.ReplaceAllString(trimmed, "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "frame"
	}
	switch strings.ToLower(filepath.Ext(safe)) {
	case ".png", ".jpg", ".jpeg":
		return safe
	default:
		return safe + ".png"
	}
}

// StdLogger implements frame.Logger over util/log, recording the operation,
// path, seed, error kind, and message for every failure.
type StdLogger struct{}

// LogError writes one line per failure.
func (StdLogger) LogError(op, path string, seed frame.Vector2, kind frame.ErrorKind, message string) {
	log.Printf("op=%s path=%q seed=%s kind=%s msg=%s", op, path, seed, kind, message)
}
