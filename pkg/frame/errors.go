package frame

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways a pipeline stage can fail. It is a taxonomy,
// not a set of distinct Go types, so callers can switch on an *Error's Kind
// field after an errors.As (or on KindOf(err)).
type ErrorKind string

// Error kinds returned by the pipeline.
const (
	InvalidInput   ErrorKind = "InvalidInput"
	NotFound       ErrorKind = "NotFound"
	DecodeFailed   ErrorKind = "DecodeFailed"
	EmptyRegion    ErrorKind = "EmptyRegion"
	RegionTooLarge ErrorKind = "RegionTooLarge"
	RegionTooSmall ErrorKind = "RegionTooSmall"
	CropOutOfImage ErrorKind = "CropOutOfImage"
	IoError        ErrorKind = "IoError"
	Cancelled      ErrorKind = "Cancelled"

	// OutOfBounds is flood-fill's specific kind for a seed that does not lie
	// within the image; the coarser taxonomy folds this case into
	// InvalidInput, so callers that only care about the coarse taxonomy may
	// treat OutOfBounds as a variant of InvalidInput.
	OutOfBounds ErrorKind = "OutOfBounds"
)

// Error carries an ErrorKind plus the request context that produced it, so
// logging can record (operation, path, seed, error-kind, message) without
// re-deriving it from a wrapped chain.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Seed Vector2
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (path=%q seed=%v): %v", e.Op, e.Kind, e.Path, e.Seed, e.Err)
	}
	return fmt.Sprintf("%s: %s (path=%q seed=%v)", e.Op, e.Kind, e.Path, e.Seed)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so errors.Is
// between two *Error values ignores Op, Path, Seed and the wrapped cause.
func (e *Error) Is(target error) bool {
	k, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == k.Kind
}

// newErr builds an *Error for the given stage.
func newErr(kind ErrorKind, op, path string, seed Vector2, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Seed: seed, Err: err}
}

// KindOf returns the ErrorKind carried by err, or "" if err is not (or does
// not wrap) a *Error.
func KindOf(err error) ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
