package sysctl

import (
	"errors"
	"fmt"
)

var (
	// ErrSystem reports that the operating system rejected a query.
	ErrSystem = errors.New("system error")
	// ErrNotFound reports that a key or name does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformedEncoding reports a buffer that is not valid text.
	ErrMalformedEncoding = errors.New("malformed encoding")
	// ErrSizeMismatch reports a buffer whose length differs from the
	// width of the requested integer type.
	ErrSizeMismatch = errors.New("size mismatch")
)

// classify wraps err so that it always matches ErrNotFound or ErrSystem.
func classify(what string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSystem) {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("%s: %w: %w", what, ErrSystem, err)
}
