//go:build !darwin || !cgo

package sysctl

import (
	"errors"
	"fmt"
)

type kernelBackend struct{}

func (kernelBackend) Read(KeyPath, []byte) (int, error) {
	return 0, fmt.Errorf("%w: %w", ErrSystem, errors.ErrUnsupported)
}

func (kernelBackend) NameToPath(string, []int32) (int, error) {
	return 0, fmt.Errorf("%w: %w", ErrSystem, errors.ErrUnsupported)
}
