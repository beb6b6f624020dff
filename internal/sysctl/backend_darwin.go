//go:build darwin && cgo

package sysctl

/*
#include <stdlib.h>
#include <sys/types.h>
#include <sys/sysctl.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

type kernelBackend struct{}

func (kernelBackend) Read(path KeyPath, buf []byte) (int, error) {
	if len(path) == 0 {
		return 0, ErrNotFound
	}
	mib := make([]C.int, len(path))
	for i, k := range path {
		mib[i] = C.int(k)
	}

	var dst unsafe.Pointer
	size := C.size_t(len(buf))
	if len(buf) > 0 {
		dst = unsafe.Pointer(&buf[0])
	}

	rc, err := C.sysctl(&mib[0], C.u_int(len(mib)), dst, &size, nil, 0)
	if rc != 0 {
		return 0, errnoError(err)
	}
	return int(size), nil
}

func (kernelBackend) NameToPath(name string, path []int32) (int, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: no room for key path", ErrSystem)
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	mib := make([]C.int, len(path))
	size := C.size_t(len(mib))
	rc, err := C.sysctlnametomib(cname, &mib[0], &size)
	if rc != 0 {
		return 0, errnoError(err)
	}

	n := int(size)
	for i := 0; i < n && i < len(path); i++ {
		path[i] = int32(mib[i])
	}
	return n, nil
}

func errnoError(err error) error {
	if err == nil {
		return ErrSystem
	}
	if errors.Is(err, unix.ENOENT) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrSystem, err)
}
