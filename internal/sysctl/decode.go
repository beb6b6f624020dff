package sysctl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// Integer lists the fixed-width types DecodeFixed understands.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// DecodeString returns the text in b up to the first NUL byte. An empty
// buffer decodes to "".
func DecodeString(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: value is not valid UTF-8", ErrMalformedEncoding)
	}
	return string(b), nil
}

// DecodeFixed interprets b as a T in native byte order. len(b) must equal
// the width of T exactly.
func DecodeFixed[T Integer](b []byte) (T, error) {
	var v T
	width := int(unsafe.Sizeof(v))
	if len(b) != width {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(b), width)
	}

	switch width {
	case 1:
		v = T(b[0])
	case 2:
		v = T(binary.NativeEndian.Uint16(b))
	case 4:
		v = T(binary.NativeEndian.Uint32(b))
	case 8:
		v = T(binary.NativeEndian.Uint64(b))
	}
	return v, nil
}
