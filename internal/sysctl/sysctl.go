// Package sysctl reads typed system attributes from the kernel's sysctl
// key/value service.
package sysctl

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Backend is the raw kernel interface.
//
// Read copies the value at path into buf and returns the number of bytes
// written. With a nil buf it returns the number of bytes the value needs.
//
// NameToPath writes the key path for a dotted attribute name into path and
// returns how many components it used.
type Backend interface {
	Read(path KeyPath, buf []byte) (int, error)
	NameToPath(name string, path []int32) (int, error)
}

// Querier performs sysctl queries against a Backend. It holds no state of
// its own and is safe for concurrent use.
type Querier struct {
	backend Backend
}

// New returns a Querier backed by the running kernel.
func New() *Querier {
	return &Querier{backend: kernelBackend{}}
}

// NewWithBackend returns a Querier that uses b.
func NewWithBackend(b Backend) *Querier {
	return &Querier{backend: b}
}

// Query returns the raw value stored at path.
//
// The buffer is sized by asking the kernel first and then reading into an
// allocation of exactly that size. If the value shrinks between the two
// calls the result is trimmed; if it grows the query fails with ErrSystem.
func (q *Querier) Query(path KeyPath) ([]byte, error) {
	what := "sysctl " + path.String()
	if len(path) == 0 {
		return nil, fmt.Errorf("sysctl: %w: empty key path", ErrNotFound)
	}

	size, err := q.backend.Read(path, nil)
	if err != nil {
		return nil, classify(what, err)
	}
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	n, err := q.backend.Read(path, buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", what, ErrSystem, err)
	}
	if n > size {
		return nil, fmt.Errorf("%s: %w: value grew from %d to %d bytes", what, ErrSystem, size, n)
	}
	return buf[:n], nil
}

// Resolve translates a dotted attribute name such as
// "machdep.cpu.brand_string" into its key path.
func (q *Querier) Resolve(name string) (KeyPath, error) {
	what := fmt.Sprintf("sysctl name %q", name)

	buf := make([]int32, MaxNameLen)
	n, err := q.backend.NameToPath(name, buf)
	if err != nil {
		return nil, classify(what, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w: resolved to no keys", what, ErrNotFound)
	}
	if n > len(buf) {
		return nil, fmt.Errorf("%s: %w: %d components exceed %d", what, ErrSystem, n, len(buf))
	}
	return NewKeyPath(buf[:n]...), nil
}

// Lookup accepts either a numeric key path ("6.24") or an attribute name
// ("hw.memsize") and returns the key path it designates.
func (q *Querier) Lookup(target string) (KeyPath, error) {
	if IsNumeric(target) {
		return ParseKeyPath(target)
	}
	return q.Resolve(target)
}

// String queries path and decodes the value as text.
func (q *Querier) String(path KeyPath) (string, error) {
	b, err := q.Query(path)
	if err != nil {
		return "", err
	}
	return DecodeString(b)
}

// StringByName resolves name and decodes its value as text.
func (q *Querier) StringByName(name string) (string, error) {
	path, err := q.Resolve(name)
	if err != nil {
		return "", err
	}
	return q.String(path)
}

// Fixed queries path and decodes the value as a T.
func Fixed[T Integer](q *Querier, path KeyPath) (T, error) {
	b, err := q.Query(path)
	if err != nil {
		return 0, err
	}
	v, err := DecodeFixed[T](b)
	if err != nil {
		return 0, fmt.Errorf("sysctl %s: %w", path, err)
	}
	return v, nil
}

// Kinds accepted by Format.
const (
	KindString = "string"
	KindInt32  = "int32"
	KindUint32 = "uint32"
	KindInt64  = "int64"
	KindUint64 = "uint64"
	KindHex    = "hex"
)

// Format queries path and renders the value as kind.
func (q *Querier) Format(path KeyPath, kind string) (string, error) {
	switch kind {
	case KindString, "":
		return q.String(path)
	case KindInt32:
		v, err := Fixed[int32](q, path)
		return strconv.FormatInt(int64(v), 10), err
	case KindUint32:
		v, err := Fixed[uint32](q, path)
		return strconv.FormatUint(uint64(v), 10), err
	case KindInt64:
		v, err := Fixed[int64](q, path)
		return strconv.FormatInt(v, 10), err
	case KindUint64:
		v, err := Fixed[uint64](q, path)
		return strconv.FormatUint(v, 10), err
	case KindHex:
		b, err := q.Query(path)
		return hex.EncodeToString(b), err
	default:
		return "", fmt.Errorf("unknown value type %q", kind)
	}
}

// IsKind reports whether Format understands kind.
func IsKind(kind string) bool {
	switch kind {
	case KindString, KindInt32, KindUint32, KindInt64, KindUint64, KindHex:
		return true
	}
	return false
}
