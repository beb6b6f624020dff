package sysctl

import (
	"fmt"
	"strconv"
	"strings"
)

// Top-level identifiers and second-level names from <sys/sysctl.h>.
const (
	CtlKern = 1
	CtlHW   = 6

	KernOSVersion = 65

	HWMachine  = 1
	HWModel    = 2
	HWMemSize  = 24
	HWAvailCPU = 25

	// MaxNameLen is the largest number of components in a key path.
	MaxNameLen = 12
)

// KeyPath is the numeric address of a single system attribute.
type KeyPath []int32

var (
	PathOSVersion = NewKeyPath(CtlKern, KernOSVersion)
	PathMachine   = NewKeyPath(CtlHW, HWMachine)
	PathModel     = NewKeyPath(CtlHW, HWModel)
	PathMemSize   = NewKeyPath(CtlHW, HWMemSize)
	PathAvailCPU  = NewKeyPath(CtlHW, HWAvailCPU)
)

// NewKeyPath copies keys into a new KeyPath.
func NewKeyPath(keys ...int32) KeyPath {
	p := make(KeyPath, len(keys))
	copy(p, keys)
	return p
}

// ParseKeyPath parses the dotted numeric form produced by KeyPath.String,
// for example "6.24".
func ParseKeyPath(s string) (KeyPath, error) {
	if s == "" {
		return nil, fmt.Errorf("empty key path")
	}
	parts := strings.Split(s, ".")
	if len(parts) > MaxNameLen {
		return nil, fmt.Errorf("key path %q has %d components, max %d", s, len(parts), MaxNameLen)
	}

	p := make(KeyPath, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid key path component %q: %w", part, err)
		}
		p = append(p, int32(n))
	}
	return p, nil
}

// IsNumeric reports whether s looks like a numeric key path rather than a
// dotted attribute name.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

func (p KeyPath) String() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = strconv.FormatInt(int64(k), 10)
	}
	return strings.Join(parts, ".")
}
