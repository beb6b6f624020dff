// Package macaddr normalizes hardware (MAC-like) address strings.
package macaddr

import "strings"

// Address wraps a raw hardware address string. Two addresses are equal when
// their canonical forms are equal, regardless of punctuation or case in the
// raw input.
type Address struct {
	raw string
}

// New returns an Address for raw. raw is kept as given.
func New(raw string) Address {
	return Address{raw: raw}
}

// Raw returns the address exactly as it was supplied.
func (a Address) Raw() string {
	return a.raw
}

// String returns the canonical colon-separated form.
func (a Address) String() string {
	return Canonicalize(a.raw)
}

// Equal reports whether a and b have the same canonical form.
func (a Address) Equal(b Address) bool {
	return a.String() == b.String()
}

// Canonicalize keeps only the hex digits of raw, lowercases them and groups
// them in pairs separated by colons. The digit count is not validated: an
// odd count leaves a trailing single digit ("abc" -> "ab:c").
func Canonicalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + len(raw)/2)

	n := 0
	for _, r := range strings.ToLower(raw) {
		if !isHex(r) {
			continue
		}
		if n > 0 && n%2 == 0 {
			b.WriteByte(':')
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
