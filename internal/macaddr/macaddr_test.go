package macaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff"},
		{"aabbccddeeff", "aa:bb:cc:dd:ee:ff"},
		{"AA-BB-CC-DD-EE-FF", "aa:bb:cc:dd:ee:ff"},
		{"de-ad-be-ef-00-01", "de:ad:be:ef:00:01"},
		{"aabb.ccdd.eeff", "aa:bb:cc:dd:ee:ff"},
		{" 0:1:2 ", "01:2"},
		{"abc", "ab:c"},
		{"a", "a"},
		{"", ""},
		{"zz-yy", ""},
		{"00:11:22:33:44:55:66:77", "00:11:22:33:44:55:66:77"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Canonicalize(tc.raw), "Canonicalize(%q)", tc.raw)
	}
}

func TestAddressEqualIgnoresPunctuationAndCase(t *testing.T) {
	variants := []string{
		"AA:BB:CC:DD:EE:FF",
		"aa-bb-cc-dd-ee-ff",
		"AaBbCcDdEeFf",
		"aabb.ccdd.eeff",
	}

	base := New(variants[0])
	for _, v := range variants[1:] {
		assert.True(t, base.Equal(New(v)), "%q should equal %q", v, variants[0])
		assert.Equal(t, base.String(), New(v).String())
	}

	assert.False(t, base.Equal(New("aa:bb:cc:dd:ee:00")))
}

func TestAddressKeepsRaw(t *testing.T) {
	a := New("AA-BB-CC-DD-EE-FF")
	_ = a.String()
	assert.Equal(t, "AA-BB-CC-DD-EE-FF", a.Raw())
}
