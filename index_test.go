package optix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Positions refer to the NOA list of
// ["--afl", "--bfl=42", "pos1", "--cfl", "pos2", "--dfl", "value", "pos3"]
// where the NOAs are "pos1"@1, "pos2"@2 and "pos3"@3.
func TestIndexMatch(t *testing.T) {
	total := 3

	assert.True(t, ForwardIndex(1).Match(1, total))
	assert.False(t, ForwardIndex(1).Match(2, total))
	assert.False(t, ForwardIndex(4).Match(4, total))

	assert.True(t, BackwardIndex(1).Match(3, total))
	assert.False(t, BackwardIndex(1).Match(1, total))

	assert.True(t, ListIndex(1, 3).Match(1, total))
	assert.True(t, ListIndex(1, 3).Match(3, total))
	assert.False(t, ListIndex(1, 3).Match(2, total))

	assert.True(t, ExceptIndex(2).Match(1, total))
	assert.True(t, ExceptIndex(2).Match(3, total))
	assert.False(t, ExceptIndex(2).Match(2, total))

	assert.True(t, GreaterIndex(1).Match(2, total))
	assert.True(t, GreaterIndex(1).Match(3, total))
	assert.False(t, GreaterIndex(1).Match(1, total))

	assert.True(t, LessIndex(2).Match(1, total))
	assert.False(t, LessIndex(2).Match(2, total))

	assert.True(t, AnywhereIndex().Match(1, total))
	assert.True(t, AnywhereIndex().Match(3, total))

	assert.False(t, Index{}.Match(1, total))
}

func TestParseIndex(t *testing.T) {
	cases := []struct {
		spec string
		want Index
	}{
		{"3", ForwardIndex(3)},
		{"@3", ForwardIndex(3)},
		{"-3", BackwardIndex(3)},
		{"[1,3]", ListIndex(1, 3)},
		{"-[2]", ExceptIndex(2)},
		{">2", GreaterIndex(2)},
		{"<4", LessIndex(4)},
		{"*", AnywhereIndex()},
		{"0", AnywhereIndex()},
	}
	for _, c := range cases {
		got, err := ParseIndex(c.spec)
		assert.NoError(t, err, "spec %q", c.spec)
		assert.Equal(t, c.want, got, "spec %q", c.spec)
	}
}

func TestParseIndexRejects(t *testing.T) {
	for _, spec := range []string{"", "@", "x", "-x", "[]", "[1,x]", ">", "-[", "[1"} {
		_, err := ParseIndex(spec)
		assert.ErrorIs(t, err, ErrInvalidIndex, "spec %q", spec)
	}
}

func TestIndexString(t *testing.T) {
	assert.Equal(t, "3", ForwardIndex(3).String())
	assert.Equal(t, "-1", BackwardIndex(1).String())
	assert.Equal(t, "[1, 3]", ListIndex(1, 3).String())
	assert.Equal(t, "-[2]", ExceptIndex(2).String())
	assert.Equal(t, ">2", GreaterIndex(2).String())
	assert.Equal(t, "<4", LessIndex(4).String())
	assert.Equal(t, "*", AnywhereIndex().String())
}
