package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountKind(t *testing.T) {
	var s Stats
	s.countKind(KindNull)
	s.countKind(KindBool)
	s.countKind(KindInt)
	s.countKind(KindUint)
	s.countKind(KindDouble)
	s.countKind(KindString)
	s.countKind(KindArray)
	s.countKind(KindObject)

	assert.Equal(t, 1, s.Nulls)
	assert.Equal(t, 1, s.Bools)
	assert.Equal(t, 1, s.Ints)
	assert.Equal(t, 1, s.Uints)
	assert.Equal(t, 1, s.Doubles)
	assert.Equal(t, 1, s.Strings)
	assert.Equal(t, 1, s.Arrays)
	assert.Equal(t, 1, s.Objects)
}

func TestStatsString(t *testing.T) {
	s := Stats{Nulls: 1, Bools: 2, Ints: 3, Keys: 4, MaxDepth: 5, Bytes: 100}
	out := s.String()
	for _, want := range []string{"nulls=1", "bools=2", "ints=3", "keys=4", "max_depth=5", "bytes=100"} {
		assert.True(t, strings.Contains(out, want), "expected %q in %q", want, out)
	}
}

func TestStatsKeysMatchesObjectSizes(t *testing.T) {
	_, stats, err := ParseString(`{"a":{"x":1,"y":2},"b":3}`, NewControl())
	require.NoError(t, err)
	// top-level has 2 keys (a, b), nested object has 2 keys (x, y).
	assert.Equal(t, 4, stats.Keys)
}

func TestStatsMaxDepthMatchesNesting(t *testing.T) {
	_, stats, err := ParseString(`[[[1]]]`, NewControl())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.MaxDepth)
}
