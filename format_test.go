package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactFormatDefaults(t *testing.T) {
	f := CompactFormat()
	assert.Equal(t, Compact, f.Type)
	assert.Equal(t, ": ", f.KeySep)
	assert.Equal(t, ", ", f.ItemSep)
}

func TestPrettyFormatDefaultsWidthWhenNonPositive(t *testing.T) {
	for _, width := range []int{0, -1, -100} {
		f := PrettyFormat(width)
		assert.Equal(t, Pretty, f.Type)
		assert.Equal(t, 2, f.Indent)
	}
}

func TestPrettyFormatHonorsExplicitWidth(t *testing.T) {
	f := PrettyFormat(4)
	assert.Equal(t, 4, f.Indent)
}

func TestPrettyFormatNestedIndentation(t *testing.T) {
	obj := NewObject()
	inner := NewObject()
	_ = inner.Set("b", Int(2))
	_ = obj.Set("a", inner)

	out, err := obj.Encode(PrettyFormat(2))
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": 2\n  }\n}", out)
}
