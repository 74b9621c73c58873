package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gojson "github.com/shan-anand/gojson"
)

func TestConfigDupKeyPolicyDefaultsToReject(t *testing.T) {
	cfg := NewConfig()
	p, err := cfg.dupKeyPolicy()
	require.NoError(t, err)
	assert.Equal(t, gojson.DupReject, p)
}

func TestConfigDupKeyPolicyAllValues(t *testing.T) {
	for _, tc := range []struct {
		flag string
		want gojson.DupKeyPolicy
	}{
		{"accept", gojson.DupAccept},
		{"ACCEPT", gojson.DupAccept},
		{"ignore", gojson.DupIgnore},
		{"append", gojson.DupAppend},
		{"reject", gojson.DupReject},
	} {
		cfg := NewConfig()
		cfg.Dup = tc.flag
		p, err := cfg.dupKeyPolicy()
		require.NoError(t, err)
		assert.Equal(t, tc.want, p)
	}
}

func TestConfigDupKeyPolicyRejectsUnknown(t *testing.T) {
	cfg := NewConfig()
	cfg.Dup = "bogus"
	_, err := cfg.dupKeyPolicy()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestConfigOutputFormat(t *testing.T) {
	cfg := NewConfig()
	show, _, err := cfg.outputFormat()
	require.NoError(t, err)
	assert.False(t, show)

	cfg.ShowOutput = "compact"
	show, format, err := cfg.outputFormat()
	require.NoError(t, err)
	assert.True(t, show)
	assert.Equal(t, gojson.Compact, format.Type)

	cfg.ShowOutput = "pretty"
	show, format, err = cfg.outputFormat()
	require.NoError(t, err)
	assert.True(t, show)
	assert.Equal(t, gojson.Pretty, format.Type)

	cfg.ShowOutput = "bogus"
	_, _, err = cfg.outputFormat()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestConfigControlWiresFlags(t *testing.T) {
	cfg := NewConfig()
	cfg.AllowFlexKeys = true
	cfg.AllowFlexString = true
	cfg.AllowNocase = true
	cfg.AllowComments = true
	cfg.MaxDepth = 8

	ctrl, err := cfg.control()
	require.NoError(t, err)
	assert.True(t, ctrl.Mode.AllowFlexibleKeys)
	assert.True(t, ctrl.Mode.AllowFlexibleStrings)
	assert.True(t, ctrl.Mode.AllowNocaseValues)
	assert.True(t, ctrl.Mode.AllowComments)
	assert.Equal(t, 8, ctrl.MaxDepth)
}

func TestOpenAndParseDataMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	cfg := NewConfig()
	cfg.Use = "data"
	ctrl, err := cfg.control()
	require.NoError(t, err)

	val, _, err := openAndParse(cfg, path, ctrl)
	require.NoError(t, err)
	a, err := val.Get("a")
	require.NoError(t, err)
	n, _ := a.Int64()
	assert.Equal(t, int64(1), n)
}

func TestOpenAndParseMmapMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	cfg := NewConfig()
	cfg.Use = "mmap"
	ctrl, err := cfg.control()
	require.NoError(t, err)

	val, _, err := openAndParse(cfg, path, ctrl)
	require.NoError(t, err)
	a, err := val.Get("a")
	require.NoError(t, err)
	n, _ := a.Int64()
	assert.Equal(t, int64(1), n)
}

func TestOpenAndParseUnknownUseMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`1`), 0o600))

	cfg := NewConfig()
	cfg.Use = "bogus"
	ctrl, err := cfg.control()
	require.NoError(t, err)

	_, _, err = openAndParse(cfg, path, ctrl)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
}
