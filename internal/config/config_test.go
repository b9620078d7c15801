package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "keysift.yaml", "input: notes.txt\noutput: keys.out\nmax_bytes: 123\naudit: true\n")
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.Input)
	assert.Equal(t, "notes.txt", *cfg.Input)
	require.NotNil(t, cfg.Output)
	assert.Equal(t, "keys.out", *cfg.Output)
	require.NotNil(t, cfg.MaxBytes)
	assert.EqualValues(t, 123, *cfg.MaxBytes)
	require.NotNil(t, cfg.Audit)
	assert.True(t, *cfg.Audit)
	assert.Nil(t, cfg.NoColor)
}

func TestLoadFile_Invalid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "bad.yml", "input: [unterminated\n")
	_, err := LoadFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "keysift.yaml", "output: plain.txt\n")
	writeTemp(t, dir, ".keysift.yaml", "output: dot.txt\n")
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Output)
	assert.Equal(t, "dot.txt", *cfg.Output)
}

func TestLoadLocal_NoConfig(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadGlobal_XDG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keysift"), 0o755))
	writeTemp(t, filepath.Join(dir, "keysift"), "config.yml", "log_level: debug\n")
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.LogLevel)
	assert.Equal(t, "debug", *cfg.LogLevel)
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := LoadGlobal()
	assert.Error(t, err)
}

func TestMarshal_RoundTripsThroughLoadFile(t *testing.T) {
	in, out := "input.txt", "api_keys.txt"
	b, err := Marshal(FileConfig{Input: &in, Output: &out})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "max_bytes")

	p := writeTemp(t, t.TempDir(), ".keysift.yml", string(b))
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, in, *cfg.Input)
	assert.Equal(t, out, *cfg.Output)
}
