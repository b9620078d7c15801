package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendIgnore_IdempotentAndCreates(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".gitignore")

	added, err := AppendIgnore(dir, "api_keys.txt")
	require.NoError(t, err)
	assert.True(t, added)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "api_keys.txt\n", string(b))

	added, err = AppendIgnore(dir, "api_keys.txt")
	require.NoError(t, err)
	assert.False(t, added)
	b, _ = os.ReadFile(p)
	assert.Equal(t, 1, strings.Count(string(b), "api_keys.txt"))
}

func TestAppendIgnore_FixesMissingNewline(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(p, []byte("dist/"), 0o644))

	_, err := AppendIgnore(dir, "api_keys.txt")
	require.NoError(t, err)
	b, _ := os.ReadFile(p)
	assert.Equal(t, "dist/\napi_keys.txt\n", string(b))
}

func TestAppendIgnore_AnchoredExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("/api_keys.txt\n"), 0o644))
	added, err := AppendIgnore(dir, "api_keys.txt")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestGeneratedIgnores(t *testing.T) {
	assert.Equal(t, []string{"out/keys.txt", ".keysift_audit.jsonl"}, GeneratedIgnores(filepath.Join("out", "keys.txt")))
}
