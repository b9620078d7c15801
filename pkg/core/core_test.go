package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = "AIzaSy" + strings.Repeat("Q", 33)

func TestExtractAndFind(t *testing.T) {
	text := "密钥: " + key + "\n"
	assert.Equal(t, []string{key}, Extract(text))
	fs := Find("x", []byte(text))
	require.Len(t, fs, 1)
	assert.Equal(t, 1, fs[0].Line)
	assert.Contains(t, Pattern(), "AIzaSy")
}

func TestScan_Smoke(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("密钥: "+key), 0o644))
	findings, err := Scan(Config{Root: root})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "a.txt", findings[0].Path)

	res, err := ScanWithStats(Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
}

func TestScan_Error(t *testing.T) {
	_, err := Scan(Config{Root: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestMarshalFindings(t *testing.T) {
	var buf bytes.Buffer
	in := Find("a.txt", []byte("密钥: "+key))
	require.NoError(t, MarshalFindings(&buf, in))
	assert.Contains(t, buf.String(), `"key": "`+key+`"`)

	out, err := UnmarshalFindings(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	buf.Reset()
	require.NoError(t, MarshalFindings(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
