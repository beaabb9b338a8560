package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCheckerMemfs(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/upload/a", 0o755))
	require.NoError(t, util.WriteFile(fs, "/upload/a/x.png", []byte("png"), 0o644))

	c := NewPathChecker(fs)

	assert.True(t, c.IsDir("/upload/a"))
	assert.False(t, c.IsFile("/upload/a"))
	assert.True(t, c.IsFile("/upload/a/x.png"))
	assert.False(t, c.IsDir("/upload/a/x.png"))
	assert.False(t, c.IsDir("/upload/missing"))
	assert.False(t, c.IsFile("/upload/a/missing.png"))
	assert.False(t, c.IsDir(""))
}

func TestPathCheckerOS(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(file, []byte("pdf"), 0o600))

	c := NewOSPathChecker()

	assert.True(t, c.IsDir(dir))
	assert.True(t, c.IsFile(file))
	assert.False(t, c.IsFile(filepath.Join(dir, "gone.pdf")))
}
