package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePage_CreatesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	w := New(root, "")
	require.NoError(t, w.Clean())

	require.NoError(t, w.WritePage("namespaces/ui/classes/panel.md", nil, "# Class Panel\n"))

	data, err := os.ReadFile(filepath.Join(root, "namespaces", "ui", "classes", "panel.md"))
	require.NoError(t, err)
	require.Equal(t, "# Class Panel\n", string(data))
}

func TestWritePage_HeaderPrecedesBody(t *testing.T) {
	root := t.TempDir()
	w := New(root, "")

	require.NoError(t, w.WritePage("index.md", []byte("---\ntitle: t\n---\n"), "body\n"))

	data, err := os.ReadFile(filepath.Join(root, "index.md"))
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: t\n---\nbody\n", string(data))
}

func TestWritePage_CRLF(t *testing.T) {
	root := t.TempDir()
	w := New(root, "\r\n")

	require.NoError(t, w.WritePage("index.md", nil, "one\ntwo\n"))

	data, err := os.ReadFile(filepath.Join(root, "index.md"))
	require.NoError(t, err)
	require.Equal(t, "one\r\ntwo\r\n", string(data))
}

func TestClean_RemovesStaleOutput(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	w := New(root, "")
	require.NoError(t, w.Clean())
	require.NoError(t, w.WritePage("stale.md", nil, "old\n"))

	require.NoError(t, w.Clean())

	_, err := os.Stat(filepath.Join(root, "stale.md"))
	require.True(t, os.IsNotExist(err))
	// Root itself is recreated.
	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
