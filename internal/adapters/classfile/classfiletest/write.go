package classfiletest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// Entry is a named file inside a directory or archive.
type Entry struct {
	Name string
	Data []byte
}

// WriteDir writes the classes below root in package directories.
func WriteDir(t testing.TB, root string, classes ...Class) {
	t.Helper()
	WriteDirEntries(t, root, Files(classes...)...)
}

// WriteDirEntries writes raw entries below root.
func WriteDirEntries(t testing.TB, root string, entries ...Entry) {
	t.Helper()
	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(e.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, e.Data, 0o600))
	}
}

// WriteJar writes the classes into a new archive at path.
func WriteJar(t testing.TB, path string, classes ...Class) {
	t.Helper()
	WriteJarEntries(t, path, Files(classes...)...)
}

// WriteJarEntries writes raw entries into a new archive at path, in order.
func WriteJarEntries(t testing.TB, path string, entries ...Entry) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))

	f, err := os.Create(path) //nolint:gosec // test fixture path
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		_, err = w.Write(e.Data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}
