package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/fs"
	"go.trai.ch/syringe/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	// tmp/
	//   .git/config.class
	//   b/Z.class
	//   a/Y.class
	//   a/notes.txt
	//   X.class
	writeFile(t, tmpDir, ".git/config.class", "git")
	writeFile(t, tmpDir, "b/Z.class", "z")
	writeFile(t, tmpDir, "a/Y.class", "y")
	writeFile(t, tmpDir, "a/notes.txt", "n")
	writeFile(t, tmpDir, "X.class", "x")

	var files []string
	for rel, err := range fs.NewWalker().WalkFiles(tmpDir, domain.ClassExt) {
		require.NoError(t, err)
		files = append(files, rel)
	}

	assert.Equal(t, []string{"X.class", "a/Y.class", "b/Z.class"}, files)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), domain.ClassExt) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "A.class", "a")
	writeFile(t, tmpDir, "B.class", "b")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, domain.ClassExt) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

// unreadableFS fails to list the directory named bad.
type unreadableFS struct {
	iofs.FS
	bad string
}

func (f unreadableFS) ReadDir(name string) ([]iofs.DirEntry, error) {
	if name == f.bad {
		return nil, &iofs.PathError{Op: "readdirent", Path: name, Err: iofs.ErrPermission}
	}
	return iofs.ReadDir(f.FS, name)
}

func TestWalker_WalkFiles_SkipsUnreadableDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a/Foo.class", "foo")
	writeFile(t, tmpDir, "m/Hidden.class", "m")
	writeFile(t, tmpDir, "z/Zed.class", "zed")

	walker := fs.NewWalkerFS(func(root string) iofs.FS {
		return unreadableFS{FS: os.DirFS(root), bad: "m"}
	})

	var files []string
	var errs []error
	for rel, err := range walker.WalkFiles(tmpDir, domain.ClassExt) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, rel)
	}

	assert.Equal(t, []string{"a/Foo.class", "z/Zed.class"}, files)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], iofs.ErrPermission))
	assert.Contains(t, errs[0].Error(), "failed to read directory")
}

func TestWalker_WalkFiles_FollowsFileLinks(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "real/Foo.class", "foo")
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a"), 0o750))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "real", "Foo.class"), filepath.Join(tmpDir, "a", "Foo.class")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "real"), filepath.Join(tmpDir, "a", "Dir.class")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "gone"), filepath.Join(tmpDir, "a", "Dangling.class")))

	var files []string
	for rel, err := range fs.NewWalker().WalkFiles(tmpDir, domain.ClassExt) {
		require.NoError(t, err)
		files = append(files, rel)
	}

	assert.Equal(t, []string{"a/Foo.class", "real/Foo.class"}, files)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "f", "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(filepath.Join(tmpDir, "f"))
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(filepath.Join(tmpDir, "f"))
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher(fs.NewWalker()).ComputeFileHash(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestHasher_ComputeTreeHash(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	dirA := t.TempDir()
	writeFile(t, dirA, "a/Foo.class", "foo")
	writeFile(t, dirA, "a/readme.md", "ignored")

	dirB := t.TempDir()
	writeFile(t, dirB, "a/Foo.class", "foo")

	hashA, err := hasher.ComputeTreeHash(dirA, domain.ClassExt)
	require.NoError(t, err)
	hashB, err := hasher.ComputeTreeHash(dirB, domain.ClassExt)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB, "non-matching files and location must not affect the digest")
	assert.Len(t, hashA, 16)

	writeFile(t, dirB, "a/Foo.class", "changed")
	hashC, err := hasher.ComputeTreeHash(dirB, domain.ClassExt)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashC)
}

func TestWriter_Write(t *testing.T) {
	root := t.TempDir()
	writer := fs.NewWriter(fs.NewHasher(fs.NewWalker()))
	artifact := domain.Artifact{Path: "a/b/Foo.xsd", Content: []byte("<schema/>")}

	written, err := writer.Write(root, artifact)
	require.NoError(t, err)
	assert.True(t, written)

	path := filepath.Join(root, "a", "b", "Foo.xsd")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, artifact.Content, content)

	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.ModTime()

	written, err = writer.Write(root, artifact)
	require.NoError(t, err)
	assert.False(t, written, "identical content must not be rewritten")
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime())

	artifact.Content = []byte("<schema version=\"2\"/>")
	written, err = writer.Write(root, artifact)
	require.NoError(t, err)
	assert.True(t, written)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, artifact.Content, content)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may be left behind")
}

func TestWriter_Write_StaysBelowRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "out", "config")
	writer := fs.NewWriter(fs.NewHasher(fs.NewWalker()))

	for _, p := range []string{"../../x.xml", "cfg/../../../x.xml", "/x.xml", ""} {
		written, err := writer.Write(root, domain.Artifact{Path: p, Content: []byte("<config/>")})
		require.ErrorIs(t, err, domain.ErrInvalidRequest, p)
		assert.False(t, written)
	}

	_, err := os.Stat(filepath.Join(base, "x.xml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	_, err = os.Stat(root)
	assert.True(t, errors.Is(err, os.ErrNotExist), "nothing may be created for a rejected artifact")
}

func TestWriter_Write_DestinationIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Foo.xsd"), 0o750))

	_, err := fs.NewWriter(fs.NewHasher(fs.NewWalker())).Write(root, domain.Artifact{Path: "Foo.xsd", Content: []byte("x")})
	require.Error(t, err)
}
