package classpath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/classfile/classfiletest"
	"go.trai.ch/syringe/internal/adapters/classpath"
	"go.trai.ch/syringe/internal/adapters/fs"
	"go.trai.ch/syringe/internal/core/domain"
)

func TestOpener_Directory(t *testing.T) {
	dir := t.TempDir()
	foo := classfiletest.Class{Name: "a.Foo"}
	classfiletest.WriteDir(t, dir, foo, classfiletest.Class{Name: "b.Bar"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "readme.txt"), []byte("x"), 0o600))

	src, err := classpath.NewOpener(fs.NewWalker()).Open(domain.NewClasspathEntry(dir))
	require.NoError(t, err)
	defer func() { require.NoError(t, src.Close()) }()

	resources, err := src.Resources()
	require.NoError(t, err)
	assert.Equal(t, []string{"a/Foo.class", "b/Bar.class"}, resources)

	data, ok, err := src.ReadClass("a/Foo.class")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, foo.Bytes(), data)

	_, ok, err = src.ReadClass("a/Missing.class")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = src.ReadClass("../escape.class")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpener_Archive(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "dep.jar")
	bar := classfiletest.Class{Name: "a.Bar"}
	classfiletest.WriteJarEntries(t, jar,
		classfiletest.Entry{Name: "META-INF/MANIFEST.MF", Data: []byte("Manifest-Version: 1.0\n")},
		classfiletest.Entry{Name: "z/Last.class", Data: classfiletest.Class{Name: "z.Last"}.Bytes()},
		classfiletest.Entry{Name: "a/Bar.class", Data: bar.Bytes()},
	)

	src, err := classpath.NewOpener(fs.NewWalker()).Open(domain.NewClasspathEntry(jar))
	require.NoError(t, err)
	defer func() { require.NoError(t, src.Close()) }()

	assert.Equal(t, domain.EntryArchive, src.Entry().Kind)
	resources, err := src.Resources()
	require.NoError(t, err)
	assert.Equal(t, []string{"z/Last.class", "a/Bar.class"}, resources, "central directory order")

	data, ok, err := src.ReadClass("a/Bar.class")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bar.Bytes(), data)

	_, ok, err = src.ReadClass("a/Nope.class")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpener_Failures(t *testing.T) {
	tmp := t.TempDir()
	notZip := filepath.Join(tmp, "broken.jar")
	require.NoError(t, os.WriteFile(notZip, []byte("not a zip"), 0o600))

	tests := []struct {
		name  string
		entry domain.ClasspathEntry
	}{
		{name: "missing directory", entry: domain.NewClasspathEntry(filepath.Join(tmp, "missing"))},
		{name: "missing archive", entry: domain.NewClasspathEntry(filepath.Join(tmp, "missing.jar"))},
		{name: "corrupt archive", entry: domain.NewClasspathEntry(notZip)},
		{name: "file as directory", entry: domain.ClasspathEntry{Path: notZip, Kind: domain.EntryDirectory}},
	}

	opener := classpath.NewOpener(fs.NewWalker())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := opener.Open(tt.entry)
			require.Error(t, err)
			assert.Nil(t, src)
		})
	}
}
