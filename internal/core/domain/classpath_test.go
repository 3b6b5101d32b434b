package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/syringe/internal/core/domain"
)

func TestNewClasspathEntry(t *testing.T) {
	assert.Equal(t, domain.EntryArchive, domain.NewClasspathEntry("/repo/lib/guava.jar").Kind)
	assert.Equal(t, domain.EntryArchive, domain.NewClasspathEntry("/repo/lib/OLD.JAR").Kind)
	assert.Equal(t, domain.EntryDirectory, domain.NewClasspathEntry("/repo/target/classes/").Kind)
	assert.Equal(t, "/repo/target/classes", domain.NewClasspathEntry("/repo/target/classes/").Path)
}

func TestClasspath_Entries(t *testing.T) {
	out := domain.NewClasspathEntry("/t/classes")
	deps := []domain.ClasspathEntry{
		domain.NewClasspathEntry("/l/b.jar"),
		domain.NewClasspathEntry("/l/a.jar"),
	}
	cp := domain.NewClasspath(out, deps)

	// Mutating the input must not leak into the classpath.
	deps[0] = domain.NewClasspathEntry("/evil.jar")

	entries := cp.Entries()
	assert.Equal(t, []string{"/t/classes", "/l/b.jar", "/l/a.jar"},
		[]string{entries[0].Path, entries[1].Path, entries[2].Path})
	assert.Equal(t, out, cp.Output())
	assert.Len(t, cp.Dependencies(), 2)

	// Mutating the returned slices must not leak either.
	got := cp.Dependencies()
	got[0] = out
	assert.Equal(t, "/l/b.jar", cp.Dependencies()[0].Path)
}
