package domain

import (
	"path/filepath"
	"strings"
)

// EntryKind distinguishes the two kinds of classpath locations.
type EntryKind int

const (
	// EntryDirectory is a directory tree of class files.
	EntryDirectory EntryKind = iota
	// EntryArchive is a zip archive (jar) of class files.
	EntryArchive
)

// String returns the string representation of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntryDirectory:
		return "directory"
	case EntryArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// ClasspathEntry is a single location contributing loadable types.
type ClasspathEntry struct {
	Path string
	Kind EntryKind
}

// NewClasspathEntry classifies path by its extension: anything ending in an
// archive extension is an archive, everything else a directory.
func NewClasspathEntry(path string) ClasspathEntry {
	kind := EntryDirectory
	if strings.EqualFold(filepath.Ext(path), ArchiveExt) || strings.EqualFold(filepath.Ext(path), ".zip") {
		kind = EntryArchive
	}
	return ClasspathEntry{Path: filepath.Clean(path), Kind: kind}
}

// String returns the entry path.
func (e ClasspathEntry) String() string {
	return e.Path
}

// Classpath is the ordered set of locations for one invocation.
// Earlier entries shadow later ones on name collision.
type Classpath struct {
	output       ClasspathEntry
	dependencies []ClasspathEntry
}

// NewClasspath builds a classpath from the compiled-output directory and the
// dependency entries in resolution order.
func NewClasspath(output ClasspathEntry, dependencies []ClasspathEntry) Classpath {
	deps := make([]ClasspathEntry, len(dependencies))
	copy(deps, dependencies)
	return Classpath{output: output, dependencies: deps}
}

// Output returns the compiled-output entry.
func (c Classpath) Output() ClasspathEntry {
	return c.output
}

// Dependencies returns a copy of the dependency entries.
func (c Classpath) Dependencies() []ClasspathEntry {
	deps := make([]ClasspathEntry, len(c.dependencies))
	copy(deps, c.dependencies)
	return deps
}

// Entries returns the full search path: the output directory first, then the
// dependencies in resolution order.
func (c Classpath) Entries() []ClasspathEntry {
	entries := make([]ClasspathEntry, 0, len(c.dependencies)+1)
	entries = append(entries, c.output)
	return append(entries, c.dependencies...)
}
