package ports

import "go.trai.ch/syringe/internal/core/domain"

// ClassSource gives read access to the class files of one classpath entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type ClassSource interface {
	// Entry returns the classpath entry backing the source.
	Entry() domain.ClasspathEntry

	// Resources returns the class-file paths of the entry in a stable order.
	// Parts of the entry that cannot be listed are left out and reported in
	// the error, alongside the paths that were listed.
	Resources() ([]string, error)

	// ReadClass returns the bytes of the class file at resource.
	// found is false when the entry has no such resource.
	ReadClass(resource string) (data []byte, found bool, err error)

	// Close releases any handle held on the entry.
	Close() error
}

// SourceOpener opens classpath entries.
type SourceOpener interface {
	Open(entry domain.ClasspathEntry) (ClassSource, error)
}
