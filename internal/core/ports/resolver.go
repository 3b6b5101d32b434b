package ports

import "go.trai.ch/syringe/internal/core/domain"

// ClasspathResolver turns a build's declared dependencies into an ordered classpath.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ClasspathResolver interface {
	// ResolveManifest reads the single-line, semicolon-separated classpath
	// manifest of the layout.
	ResolveManifest(layout domain.Layout) (domain.Classpath, error)

	// ResolveLibDir lists the dependency archives of the layout's lib
	// directory in lexicographic order.
	ResolveLibDir(layout domain.Layout) (domain.Classpath, error)
}
