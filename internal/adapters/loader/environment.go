package loader

import (
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
)

var _ ports.Definer = (*MarkerEnvironment)(nil)

// objectType is the implicit root of every type hierarchy.
const objectType = "java.lang.Object"

// MarkerEnvironment is the parent every loading context delegates to first.
// It defines the marker annotation types and java.lang.Object, so marker
// identity is one handle no matter which context asks.
type MarkerEnvironment struct {
	types map[string]*domain.TypeHandle
}

// NewMarkerEnvironment creates the environment for the given markers.
func NewMarkerEnvironment(markers domain.MarkerSpec) *MarkerEnvironment {
	env := &MarkerEnvironment{types: make(map[string]*domain.TypeHandle, 3)}
	env.types[objectType] = &domain.TypeHandle{Name: objectType, Access: domain.AccPublic}
	for _, name := range []string{markers.TypeLevel, markers.FieldLevel} {
		if name == "" {
			continue
		}
		env.types[name] = &domain.TypeHandle{
			Name:       name,
			SuperName:  objectType,
			Interfaces: []string{"java.lang.annotation.Annotation"},
			Access:     domain.AccPublic | domain.AccInterface | domain.AccAbstract | domain.AccAnnotation,
			Super:      env.types[objectType],
		}
	}
	return env
}

// Define returns the environment's handle for name.
func (e *MarkerEnvironment) Define(name string) (*domain.TypeHandle, bool) {
	h, ok := e.types[name]
	return h, ok
}
