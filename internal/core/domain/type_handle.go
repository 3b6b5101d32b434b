package domain

import "sync/atomic"

// Scope is the lifetime of the handles issued by one loading context.
// Handles stay valid until the scope is released.
type Scope struct {
	id       string
	released atomic.Bool
}

// NewScope creates a live scope with the given identifier.
func NewScope(id string) *Scope {
	return &Scope{id: id}
}

// ID returns the scope identifier.
func (s *Scope) ID() string {
	return s.id
}

// Release ends the scope. It is safe to call more than once.
func (s *Scope) Release() {
	s.released.Store(true)
}

// Released reports whether the scope has ended.
func (s *Scope) Released() bool {
	return s.released.Load()
}

// TypeHandle is a materialized type definition bound to the scope that loaded it.
type TypeHandle struct {
	Name       string
	SuperName  string
	Interfaces []string
	Access     uint16
	Fields     []Field
	// Annotations are the runtime-visible type-level annotations.
	Annotations []Annotation
	// Origin is the classpath entry that defined the type.
	Origin string
	// Digest is the xxhash of the class-file bytes.
	Digest uint64
	// Super is the linked super type when it resolved through the same context.
	Super *TypeHandle

	scope *Scope
}

// Bind attaches the handle to a scope. A handle without a scope belongs to the
// parent environment and never expires.
func (t *TypeHandle) Bind(scope *Scope) *TypeHandle {
	t.scope = scope
	return t
}

// ScopeID returns the identifier of the owning scope, or "" for parent-defined types.
func (t *TypeHandle) ScopeID() string {
	if t.scope == nil {
		return ""
	}
	return t.scope.ID()
}

// Valid reports whether the owning scope is still live.
func (t *TypeHandle) Valid() bool {
	return t.scope == nil || !t.scope.Released()
}

// Annotation returns the type-level annotation of the given type.
func (t *TypeHandle) Annotation(typeName string) (Annotation, bool) {
	return findAnnotation(t.Annotations, typeName)
}

// IsAnnotation reports whether the handle describes an annotation type.
func (t *TypeHandle) IsAnnotation() bool {
	return t.Access&AccAnnotation != 0
}

// Hierarchy returns the handle followed by its linked super types, nearest first.
func (t *TypeHandle) Hierarchy() []*TypeHandle {
	var chain []*TypeHandle
	for h := t; h != nil; h = h.Super {
		chain = append(chain, h)
	}
	return chain
}

// MarkedFields returns every instance field of the hierarchy carrying the
// given annotation, super-type fields first, in declaration order.
func (t *TypeHandle) MarkedFields(marker string) []Field {
	chain := t.Hierarchy()
	var fields []Field
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Fields {
			if f.IsStatic() {
				continue
			}
			if _, ok := f.Annotation(marker); ok {
				fields = append(fields, f)
			}
		}
	}
	return fields
}
