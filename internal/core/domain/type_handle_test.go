package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/syringe/internal/core/domain"
)

func TestTypeHandle_Scope(t *testing.T) {
	scope := domain.NewScope("ctx-1")
	h := (&domain.TypeHandle{Name: "a.Foo"}).Bind(scope)
	parent := &domain.TypeHandle{Name: domain.DefaultMarkers.TypeLevel}

	assert.True(t, h.Valid())
	assert.Equal(t, "ctx-1", h.ScopeID())

	scope.Release()
	scope.Release()

	assert.False(t, h.Valid())
	assert.True(t, parent.Valid())
	assert.Empty(t, parent.ScopeID())
	assert.False(t, domain.LoadedInjectable{Type: h}.Valid())
	assert.False(t, domain.LoadedInjectable{}.Valid())
}

func TestTypeHandle_MarkedFields(t *testing.T) {
	marker := domain.DefaultMarkers.FieldLevel
	prop := []domain.Annotation{{Type: marker}}

	base := &domain.TypeHandle{
		Name: "a.Base",
		Fields: []domain.Field{
			{Name: "id", Descriptor: "J", Annotations: prop},
			{Name: "INSTANCES", Descriptor: "I", Access: domain.AccStatic, Annotations: prop},
		},
	}
	child := &domain.TypeHandle{
		Name:  "a.Child",
		Super: base,
		Fields: []domain.Field{
			{Name: "plain", Descriptor: "I"},
			{Name: "name", Descriptor: "Ljava/lang/String;", Annotations: prop},
		},
	}

	fields := child.MarkedFields(marker)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"id", "name"}, names)
	assert.Len(t, child.Hierarchy(), 2)
}
