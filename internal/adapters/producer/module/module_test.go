package module_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/producer/module"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProducer(t *testing.T) *module.Producer {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return module.New(log)
}

func marked(name, desc, descriptor string) domain.Field {
	ann := domain.Annotation{Type: domain.DefaultMarkers.FieldLevel}
	if desc != "" {
		ann.Elements = []domain.AnnotationElement{{Name: "desc", Value: domain.ElementValue{Tag: 's', Const: desc}}}
	}
	return domain.Field{Name: name, Descriptor: descriptor, Annotations: []domain.Annotation{ann}}
}

func injectable(h *domain.TypeHandle) domain.LoadedInjectable {
	return domain.LoadedInjectable{Type: h, Candidate: domain.CandidateType{Name: h.Name}}
}

const expectedModule = `package com.example

import com.avast.syringe.config.perspective._

/**
 * Core services
 */
object CoreModule extends Module with Logging {

  class FooBuilder extends Builder[a.b.Foo](classOf[a.b.Foo]) with ServiceBuilder {
    /** listen host */
    def host(value: String): FooBuilder = {
      set("host", value)
      this
    }
    def ` + "`type`" + `(value: Int): FooBuilder = {
      set("type", value)
      this
    }
  }

  def newFoo: FooBuilder = new FooBuilder
}
`

func TestProduce_RendersModule(t *testing.T) {
	foo := &domain.TypeHandle{Name: "a.b.Foo", Fields: []domain.Field{
		marked("host", "listen host", "Ljava/lang/String;"),
		marked("type", "", "I"),
	}}
	req := domain.GenerationRequest{
		ModuleName:        "CoreModule",
		ModulePackage:     "com.example",
		ModuleDescription: "Core services",
		ModuleTraits:      []string{"Logging"},
		BuilderTraits:     []domain.TraitMapping{{Pattern: "a.*", Trait: "ServiceBuilder"}},
	}

	p := newProducer(t)
	assert.Equal(t, domain.ProducerModule, p.Kind())

	set, err := p.Produce(context.Background(), []domain.LoadedInjectable{injectable(foo)}, req)
	require.NoError(t, err)
	require.Equal(t, []string{"com/example/CoreModule.scala"}, set.Paths())
	assert.Equal(t, expectedModule, string(set.Artifacts[0].Content))
}

func TestProduce_CollidingSimpleNames(t *testing.T) {
	injectables := []domain.LoadedInjectable{
		injectable(&domain.TypeHandle{Name: "a.Foo"}),
		injectable(&domain.TypeHandle{Name: "b.Foo"}),
		injectable(&domain.TypeHandle{Name: "b.Outer$Inner"}),
	}

	set, err := newProducer(t).Produce(context.Background(), injectables, domain.GenerationRequest{ModuleName: "M"})
	require.NoError(t, err)
	assert.Equal(t, []string{"M.scala"}, set.Paths())

	src := string(set.Artifacts[0].Content)
	assert.Contains(t, src, "class a_FooBuilder extends Builder[a.Foo]")
	assert.Contains(t, src, "class b_FooBuilder extends Builder[b.Foo]")
	assert.Contains(t, src, "class Outer_InnerBuilder extends Builder[b.Outer.Inner]")
	assert.NotContains(t, src, "package ")
}

func TestProduce_InvalidModuleName(t *testing.T) {
	for _, name := range []string{"", "com.Module", "1st"} {
		_, err := newProducer(t).Produce(context.Background(), nil, domain.GenerationRequest{ModuleName: name})
		require.ErrorIs(t, err, domain.ErrInvalidRequest, name)
	}
}

func TestBuilderTrait_FirstMatchWins(t *testing.T) {
	mappings := []domain.TraitMapping{
		{Pattern: "*Service", Trait: "ServiceBuilder"},
		{Pattern: "com.example.*", Trait: "ExampleBuilder"},
	}

	trait, err := module.BuilderTrait(mappings, "com.example.HttpService")
	require.NoError(t, err)
	assert.Equal(t, "ServiceBuilder", trait)

	trait, err = module.BuilderTrait(mappings, "com.example.Cache")
	require.NoError(t, err)
	assert.Equal(t, "ExampleBuilder", trait)

	trait, err = module.BuilderTrait(mappings, "org.Other")
	require.NoError(t, err)
	assert.Empty(t, trait)

	_, err = module.BuilderTrait([]domain.TraitMapping{{Pattern: "[", Trait: "X"}}, "a")
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}
