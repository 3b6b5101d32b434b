package schema_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/producer/schema"
	"go.trai.ch/syringe/internal/core/domain"
)

func property(name, desc string, elements ...domain.AnnotationElement) domain.Field {
	return domain.Field{
		Name:       name,
		Descriptor: desc,
		Annotations: []domain.Annotation{{
			Type:     domain.DefaultMarkers.FieldLevel,
			Elements: elements,
		}},
	}
}

func optional() domain.AnnotationElement {
	return domain.AnnotationElement{Name: "optional", Value: domain.ElementValue{Tag: 'Z', Const: true}}
}

func injectable(h *domain.TypeHandle) domain.LoadedInjectable {
	return domain.LoadedInjectable{Type: h, Candidate: domain.CandidateType{Name: h.Name}}
}

func TestProduce_OneSchemaPerInjectable(t *testing.T) {
	foo := &domain.TypeHandle{Name: "a.b.Foo", Fields: []domain.Field{
		property("host", "Ljava/lang/String;"),
		property("port", "I", optional()),
		property("tags", "[Ljava/lang/String;"),
		{Name: "plain", Descriptor: "I"},
	}}
	bar := &domain.TypeHandle{Name: "a.Bar"}

	p := schema.New()
	assert.Equal(t, domain.ProducerSchema, p.Kind())

	set, err := p.Produce(context.Background(), []domain.LoadedInjectable{injectable(foo), injectable(bar)}, domain.GenerationRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/Bar.xsd", "a/b/Foo.xsd"}, set.Paths())

	doc := string(set.Artifacts[1].Content)
	assert.Contains(t, doc, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">`)
	assert.Contains(t, doc, `<xs:element name="host" type="xs:string"></xs:element>`)
	assert.Contains(t, doc, `<xs:element name="port" type="xs:int" minOccurs="0"></xs:element>`)
	assert.Contains(t, doc, `<xs:element name="value" type="xs:string" minOccurs="0" maxOccurs="unbounded"></xs:element>`)
	assert.Contains(t, doc, `<xs:attribute name="class" type="xs:string" fixed="a.b.Foo" use="required"></xs:attribute>`)
	assert.NotContains(t, doc, "plain")
	assert.Equal(t, "a.b.Foo", set.Artifacts[1].Source)

	assert.NotContains(t, string(set.Artifacts[0].Content), "xs:sequence")
}

func TestProduce_Deterministic(t *testing.T) {
	h := &domain.TypeHandle{Name: "a.Foo", Fields: []domain.Field{property("host", "Ljava/lang/String;")}}
	p := schema.New()

	first, err := p.Produce(context.Background(), []domain.LoadedInjectable{injectable(h)}, domain.GenerationRequest{})
	require.NoError(t, err)
	second, err := p.Produce(context.Background(), []domain.LoadedInjectable{injectable(h)}, domain.GenerationRequest{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProduce_InheritedProperties(t *testing.T) {
	base := &domain.TypeHandle{Name: "a.Base", Fields: []domain.Field{property("timeout", "J")}}
	h := &domain.TypeHandle{Name: "a.Foo", Super: base, Fields: []domain.Field{property("host", "Ljava/lang/String;")}}

	content, err := schema.Render(h)
	require.NoError(t, err)

	doc := string(content)
	timeout := strings.Index(doc, `name="timeout"`)
	host := strings.Index(doc, `name="host"`)
	require.NotEqual(t, -1, timeout)
	require.NotEqual(t, -1, host)
	assert.Less(t, timeout, host, "super type properties come first")
	assert.Contains(t, doc, `type="xs:long"`)
}

func TestProduce_ClosedContext(t *testing.T) {
	scope := domain.NewScope("s")
	h := (&domain.TypeHandle{Name: "a.Foo"}).Bind(scope)
	scope.Release()

	_, err := schema.New().Produce(context.Background(), []domain.LoadedInjectable{injectable(h)}, domain.GenerationRequest{})
	require.ErrorIs(t, err, domain.ErrContextClosed)
}
