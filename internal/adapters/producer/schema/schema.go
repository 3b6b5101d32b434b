// Package schema renders one XML schema per injectable describing its
// configuration document.
package schema

import (
	"bytes"
	"context"
	"encoding/xml"

	"go.trai.ch/syringe/internal/adapters/producer"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	xsdNamespace = "http://www.w3.org/2001/XMLSchema"
	// RootElement is the document element of every instance document.
	RootElement = "config"
	// ClassAttribute names the injectable an instance document configures.
	ClassAttribute = "class"
	// ValueElement wraps each value of a repeated property.
	ValueElement = "value"
)

type document struct {
	XMLName            xml.Name `xml:"xs:schema"`
	XMLNS              string   `xml:"xmlns:xs,attr"`
	ElementFormDefault string   `xml:"elementFormDefault,attr"`
	Root               element  `xml:"xs:element"`
}

type element struct {
	Name       string       `xml:"name,attr"`
	Type       string       `xml:"type,attr,omitempty"`
	MinOccurs  string       `xml:"minOccurs,attr,omitempty"`
	MaxOccurs  string       `xml:"maxOccurs,attr,omitempty"`
	Annotation *annotation  `xml:"xs:annotation,omitempty"`
	Complex    *complexType `xml:"xs:complexType,omitempty"`
}

type annotation struct {
	Documentation string `xml:"xs:documentation"`
}

type complexType struct {
	Sequence  *sequence  `xml:"xs:sequence,omitempty"`
	Attribute *attribute `xml:"xs:attribute,omitempty"`
}

type sequence struct {
	Elements []element `xml:"xs:element"`
}

type attribute struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Fixed string `xml:"fixed,attr,omitempty"`
	Use   string `xml:"use,attr,omitempty"`
}

// Producer emits <a/b/Type>.xsd for every injectable.
type Producer struct{}

// New creates a schema producer.
func New() *Producer {
	return &Producer{}
}

// Kind returns domain.ProducerSchema.
func (p *Producer) Kind() domain.ProducerKind {
	return domain.ProducerSchema
}

// Produce renders one schema per injectable.
func (p *Producer) Produce(
	ctx context.Context,
	injectables []domain.LoadedInjectable,
	_ domain.GenerationRequest,
) (domain.ArtifactSet, error) {
	if err := producer.CheckLive(injectables); err != nil {
		return domain.ArtifactSet{}, err
	}

	artifacts := make([]domain.Artifact, 0, len(injectables))
	for _, inj := range injectables {
		if err := ctx.Err(); err != nil {
			return domain.ArtifactSet{}, zerr.Wrap(err, "schema generation cancelled")
		}
		content, err := Render(inj.Type)
		if err != nil {
			return domain.ArtifactSet{}, zerr.With(zerr.Wrap(err, "failed to render schema"), "type", inj.Name())
		}
		artifacts = append(artifacts, domain.Artifact{
			Path:    domain.InternalName(inj.Name()) + ".xsd",
			Content: content,
			Source:  inj.Name(),
		})
	}
	return domain.NewArtifactSet(artifacts...), nil
}

// Render returns the schema document of a single type.
func Render(h *domain.TypeHandle) ([]byte, error) {
	props := producer.Properties(h, domain.DefaultMarkers.FieldLevel)

	root := complexType{
		Attribute: &attribute{Name: ClassAttribute, Type: "xs:string", Fixed: h.Name, Use: "required"},
	}
	if len(props) > 0 {
		root.Sequence = &sequence{Elements: make([]element, 0, len(props))}
		for _, prop := range props {
			root.Sequence.Elements = append(root.Sequence.Elements, propertyElement(prop))
		}
	}

	doc := document{
		XMLNS:              xsdNamespace,
		ElementFormDefault: "qualified",
		Root: element{
			Name:       RootElement,
			Annotation: &annotation{Documentation: h.Name},
			Complex:    &root,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func propertyElement(prop producer.Property) element {
	typ, multiple := producer.XSDType(prop.Descriptor)
	el := element{Name: prop.Name}
	if prop.Optional {
		el.MinOccurs = "0"
	}
	if prop.Description != "" {
		el.Annotation = &annotation{Documentation: prop.Description}
	}
	if !multiple {
		el.Type = typ
		return el
	}
	el.Complex = &complexType{Sequence: &sequence{Elements: []element{{
		Name:      ValueElement,
		Type:      typ,
		MinOccurs: "0",
		MaxOccurs: "unbounded",
	}}}}
	return el
}
