// Package instance renders a configuration document skeleton for one
// selected injectable.
package instance

import (
	"bytes"
	"context"
	"encoding/xml"
	"path/filepath"
	"strings"

	"go.trai.ch/syringe/internal/adapters/producer"
	"go.trai.ch/syringe/internal/adapters/producer/schema"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

type document struct {
	XMLName    xml.Name
	Class      string `xml:"class,attr"`
	Properties []element
}

type element struct {
	XMLName xml.Name
	Comment string `xml:",comment"`
}

// Producer emits one instance document for exactly one injectable.
type Producer struct{}

// New creates an instance document producer.
func New() *Producer {
	return &Producer{}
}

// Kind returns domain.ProducerInstance.
func (p *Producer) Kind() domain.ProducerKind {
	return domain.ProducerInstance
}

// Produce renders the document named by req.InstanceName. Optional
// properties are left out unless req.IncludeOptional is set.
func (p *Producer) Produce(
	ctx context.Context,
	injectables []domain.LoadedInjectable,
	req domain.GenerationRequest,
) (domain.ArtifactSet, error) {
	if len(injectables) != 1 {
		return domain.ArtifactSet{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidRequest, "instance document needs exactly one injectable"),
			"count", len(injectables),
		)
	}
	if err := producer.CheckLive(injectables); err != nil {
		return domain.ArtifactSet{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.ArtifactSet{}, zerr.Wrap(err, "instance generation cancelled")
	}

	inj := injectables[0]
	if req.TypeFilter == "" {
		req.TypeFilter = inj.Name()
	}
	name := req.InstanceName()
	if err := domain.ValidateInstanceName(name); err != nil {
		return domain.ArtifactSet{}, err
	}

	content, err := Render(inj.Type, req.IncludeOptional)
	if err != nil {
		return domain.ArtifactSet{}, zerr.With(zerr.Wrap(err, "failed to render instance document"), "type", inj.Name())
	}
	return domain.NewArtifactSet(domain.Artifact{
		Path:    filepath.ToSlash(name),
		Content: content,
		Source:  inj.Name(),
	}), nil
}

// Render returns the instance document skeleton of a single type. Every
// property becomes an empty element carrying its description as a comment.
func Render(h *domain.TypeHandle, includeOptional bool) ([]byte, error) {
	doc := document{
		XMLName: xml.Name{Local: schema.RootElement},
		Class:   h.Name,
	}
	for _, prop := range producer.Properties(h, domain.DefaultMarkers.FieldLevel) {
		if prop.Optional && !includeOptional {
			continue
		}
		el := element{XMLName: xml.Name{Local: prop.Name}}
		if prop.Description != "" {
			el.Comment = commentText(prop.Description)
		}
		doc.Properties = append(doc.Properties, el)
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

// commentText pads desc for use as an XML comment, splitting every run of
// dashes since a comment must not contain "--".
func commentText(desc string) string {
	for strings.Contains(desc, "--") {
		desc = strings.ReplaceAll(desc, "--", "- -")
	}
	return " " + desc + " "
}
