// Package producer holds what the reference artifact producers share: the
// configurable properties of an injectable and the mapping of field
// descriptors onto target type systems.
package producer

import (
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Element names read from the field-level marker.
const (
	ElementOptional    = "optional"
	ElementDescription = "desc"
)

// Property is one configurable field of an injectable.
type Property struct {
	Name        string
	Descriptor  string
	Optional    bool
	Description string
	// Declarer is the type that declares the field.
	Declarer string
}

// Multiple reports whether the property holds a collection of values.
func (p Property) Multiple() bool {
	_, multiple := elementDescriptor(p.Descriptor)
	return multiple
}

// Properties returns the marked instance fields of the injectable's linked
// hierarchy, super-type fields first. A field redeclared lower in the
// hierarchy replaces the inherited one in place.
func Properties(h *domain.TypeHandle, marker string) []Property {
	var props []Property
	index := make(map[string]int)

	chain := h.Hierarchy()
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Fields {
			if f.IsStatic() {
				continue
			}
			ann, ok := f.Annotation(marker)
			if !ok {
				continue
			}
			p := Property{Name: f.Name, Descriptor: f.Descriptor, Declarer: chain[i].Name}
			if v, ok := ann.Element(ElementOptional); ok {
				p.Optional, _ = v.Bool()
			}
			if v, ok := ann.Element(ElementDescription); ok {
				p.Description, _ = v.String()
			}
			if j, dup := index[f.Name]; dup {
				props[j] = p
				continue
			}
			index[f.Name] = len(props)
			props = append(props, p)
		}
	}
	return props
}

// CheckLive fails when any injectable was issued by a loading context that
// has since been closed.
func CheckLive(injectables []domain.LoadedInjectable) error {
	for _, inj := range injectables {
		if !inj.Valid() {
			return zerr.With(zerr.Wrap(domain.ErrContextClosed, "injectable "+inj.Name()+" is no longer loaded"), "type", inj.Name())
		}
	}
	return nil
}

var collectionTypes = map[string]bool{
	"java.util.List":       true,
	"java.util.Set":        true,
	"java.util.Collection": true,
	"java.lang.Iterable":   true,
}

// elementDescriptor strips one array dimension or collection wrapper from a
// field descriptor. Collections lose their element type to erasure, so they
// report java.lang.String elements.
func elementDescriptor(desc string) (string, bool) {
	if strings.HasPrefix(desc, "[") {
		return desc[1:], true
	}
	if collectionTypes[domain.TypeFromDescriptor(desc)] {
		return "Ljava/lang/String;", true
	}
	return desc, false
}

var xsdTypes = map[string]string{
	"Z": "xs:boolean", "B": "xs:byte", "S": "xs:short", "I": "xs:int",
	"J": "xs:long", "F": "xs:float", "D": "xs:double", "C": "xs:string",
	"java.lang.String":     "xs:string",
	"java.lang.Boolean":    "xs:boolean",
	"java.lang.Byte":       "xs:byte",
	"java.lang.Short":      "xs:short",
	"java.lang.Integer":    "xs:int",
	"java.lang.Long":       "xs:long",
	"java.lang.Float":      "xs:float",
	"java.lang.Double":     "xs:double",
	"java.lang.Character":  "xs:string",
	"java.math.BigDecimal": "xs:decimal",
	"java.math.BigInteger": "xs:integer",
	"java.io.File":         "xs:string",
	"java.net.URI":         "xs:anyURI",
	"java.net.URL":         "xs:anyURI",
}

// XSDType returns the schema type of a property value and whether the
// property repeats.
func XSDType(desc string) (string, bool) {
	elem, multiple := elementDescriptor(desc)
	if t, ok := xsdTypes[elem]; ok {
		return t, multiple
	}
	if t, ok := xsdTypes[domain.TypeFromDescriptor(elem)]; ok {
		return t, multiple
	}
	return "xs:anyType", multiple
}

var scalaPrimitives = map[byte]string{
	'Z': "Boolean", 'B': "Byte", 'S': "Short", 'I': "Int",
	'J': "Long", 'F': "Float", 'D': "Double", 'C': "Char", 'V': "Unit",
}

// ScalaType renders a field descriptor as a Scala type.
func ScalaType(desc string) string {
	switch {
	case desc == "":
		return "Any"
	case desc[0] == '[':
		return "Array[" + ScalaType(desc[1:]) + "]"
	case desc[0] == 'L':
		name := domain.TypeFromDescriptor(desc)
		switch name {
		case "java.lang.String":
			return "String"
		case "java.lang.Object":
			return "Any"
		}
		name = strings.ReplaceAll(name, "$", ".")
		if collectionTypes[domain.TypeFromDescriptor(desc)] || name == "java.util.Map" {
			return name + "[_]"
		}
		return name
	}
	if t, ok := scalaPrimitives[desc[0]]; ok && len(desc) == 1 {
		return t
	}
	return "Any"
}
