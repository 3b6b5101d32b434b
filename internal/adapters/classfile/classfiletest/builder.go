// Package classfiletest assembles minimal, valid class files and archives for tests.
package classfiletest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"go.trai.ch/syringe/internal/core/domain"
)

const (
	// MajorVersion is the class-file version the builder emits (Java 8).
	MajorVersion = 52

	objectName = "java.lang.Object"
)

// Class describes a type to encode. Names are dotted binary names.
type Class struct {
	Name string
	// Super defaults to java.lang.Object.
	Super       string
	Interfaces  []string
	Access      uint16
	Annotations []Annotation
	Fields      []Field
	// Methods are emitted as no-arg void methods carrying an opaque Code attribute.
	Methods []string
}

// Field describes a declared field.
type Field struct {
	Name string
	// Descriptor defaults to "Ljava/lang/String;".
	Descriptor  string
	Access      uint16
	Annotations []Annotation
}

// Annotation describes an annotation use. Invisible annotations are written to
// the RuntimeInvisibleAnnotations table.
type Annotation struct {
	Type      string
	Elements  []Element
	Invisible bool
}

// Element is a name/value pair. Supported values are bool, string, int, int32,
// int64, float64, Enum, Annotation and []any.
type Element struct {
	Name  string
	Value any
}

// Enum is an enum constant element value.
type Enum struct {
	Type  string
	Const string
}

// Marker returns a type-level marker annotation.
func Marker() Annotation {
	return Annotation{Type: domain.DefaultMarkers.TypeLevel}
}

// Property returns a field-level marker annotation with the given element values.
func Property(elements ...Element) Annotation {
	return Annotation{Type: domain.DefaultMarkers.FieldLevel, Elements: elements}
}

// Resource returns the class-file path of the class inside a classpath entry.
func (c Class) Resource() string {
	return domain.ResourcePath(c.Name)
}

// Bytes encodes the class.
func (c Class) Bytes() []byte {
	p := newPool()
	var body []byte

	body = binary.BigEndian.AppendUint16(body, c.Access|domain.AccPublic)
	body = binary.BigEndian.AppendUint16(body, p.class(c.Name))
	super := c.Super
	if super == "" && c.Name != objectName {
		super = objectName
	}
	if super == "" {
		body = binary.BigEndian.AppendUint16(body, 0)
	} else {
		body = binary.BigEndian.AppendUint16(body, p.class(super))
	}

	body = binary.BigEndian.AppendUint16(body, uint16(len(c.Interfaces)))
	for _, iface := range c.Interfaces {
		body = binary.BigEndian.AppendUint16(body, p.class(iface))
	}

	body = binary.BigEndian.AppendUint16(body, uint16(len(c.Fields)))
	for _, f := range c.Fields {
		desc := f.Descriptor
		if desc == "" {
			desc = "Ljava/lang/String;"
		}
		body = binary.BigEndian.AppendUint16(body, f.Access)
		body = binary.BigEndian.AppendUint16(body, p.utf8(f.Name))
		body = binary.BigEndian.AppendUint16(body, p.utf8(desc))
		body = append(body, p.annotationAttributes(f.Annotations)...)
	}

	body = binary.BigEndian.AppendUint16(body, uint16(len(c.Methods)))
	for _, m := range c.Methods {
		body = binary.BigEndian.AppendUint16(body, domain.AccPublic)
		body = binary.BigEndian.AppendUint16(body, p.utf8(m))
		body = binary.BigEndian.AppendUint16(body, p.utf8("()V"))
		body = binary.BigEndian.AppendUint16(body, 1)
		body = binary.BigEndian.AppendUint16(body, p.utf8("Code"))
		code := []byte{0, 1, 0, 1, 0, 0, 0, 1, 0xb1, 0, 0, 0, 0}
		body = binary.BigEndian.AppendUint32(body, uint32(len(code)))
		body = append(body, code...)
	}

	body = append(body, p.annotationAttributes(c.Annotations)...)

	var out []byte
	out = binary.BigEndian.AppendUint32(out, 0xCAFEBABE)
	out = binary.BigEndian.AppendUint16(out, 0)
	out = binary.BigEndian.AppendUint16(out, MajorVersion)
	out = binary.BigEndian.AppendUint16(out, p.next)
	out = append(out, p.buf.Bytes()...)
	return append(out, body...)
}

type pool struct {
	buf  bytes.Buffer
	next uint16
	idx  map[string]uint16
}

func newPool() *pool {
	return &pool{next: 1, idx: make(map[string]uint16)}
}

func (p *pool) add(key string, slots uint16, encode func(*bytes.Buffer)) uint16 {
	if i, ok := p.idx[key]; ok {
		return i
	}
	i := p.next
	encode(&p.buf)
	p.next += slots
	p.idx[key] = i
	return i
}

func (p *pool) utf8(s string) uint16 {
	return p.add("u:"+s, 1, func(b *bytes.Buffer) {
		b.WriteByte(1)
		_ = binary.Write(b, binary.BigEndian, uint16(len(s)))
		b.WriteString(s)
	})
}

func (p *pool) class(name string) uint16 {
	nameIdx := p.utf8(domain.InternalName(name))
	return p.add("c:"+name, 1, func(b *bytes.Buffer) {
		b.WriteByte(7)
		_ = binary.Write(b, binary.BigEndian, nameIdx)
	})
}

func (p *pool) integer(v int32) uint16 {
	return p.add(fmt.Sprintf("i:%d", v), 1, func(b *bytes.Buffer) {
		b.WriteByte(3)
		_ = binary.Write(b, binary.BigEndian, v)
	})
}

func (p *pool) long(v int64) uint16 {
	return p.add(fmt.Sprintf("j:%d", v), 2, func(b *bytes.Buffer) {
		b.WriteByte(5)
		_ = binary.Write(b, binary.BigEndian, v)
	})
}

func (p *pool) double(v float64) uint16 {
	return p.add(fmt.Sprintf("d:%v", v), 2, func(b *bytes.Buffer) {
		b.WriteByte(6)
		_ = binary.Write(b, binary.BigEndian, v)
	})
}

func descriptor(name string) string {
	return "L" + domain.InternalName(name) + ";"
}

// annotationAttributes encodes an attribute table holding the visible and
// invisible annotation tables that have entries.
func (p *pool) annotationAttributes(anns []Annotation) []byte {
	var visible, invisible []Annotation
	for _, a := range anns {
		if a.Invisible {
			invisible = append(invisible, a)
		} else {
			visible = append(visible, a)
		}
	}

	var out []byte
	count := uint16(0)
	var attrs []byte
	for _, table := range []struct {
		name string
		anns []Annotation
	}{
		{"RuntimeVisibleAnnotations", visible},
		{"RuntimeInvisibleAnnotations", invisible},
	} {
		if len(table.anns) == 0 {
			continue
		}
		var data []byte
		data = binary.BigEndian.AppendUint16(data, uint16(len(table.anns)))
		for _, a := range table.anns {
			data = append(data, p.annotation(a)...)
		}
		attrs = binary.BigEndian.AppendUint16(attrs, p.utf8(table.name))
		attrs = binary.BigEndian.AppendUint32(attrs, uint32(len(data)))
		attrs = append(attrs, data...)
		count++
	}
	out = binary.BigEndian.AppendUint16(out, count)
	return append(out, attrs...)
}

func (p *pool) annotation(a Annotation) []byte {
	var out []byte
	out = binary.BigEndian.AppendUint16(out, p.utf8(descriptor(a.Type)))
	out = binary.BigEndian.AppendUint16(out, uint16(len(a.Elements)))
	for _, e := range a.Elements {
		out = binary.BigEndian.AppendUint16(out, p.utf8(e.Name))
		out = append(out, p.elementValue(e.Value)...)
	}
	return out
}

func (p *pool) elementValue(v any) []byte {
	switch v := v.(type) {
	case bool:
		n := int32(0)
		if v {
			n = 1
		}
		return binary.BigEndian.AppendUint16([]byte{'Z'}, p.integer(n))
	case string:
		return binary.BigEndian.AppendUint16([]byte{'s'}, p.utf8(v))
	case int:
		return binary.BigEndian.AppendUint16([]byte{'I'}, p.integer(int32(v)))
	case int32:
		return binary.BigEndian.AppendUint16([]byte{'I'}, p.integer(v))
	case int64:
		return binary.BigEndian.AppendUint16([]byte{'J'}, p.long(v))
	case float64:
		return binary.BigEndian.AppendUint16([]byte{'D'}, p.double(v))
	case Enum:
		out := binary.BigEndian.AppendUint16([]byte{'e'}, p.utf8(descriptor(v.Type)))
		return binary.BigEndian.AppendUint16(out, p.utf8(v.Const))
	case Annotation:
		return append([]byte{'@'}, p.annotation(v)...)
	case []any:
		out := binary.BigEndian.AppendUint16([]byte{'['}, uint16(len(v)))
		for _, item := range v {
			out = append(out, p.elementValue(item)...)
		}
		return out
	default:
		panic(fmt.Sprintf("classfiletest: unsupported element value %T", v))
	}
}

// Files encodes the classes as entries keyed by resource path, sorted by path.
func Files(classes ...Class) []Entry {
	entries := make([]Entry, 0, len(classes))
	for _, c := range classes {
		entries = append(entries, Entry{Name: c.Resource(), Data: c.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
