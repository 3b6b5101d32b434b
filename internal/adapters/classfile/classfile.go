// Package classfile reads the structural metadata of compiled JVM class files.
//
// Parsing never links or initializes anything: it decodes the constant pool,
// the class header, declared fields and the runtime-visible annotation tables
// of the class and its fields. Method bodies are skipped.
package classfile

import (
	"bytes"
	"io"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// Magic is the class-file signature.
	Magic = 0xCAFEBABE

	// MaxClassSize bounds the bytes read for a single class file.
	MaxClassSize = 64 << 20

	attrRuntimeVisibleAnnotations = "RuntimeVisibleAnnotations"
)

// ClassFile is the decoded metadata of one class file.
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	Access       uint16
	// Name is the fully-qualified binary name declared by this_class.
	Name string
	// SuperName is empty for java.lang.Object and module descriptors.
	SuperName  string
	Interfaces []string
	Fields     []domain.Field
	// Annotations are the runtime-visible type-level annotations.
	Annotations []domain.Annotation
	MethodCount int
}

// HasAnnotation reports whether the type-level annotation table records typeName.
func (c *ClassFile) HasAnnotation(typeName string) bool {
	for _, a := range c.Annotations {
		if a.Type == typeName {
			return true
		}
	}
	return false
}

// FirstFieldWith returns the first declared field whose annotation table
// records typeName.
func (c *ClassFile) FirstFieldWith(typeName string) (string, bool) {
	for _, f := range c.Fields {
		if _, ok := f.Annotation(typeName); ok {
			return f.Name, true
		}
	}
	return "", false
}

// ReadBytes reads a whole class file from r, failing once MaxClassSize is exceeded.
func ReadBytes(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, MaxClassSize+1))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read class file")
	}
	if n > MaxClassSize {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedClass, "class file exceeds size limit"), "limit", MaxClassSize)
	}
	return buf.Bytes(), nil
}

// Parse decodes the class file held in data.
func Parse(data []byte) (*ClassFile, error) {
	if len(data) > MaxClassSize {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedClass, "class file exceeds size limit"), "limit", MaxClassSize)
	}

	r := newReader(data)
	if magic := r.u4(); r.err != nil || magic != Magic {
		if r.err != nil {
			return nil, r.err
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedClass, "bad magic"), "magic", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.u2(),
		MajorVersion: r.u2(),
	}

	pool, err := readConstantPool(r)
	if err != nil {
		return nil, err
	}
	p := &parser{r: r, pool: pool}

	cf.Access = r.u2()
	thisClass := r.u2()
	superClass := r.u2()
	if r.err != nil {
		return nil, r.err
	}

	if cf.Name, err = pool.className(thisClass); err != nil {
		return nil, zerr.Wrap(err, "cannot resolve this_class")
	}
	if superClass != 0 {
		if cf.SuperName, err = pool.className(superClass); err != nil {
			return nil, zerr.Wrap(err, "cannot resolve super_class")
		}
	}

	if cf.Interfaces, err = p.interfaces(); err != nil {
		return nil, err
	}
	if cf.Fields, err = p.fields(); err != nil {
		return nil, err
	}
	if cf.MethodCount, err = p.skipMethods(); err != nil {
		return nil, err
	}
	if cf.Annotations, err = p.attributes(); err != nil {
		return nil, zerr.Wrap(err, "cannot read class attributes")
	}

	return cf, nil
}

type parser struct {
	r    *reader
	pool constantPool
}

func (p *parser) interfaces() ([]string, error) {
	count := int(p.r.u2())
	if p.r.err != nil {
		return nil, p.r.err
	}
	names := make([]string, 0, count)
	for range count {
		name, err := p.pool.className(p.r.u2())
		if p.r.err != nil {
			return nil, p.r.err
		}
		if err != nil {
			return nil, zerr.Wrap(err, "cannot resolve interface")
		}
		names = append(names, name)
	}
	return names, nil
}

func (p *parser) fields() ([]domain.Field, error) {
	count := int(p.r.u2())
	if p.r.err != nil {
		return nil, p.r.err
	}
	fields := make([]domain.Field, 0, count)
	for range count {
		access := p.r.u2()
		nameIdx := p.r.u2()
		descIdx := p.r.u2()
		if p.r.err != nil {
			return nil, p.r.err
		}
		name, err := p.pool.utf8(nameIdx)
		if err != nil {
			return nil, zerr.Wrap(err, "cannot resolve field name")
		}
		desc, err := p.pool.utf8(descIdx)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "cannot resolve field descriptor"), "field", name)
		}
		anns, err := p.attributes()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "cannot read field attributes"), "field", name)
		}
		fields = append(fields, domain.Field{
			Access:      access,
			Name:        name,
			Descriptor:  desc,
			Annotations: anns,
		})
	}
	return fields, nil
}

func (p *parser) skipMethods() (int, error) {
	count := int(p.r.u2())
	for range count {
		p.r.skip(6)
		attrs := int(p.r.u2())
		for range attrs {
			p.r.skip(2)
			p.r.skip(int(p.r.u4()))
			if p.r.err != nil {
				return 0, p.r.err
			}
		}
		if p.r.err != nil {
			return 0, p.r.err
		}
	}
	return count, p.r.err
}

// attributes walks an attribute table and decodes the runtime-visible
// annotations it contains. Other attributes are skipped by length.
func (p *parser) attributes() ([]domain.Annotation, error) {
	count := int(p.r.u2())
	if p.r.err != nil {
		return nil, p.r.err
	}
	var anns []domain.Annotation
	for range count {
		nameIdx := p.r.u2()
		length := int(p.r.u4())
		body := p.r.bytes(length)
		if p.r.err != nil {
			return nil, p.r.err
		}
		name, err := p.pool.utf8(nameIdx)
		if err != nil {
			return nil, zerr.Wrap(err, "cannot resolve attribute name")
		}
		if name != attrRuntimeVisibleAnnotations {
			continue
		}
		decoded, err := decodeAnnotations(body, p.pool)
		if err != nil {
			return nil, err
		}
		anns = append(anns, decoded...)
	}
	return anns, nil
}
