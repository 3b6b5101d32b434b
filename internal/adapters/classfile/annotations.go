package classfile

import (
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxElementDepth bounds nested annotation and array element values.
const maxElementDepth = 32

// decodeAnnotations decodes the body of a RuntimeVisibleAnnotations attribute.
// The body is decoded through its own reader so a corrupt table cannot run
// into the attributes that follow it.
func decodeAnnotations(body []byte, pool constantPool) ([]domain.Annotation, error) {
	d := &annotationDecoder{r: newReader(body), pool: pool}
	count := int(d.r.u2())
	if d.r.err != nil {
		return nil, d.r.err
	}
	anns := make([]domain.Annotation, 0, count)
	for range count {
		ann, err := d.annotation(0)
		if err != nil {
			return nil, err
		}
		anns = append(anns, ann)
	}
	return anns, nil
}

type annotationDecoder struct {
	r    *reader
	pool constantPool
}

func (d *annotationDecoder) annotation(depth int) (domain.Annotation, error) {
	typeIdx := d.r.u2()
	pairs := int(d.r.u2())
	if d.r.err != nil {
		return domain.Annotation{}, d.r.err
	}
	desc, err := d.pool.utf8(typeIdx)
	if err != nil {
		return domain.Annotation{}, zerr.Wrap(err, "cannot resolve annotation type")
	}

	ann := domain.Annotation{Type: domain.TypeFromDescriptor(desc)}
	if pairs > 0 {
		ann.Elements = make([]domain.AnnotationElement, 0, pairs)
	}
	for range pairs {
		nameIdx := d.r.u2()
		if d.r.err != nil {
			return domain.Annotation{}, d.r.err
		}
		name, err := d.pool.utf8(nameIdx)
		if err != nil {
			return domain.Annotation{}, zerr.Wrap(err, "cannot resolve annotation element name")
		}
		value, err := d.elementValue(depth + 1)
		if err != nil {
			return domain.Annotation{}, zerr.With(err, "element", name)
		}
		ann.Elements = append(ann.Elements, domain.AnnotationElement{Name: name, Value: value})
	}
	return ann, nil
}

func (d *annotationDecoder) elementValue(depth int) (domain.ElementValue, error) {
	if depth > maxElementDepth {
		return domain.ElementValue{}, zerr.With(
			zerr.Wrap(domain.ErrMalformedClass, "annotation nesting too deep"), "limit", maxElementDepth)
	}

	tag := d.r.u1()
	if d.r.err != nil {
		return domain.ElementValue{}, d.r.err
	}
	v := domain.ElementValue{Tag: tag}

	switch tag {
	case 'B', 'C', 'I', 'S', 'Z':
		c, err := d.pool.value(d.r.u2(), tagInteger)
		if err != nil {
			return v, d.firstErr(err)
		}
		if tag == 'Z' {
			v.Const = c.(int32) != 0
		} else {
			v.Const = c
		}
	case 'D':
		c, err := d.pool.value(d.r.u2(), tagDouble)
		if err != nil {
			return v, d.firstErr(err)
		}
		v.Const = c
	case 'F':
		c, err := d.pool.value(d.r.u2(), tagFloat)
		if err != nil {
			return v, d.firstErr(err)
		}
		v.Const = c
	case 'J':
		c, err := d.pool.value(d.r.u2(), tagLong)
		if err != nil {
			return v, d.firstErr(err)
		}
		v.Const = c
	case 's':
		c, err := d.pool.value(d.r.u2(), tagUtf8)
		if err != nil {
			return v, d.firstErr(err)
		}
		v.Const = c
	case 'e':
		typeIdx, constIdx := d.r.u2(), d.r.u2()
		if d.r.err != nil {
			return v, d.r.err
		}
		typeDesc, err := d.pool.utf8(typeIdx)
		if err != nil {
			return v, err
		}
		constName, err := d.pool.utf8(constIdx)
		if err != nil {
			return v, err
		}
		v.EnumType = domain.TypeFromDescriptor(typeDesc)
		v.EnumConst = constName
	case 'c':
		c, err := d.pool.utf8(d.r.u2())
		if err != nil {
			return v, d.firstErr(err)
		}
		v.Class = c
	case '@':
		nested, err := d.annotation(depth)
		if err != nil {
			return v, err
		}
		v.Annotation = &nested
	case '[':
		n := int(d.r.u2())
		if d.r.err != nil {
			return v, d.r.err
		}
		v.Array = make([]domain.ElementValue, 0, n)
		for range n {
			item, err := d.elementValue(depth + 1)
			if err != nil {
				return v, err
			}
			v.Array = append(v.Array, item)
		}
	default:
		return v, zerr.With(zerr.Wrap(domain.ErrMalformedClass, "unknown element value tag"), "tag", string(rune(tag)))
	}
	return v, nil
}

// firstErr prefers a truncation error over the lookup error it caused.
func (d *annotationDecoder) firstErr(err error) error {
	if d.r.err != nil {
		return d.r.err
	}
	return err
}
