package classfile

import (
	"math"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

type constant struct {
	tag   byte
	str   string
	index uint16
	value any
}

// constantPool is indexed from 1; slot 0 and the slot after each long or
// double are unusable and keep tag 0.
type constantPool []constant

func readConstantPool(r *reader) (constantPool, error) {
	count := int(r.u2())
	if r.err != nil {
		return nil, r.err
	}
	if count == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedClass, "empty constant pool")
	}

	pool := make(constantPool, count)
	for i := 1; i < count; i++ {
		tag := r.u1()
		switch tag {
		case tagUtf8:
			n := int(r.u2())
			raw := r.bytes(n)
			if r.err != nil {
				return nil, r.err
			}
			s, err := decodeModifiedUTF8(raw)
			if err != nil {
				return nil, zerr.With(err, "constant", i)
			}
			pool[i] = constant{tag: tag, str: s}
		case tagInteger:
			pool[i] = constant{tag: tag, value: int32(r.u4())}
		case tagFloat:
			pool[i] = constant{tag: tag, value: math.Float32frombits(r.u4())}
		case tagLong:
			pool[i] = constant{tag: tag, value: int64(r.u8())}
			i++
		case tagDouble:
			pool[i] = constant{tag: tag, value: math.Float64frombits(r.u8())}
			i++
		case tagClass, tagString, tagMethodType, tagModule, tagPackage:
			pool[i] = constant{tag: tag, index: r.u2()}
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			pool[i] = constant{tag: tag, index: r.u2()}
			r.skip(2)
		case tagMethodHandle:
			r.skip(1)
			pool[i] = constant{tag: tag, index: r.u2()}
		default:
			if r.err != nil {
				return nil, r.err
			}
			err := zerr.Wrap(domain.ErrMalformedClass, "unknown constant pool tag")
			err = zerr.With(err, "tag", tag)
			return nil, zerr.With(err, "constant", i)
		}
		if r.err != nil {
			return nil, r.err
		}
	}
	return pool, nil
}

func (p constantPool) entry(index uint16, tag byte) (constant, error) {
	if int(index) <= 0 || int(index) >= len(p) || p[index].tag != tag {
		err := zerr.Wrap(domain.ErrMalformedClass, "bad constant pool reference")
		err = zerr.With(err, "index", index)
		return constant{}, zerr.With(err, "expected_tag", tag)
	}
	return p[index], nil
}

func (p constantPool) utf8(index uint16) (string, error) {
	c, err := p.entry(index, tagUtf8)
	if err != nil {
		return "", err
	}
	return c.str, nil
}

// className resolves a CONSTANT_Class entry to its binary name.
func (p constantPool) className(index uint16) (string, error) {
	c, err := p.entry(index, tagClass)
	if err != nil {
		return "", err
	}
	name, err := p.utf8(c.index)
	if err != nil {
		return "", err
	}
	return domain.BinaryName(name), nil
}

func (p constantPool) value(index uint16, tag byte) (any, error) {
	c, err := p.entry(index, tag)
	if err != nil {
		return nil, err
	}
	if tag == tagUtf8 {
		return c.str, nil
	}
	return c.value, nil
}
