package classfile

import (
	"encoding/binary"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// reader is a bounds-checked big-endian cursor over a class file.
// The first out-of-range read sets err; later reads return zero values, so
// loops driven by corrupt counts terminate without touching memory past buf.
type reader struct {
	buf []byte
	off int
	err error
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) fail(need int) {
	if r.err != nil {
		return
	}
	err := zerr.Wrap(domain.ErrMalformedClass, "unexpected end of data")
	err = zerr.With(err, "offset", r.off)
	r.err = zerr.With(err, "need", need)
}

func (r *reader) has(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || n > len(r.buf)-r.off {
		r.fail(n)
		return false
	}
	return true
}

func (r *reader) u1() uint8 {
	if !r.has(1) {
		return 0
	}
	v := r.buf[r.off]
	r.off++
	return v
}

func (r *reader) u2() uint16 {
	if !r.has(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *reader) u4() uint32 {
	if !r.has(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *reader) u8() uint64 {
	if !r.has(8) {
		return 0
	}
	v := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v
}

func (r *reader) bytes(n int) []byte {
	if !r.has(n) {
		return nil
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v
}

func (r *reader) skip(n int) {
	if r.has(n) {
		r.off += n
	}
}
