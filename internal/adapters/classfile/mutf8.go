package classfile

import (
	"unicode/utf16"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// decodeModifiedUTF8 decodes the modified UTF-8 used by CONSTANT_Utf8 entries:
// NUL is encoded in two bytes and supplementary characters as surrogate pairs.
func decodeModifiedUTF8(b []byte) (string, error) {
	ascii := true
	for _, c := range b {
		if c == 0 || c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), nil
	}

	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c != 0 && c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", invalidUTF8(i)
			}
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", invalidUTF8(i)
			}
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			return "", invalidUTF8(i)
		}
	}
	return string(utf16.Decode(units)), nil
}

func invalidUTF8(pos int) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedClass, "invalid modified UTF-8"), "position", pos)
}
