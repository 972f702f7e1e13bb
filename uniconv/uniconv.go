// Package uniconv converts text between UTF-8 and UTF-16. The core
// converters are pure functions with selectable handling for invalid
// sequences; DecodeUTF16 and EncodeUTF16 additionally understand byte
// order marks for whole-buffer transcoding.
package uniconv

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Replacement is the Unicode replacement character used by ModeReplace.
const Replacement = '�'

// ErrInvalid reports an invalid sequence under ModeStrict.
var ErrInvalid = errors.New("uniconv: invalid sequence")

// Mode selects how invalid input sequences are handled.
type Mode uint8

const (
	// ModeInclude carries invalid units through: a bad UTF-8 byte
	// becomes a code unit of the same value, an unpaired surrogate is
	// encoded as a raw three-byte sequence.
	ModeInclude Mode = iota
	// ModeReplace substitutes U+FFFD for each invalid unit.
	ModeReplace
	// ModeSkip drops invalid units.
	ModeSkip
	// ModeStrict fails with ErrInvalid on the first invalid unit.
	ModeStrict
)

// UTF8ToUTF16 transcodes UTF-8 bytes to UTF-16 code units.
func UTF8ToUTF16(src []byte, mode Mode) ([]uint16, error) {
	out := make([]uint16, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			switch mode {
			case ModeStrict:
				return nil, ErrInvalid
			case ModeSkip:
			case ModeReplace:
				out = append(out, uint16(Replacement))
			case ModeInclude:
				out = append(out, uint16(src[i]))
			}
			i++
			continue
		}
		out = utf16.AppendRune(out, r)
		i += size
	}
	return out, nil
}

// UTF16ToUTF8 transcodes UTF-16 code units to UTF-8 bytes.
func UTF16ToUTF8(src []uint16, mode Mode) ([]byte, error) {
	out := make([]byte, 0, len(src)*3)
	for i := 0; i < len(src); {
		u := rune(src[i])
		switch {
		case u < 0xD800 || u > 0xDFFF:
			out = utf8.AppendRune(out, u)
			i++
		case u < 0xDC00 && i+1 < len(src) && src[i+1] >= 0xDC00 && src[i+1] <= 0xDFFF:
			out = utf8.AppendRune(out, utf16.DecodeRune(u, rune(src[i+1])))
			i += 2
		default:
			switch mode {
			case ModeStrict:
				return nil, ErrInvalid
			case ModeSkip:
			case ModeReplace:
				out = utf8.AppendRune(out, Replacement)
			case ModeInclude:
				out = appendSurrogate(out, u)
			}
			i++
		}
	}
	return out, nil
}

// appendSurrogate writes the raw three-byte encoding of a lone
// surrogate, which utf8.AppendRune would reject.
func appendSurrogate(dst []byte, r rune) []byte {
	return append(dst,
		0xE0|byte(r>>12),
		0x80|byte(r>>6)&0x3F,
		0x80|byte(r)&0x3F)
}

// DecodeUTF16 converts a UTF-16 byte stream to UTF-8, honoring a
// leading byte order mark. Without a BOM the stream is read as
// big-endian when bigEndian is set, little-endian otherwise.
func DecodeUTF16(data []byte, bigEndian bool) ([]byte, error) {
	endian := unicode.LittleEndian
	if bigEndian {
		endian = unicode.BigEndian
	}
	return unicode.UTF16(endian, unicode.UseBOM).NewDecoder().Bytes(data)
}

// EncodeUTF16 converts UTF-8 bytes to a UTF-16 byte stream in the
// given order, optionally prefixed with a byte order mark.
func EncodeUTF16(data []byte, bigEndian, withBOM bool) ([]byte, error) {
	endian := unicode.LittleEndian
	if bigEndian {
		endian = unicode.BigEndian
	}
	bom := unicode.IgnoreBOM
	if withBOM {
		bom = unicode.UseBOM
	}
	return unicode.UTF16(endian, bom).NewEncoder().Bytes(data)
}
