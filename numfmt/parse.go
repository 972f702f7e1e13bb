package numfmt

import (
	"math"
	"strconv"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// trimSpace strips leading and trailing ASCII whitespace.
func trimSpace(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// splitBase consumes an optional base prefix. Base 0 autodetects: 0x, 0X,
// or a bare x select 16; a leading zero selects 8; anything else is
// decimal.
func splitBase(b []byte, base int) ([]byte, int) {
	if base != 0 {
		if base == 16 {
			if len(b) >= 2 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
				b = b[2:]
			} else if len(b) >= 1 && (b[0] == 'x' || b[0] == 'X') {
				b = b[1:]
			}
		}
		return b, base
	}
	switch {
	case len(b) >= 2 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X'):
		return b[2:], 16
	case len(b) >= 1 && (b[0] == 'x' || b[0] == 'X'):
		return b[1:], 16
	case len(b) >= 2 && b[0] == '0':
		return b[1:], 8
	default:
		return b, 10
	}
}

// parseMag accumulates an unsigned magnitude with overflow detection.
func parseMag(b []byte, base int, limit uint64) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrInvalid
	}
	var v uint64
	for _, c := range b {
		d := digitVal(c)
		if d < 0 || d >= base {
			return 0, ErrInvalid
		}
		if v > (limit-uint64(d))/uint64(base) {
			return 0, ErrOverflow
		}
		v = v*uint64(base) + uint64(d)
	}
	return v, nil
}

// ParseUint parses b as an unsigned integer in the given base. Base 0
// autodetects from a 0x/0X/x or leading-zero prefix. Surrounding
// whitespace and a leading + are accepted.
func ParseUint(b []byte, base int) (uint64, error) {
	b = trimSpace(b)
	if len(b) > 0 && b[0] == '+' {
		b = b[1:]
	}
	if len(b) > 0 && b[0] == '-' {
		return 0, ErrInvalid
	}
	b, base = splitBase(b, base)
	if base < 2 || base > 36 {
		return 0, ErrInvalid
	}
	return parseMag(b, base, math.MaxUint64)
}

// ParseInt parses b as a signed integer in the given base, with the same
// prefix rules as ParseUint.
func ParseInt(b []byte, base int) (int64, error) {
	b = trimSpace(b)
	neg := false
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		neg = b[0] == '-'
		b = b[1:]
	}
	b, base = splitBase(b, base)
	if base < 2 || base > 36 {
		return 0, ErrInvalid
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	mag, err := parseMag(b, base, limit)
	if err != nil {
		return 0, err
	}
	if neg {
		if mag == 0 {
			return 0, nil
		}
		return -int64(mag-1) - 1, nil
	}
	return int64(mag), nil
}

func lowerEq(b []byte, word string) bool {
	if len(b) != len(word) {
		return false
	}
	for i := range b {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

// validFloat checks b against the accepted float grammar: optional sign,
// decimal mantissa with optional fraction, optional e/E exponent with
// optional sign. Specials nan and inf are handled by the caller.
func validFloat(b []byte) bool {
	i := 0
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digits := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		edigits := 0
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
			edigits++
		}
		if edigits == 0 {
			return false
		}
	}
	return i == len(b)
}

// ParseFloat parses b as a floating-point number. Surrounding whitespace
// is accepted; nan and inf (optionally signed) are case-insensitive.
// Values beyond the float64 range report ErrOverflow.
func ParseFloat(b []byte) (float64, error) {
	b = trimSpace(b)
	core := b
	neg := false
	if len(core) > 0 && (core[0] == '+' || core[0] == '-') {
		neg = core[0] == '-'
		core = core[1:]
	}
	switch {
	case lowerEq(core, "nan"):
		return math.NaN(), nil
	case lowerEq(core, "inf"):
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	if !validFloat(b) {
		return 0, ErrInvalid
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, ErrOverflow
		}
		return 0, ErrInvalid
	}
	return v, nil
}

// ParseBool parses b as a boolean: the case-insensitive words on, off,
// yes, no, true, false, t, f, or any parseable integer where nonzero
// means true.
func ParseBool(b []byte) (bool, error) {
	b = trimSpace(b)
	switch {
	case lowerEq(b, "on"), lowerEq(b, "yes"), lowerEq(b, "true"), lowerEq(b, "t"):
		return true, nil
	case lowerEq(b, "off"), lowerEq(b, "no"), lowerEq(b, "false"), lowerEq(b, "f"):
		return false, nil
	}
	v, err := ParseInt(b, 0)
	if err != nil {
		return false, ErrInvalid
	}
	return v != 0, nil
}
