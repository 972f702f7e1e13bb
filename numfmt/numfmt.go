// Package numfmt provides the number formatting and parsing primitives
// used by the byte string and variant types. Formatting writes into a
// caller-reserved buffer and reports the bytes written; parsing accepts a
// relaxed grammar (surrounding whitespace, sign, 0x/0X/x hex and
// leading-zero octal prefixes under base autodetection) and reports
// invalid input and overflow as distinct errors.
package numfmt

import (
	"errors"
	"strconv"
)

// Parse errors.
var (
	ErrInvalid  = errors.New("numfmt: invalid format")
	ErrOverflow = errors.New("numfmt: value out of bounds")
)

// MaxDigits returns the digit count of the widest 64-bit value in the
// given base, plus one slot for a sign. Callers use it to reserve
// worst-case formatting space. Bases outside 2..36 report the base-2
// worst case.
func MaxDigits(base int) int {
	if base < 2 || base > 36 {
		return 65
	}
	n := 0
	v := uint64(1<<64 - 1)
	for v > 0 {
		v /= uint64(base)
		n++
	}
	return n + 1
}

// MaxFloatDigits is a safe reservation for any float64 formatted with
// automatic precision, including sign, exponent, and special values.
const MaxFloatDigits = 32

// FormatUint writes v in the given base into dst and returns the byte
// count. dst must have room for MaxDigits(base) bytes.
func FormatUint(dst []byte, v uint64, base int) int {
	return len(strconv.AppendUint(dst[:0], v, base))
}

// FormatInt writes v in the given base into dst and returns the byte
// count. dst must have room for MaxDigits(base) bytes.
func FormatInt(dst []byte, v int64, base int) int {
	return len(strconv.AppendInt(dst[:0], v, base))
}

// FormatFloat writes v into dst and returns the byte count. A negative
// precision selects the shortest representation that parses back to v,
// switching to scientific form when that is shorter. dst must have room
// for MaxFloatDigits bytes (more for large fixed precisions).
func FormatFloat(dst []byte, v float64, precision int) int {
	return len(strconv.AppendFloat(dst[:0], v, 'g', precision, 64))
}

// FormatBool writes "true" or "false" into dst and returns the count.
func FormatBool(dst []byte, v bool) int {
	if v {
		return copy(dst, "true")
	}
	return copy(dst, "false")
}
