package bstr

import "github.com/dshills/keel/numfmt"

// Number formatting adapters. Each formats into stack scratch sized by
// the numfmt worst-case tables and commits the written length.

func formatInt(v int64, base int) []byte {
	var tmp [66]byte
	n := numfmt.FormatInt(tmp[:], v, base)
	return tmp[:n]
}

func formatUint(v uint64, base int) []byte {
	var tmp [66]byte
	n := numfmt.FormatUint(tmp[:], v, base)
	return tmp[:n]
}

func formatFloat(v float64, precision int) []byte {
	var tmp [numfmt.MaxFloatDigits]byte
	n := numfmt.FormatFloat(tmp[:], v, precision)
	return tmp[:n]
}

// SetInt replaces the content with v in decimal.
func (s *Str) SetInt(v int64) { s.Clear(); s.Add(formatInt(v, 10)) }

// SetUint replaces the content with v in decimal.
func (s *Str) SetUint(v uint64) { s.Clear(); s.Add(formatUint(v, 10)) }

// SetFloat replaces the content with v at shortest round-trip precision.
func (s *Str) SetFloat(v float64) { s.Clear(); s.Add(formatFloat(v, -1)) }

// SetBool replaces the content with "true" or "false".
func (s *Str) SetBool(v bool) {
	s.Clear()
	if v {
		s.AddString("true")
	} else {
		s.AddString("false")
	}
}

// AddInt appends v in decimal.
func (s *Str) AddInt(v int64) { s.Add(formatInt(v, 10)) }

// AddIntBase appends v in the given base.
func (s *Str) AddIntBase(v int64, base int) { s.Add(formatInt(v, base)) }

// AddUint appends v in decimal.
func (s *Str) AddUint(v uint64) { s.Add(formatUint(v, 10)) }

// AddUintBase appends v in the given base.
func (s *Str) AddUintBase(v uint64, base int) { s.Add(formatUint(v, base)) }

// AddFloat appends v at shortest round-trip precision.
func (s *Str) AddFloat(v float64) { s.Add(formatFloat(v, -1)) }

// AddFloatPrec appends v with the given precision.
func (s *Str) AddFloatPrec(v float64, precision int) { s.Add(formatFloat(v, precision)) }

// PrependInt inserts v in decimal at the front.
func (s *Str) PrependInt(v int64) { s.Prepend(formatInt(v, 10)) }

// PrependUint inserts v in decimal at the front.
func (s *Str) PrependUint(v uint64) { s.Prepend(formatUint(v, 10)) }

// PrependFloat inserts v at the front at shortest round-trip precision.
func (s *Str) PrependFloat(v float64) { s.Prepend(formatFloat(v, -1)) }

// InsertInt inserts v in decimal at byte index i.
func (s *Str) InsertInt(i int, v int64) { s.Insert(i, formatInt(v, 10)) }

// InsertUint inserts v in decimal at byte index i.
func (s *Str) InsertUint(i int, v uint64) { s.Insert(i, formatUint(v, 10)) }

// InsertFloat inserts v at byte index i at shortest round-trip precision.
func (s *Str) InsertFloat(i int, v float64) { s.Insert(i, formatFloat(v, -1)) }

// Number parsing adapters. Errors are numfmt.ErrInvalid and
// numfmt.ErrOverflow.

// ToInt parses the view as a signed integer. Base 0 autodetects from the
// 0x/0X/x and leading-zero prefixes.
func (s *Str) ToInt(base int) (int64, error) { return numfmt.ParseInt(s.Bytes(), base) }

// ToUint parses the view as an unsigned integer.
func (s *Str) ToUint(base int) (uint64, error) { return numfmt.ParseUint(s.Bytes(), base) }

// ToFloat parses the view as a floating-point number.
func (s *Str) ToFloat() (float64, error) { return numfmt.ParseFloat(s.Bytes()) }

// ToBool parses the view as a boolean.
func (s *Str) ToBool() (bool, error) { return numfmt.ParseBool(s.Bytes()) }
