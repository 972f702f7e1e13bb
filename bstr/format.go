package bstr

import (
	"bytes"
	"errors"
)

// Align selects field padding placement for WriteField.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// WriteField appends data padded with fill to width bytes, aligned as
// requested. Data wider than the field is written as-is.
func (s *Str) WriteField(data []byte, width int, align Align, fill byte) {
	pad := width - len(data)
	if pad <= 0 {
		s.Add(data)
		return
	}
	var lead int
	switch align {
	case AlignRight:
		lead = pad
	case AlignCenter:
		lead = pad / 2
	}
	s.Fill(s.Len(), lead, fill)
	s.Add(data)
	s.Fill(s.Len(), pad-lead, fill)
}

// ErrUnquotable reports that no quoting form can safely enclose the data:
// every quote form, every triple form, and the DEL fallback already occur
// in it.
var ErrUnquotable = errors.New("bstr: no safe quoting available")

// del is the ASCII 0x7F byte used by the last-resort quoting form.
const del = byte(0x7F)

// needsQuoting reports whether data must be quoted to survive
// re-tokenization with delim.
func needsQuoting(data []byte, delim byte) bool {
	for _, c := range data {
		switch c {
		case '\'', '"', '`', delim, ' ', '\t', '\r', '\n':
			return true
		}
	}
	return len(data) == 0
}

// WriteQuoted appends data enclosed in the minimal quoting form that
// makes it safely re-tokenizable with delim. With optional set, data that
// needs no quoting is written bare. Single quotes are preferred, then
// double, then backtick, then the triple forms, then backtick-DEL
// bracketing; if every form occurs in data, nothing is written and
// ErrUnquotable is returned.
func (s *Str) WriteQuoted(data []byte, delim byte, optional bool) error {
	if optional && !needsQuoting(data, delim) {
		s.Add(data)
		return nil
	}

	hasSingle := bytes.IndexByte(data, '\'') >= 0
	hasDouble := bytes.IndexByte(data, '"') >= 0
	hasBack := bytes.IndexByte(data, '`') >= 0

	var quote []byte
	switch {
	case !hasSingle:
		quote = []byte{'\''}
	case !hasDouble:
		quote = []byte{'"'}
	case !hasBack:
		quote = []byte{'`'}
	case !bytes.Contains(data, []byte("'''")):
		quote = []byte("'''")
	case !bytes.Contains(data, []byte(`"""`)):
		quote = []byte(`"""`)
	case !bytes.Contains(data, []byte("```")):
		quote = []byte("```")
	case !bytes.Contains(data, []byte{'`', del}):
		quote = []byte{'`', del}
	default:
		return ErrUnquotable
	}

	s.Add(quote)
	s.Add(data)
	s.Add(quote)
	return nil
}
