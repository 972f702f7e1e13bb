package variant

import "github.com/dshills/keel/bstr"

// Dump appends the textual form of v to out, terminated by a newline.
// Object children sit on their own lines indented by two spaces per
// level; list children stay on one line. Keys are quoted only when
// needed; string values are always quoted.
func (v *Var) Dump(out *bstr.Str) {
	v.DumpIndent(out, "\n", 0)
	out.AddString("\n")
}

// DumpIndent appends the textual form of v at the given indent, using
// newline between object children. No trailing newline is added.
func (v *Var) DumpIndent(out *bstr.Str, newline string, indent int) {
	v.dump(out, newline, indent, ',')
}

func indentBy(out *bstr.Str, n int) {
	out.Fill(out.Len(), n, ' ')
}

func (v *Var) dump(out *bstr.Str, newline string, indent int, endDelim byte) {
	switch v.kind {
	case KindNull:
		out.AddString("null")
	case KindBool:
		if v.b {
			out.AddString("true")
		} else {
			out.AddString("false")
		}
	case KindInt:
		out.AddInt(v.i)
	case KindUint:
		out.AddUint(v.u)
	case KindFloat:
		out.AddFloat(v.f)
	case KindString:
		if v.str.IsNull() {
			out.AddString("null")
			return
		}
		// Quoting failure leaves the raw bytes; dump stays best-effort.
		if err := out.WriteQuoted(v.str.Bytes(), endDelim, false); err != nil {
			out.Add(v.str.Bytes())
		}
	case KindList:
		v.dumpList(out, newline, indent)
	case KindObject:
		v.dumpObject(out, newline, indent)
	}
}

func (v *Var) dumpList(out *bstr.Str, newline string, indent int) {
	if v.list.IsNull() {
		out.AddString("null")
		return
	}
	if v.list.IsEmpty() {
		out.AddString("[]")
		return
	}
	out.AddByte('[')
	items := v.list.Items()
	for i := range items {
		if i > 0 {
			out.AddByte(',')
		}
		delim := byte(',')
		if i == len(items)-1 {
			delim = ']'
		}
		items[i].dump(out, newline, indent, delim)
	}
	out.AddByte(']')
}

func (v *Var) dumpObject(out *bstr.Str, newline string, indent int) {
	if v.obj.IsEmpty() {
		out.AddString("{}")
		return
	}
	out.AddByte('{')
	out.AddString(newline)
	pairs := v.obj.Pairs()
	for i := range pairs {
		indentBy(out, indent+2)
		if err := out.WriteQuoted(pairs[i].Key.Bytes(), ':', true); err != nil {
			out.Add(pairs[i].Key.Bytes())
		}
		out.AddByte(':')
		delim := byte(',')
		if i == len(pairs)-1 {
			delim = '}'
		}
		pairs[i].Value.dump(out, newline, indent+2, delim)
		if i < len(pairs)-1 {
			out.AddByte(',')
		}
		out.AddString(newline)
	}
	indentBy(out, indent)
	out.AddByte('}')
}
