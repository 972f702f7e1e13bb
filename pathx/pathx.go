// Package pathx provides filesystem path helpers over the byte string
// type and a directory iterator with classified errors.
package pathx

import (
	"os"
	"path/filepath"

	"github.com/dshills/keel/bstr"
)

// Separator is the path element separator.
const Separator = byte(filepath.Separator)

// Join appends parts to dst, inserting a separator between elements.
// Empty parts are skipped.
func Join(dst *bstr.Str, parts ...string) {
	for _, p := range parts {
		if p == "" {
			continue
		}
		if dst.Len() > 0 && dst.At(dst.Len()-1) != Separator {
			dst.AddByte(Separator)
		}
		dst.AddString(p)
	}
}

// Split breaks path at its final separator. dir keeps the trailing
// separator; base holds the remainder. Either output may be nil. The
// outputs share storage with path until written.
func Split(path, dir, base *bstr.Str) {
	i := path.FindReverse(Separator, 0, path.Len())
	if dir != nil {
		dir.Copy(path)
		dir.Truncate(i + 1)
	}
	if base != nil {
		base.Copy(path)
		base.TrimLeft(i + 1)
	}
}

// Dir returns the directory portion of path without its trailing
// separator; "." when path has no separator, "/" for the root.
func Dir(path *bstr.Str) bstr.Str {
	i := path.FindReverse(Separator, 0, path.Len())
	if i < 0 {
		return bstr.FromString(".")
	}
	out := bstr.New()
	out.Copy(path)
	out.Truncate(i)
	if out.IsEmpty() {
		out.AddByte(Separator)
	}
	return out
}

// Base returns the final path element, sharing storage with path.
func Base(path *bstr.Str) bstr.Str {
	out := bstr.New()
	out.Copy(path)
	for out.Len() > 1 && out.At(out.Len()-1) == Separator {
		out.TrimRight(1)
	}
	if i := out.FindReverse(Separator, 0, out.Len()); i >= 0 && out.Len() > 1 {
		out.TrimLeft(i + 1)
	}
	return out
}

// Ext returns the extension starting at the final dot of the final
// element, including the dot; null when there is none.
func Ext(path *bstr.Str) bstr.Str {
	for i := path.Len() - 1; i >= 0; i-- {
		c := path.At(i)
		if c == Separator {
			break
		}
		if c == '.' {
			out := bstr.New()
			out.Copy(path)
			out.TrimLeft(i)
			return out
		}
	}
	return bstr.Str{}
}

// Norm rewrites path in lexically cleaned form: redundant separators
// and "."/".." elements are resolved.
func Norm(path *bstr.Str) {
	path.SetString(filepath.Clean(path.String()))
}

// IsAbs reports whether path is absolute.
func IsAbs(path *bstr.Str) bool {
	return filepath.IsAbs(path.String())
}

// Cwd returns the current working directory.
func Cwd() (bstr.Str, error) {
	wd, err := os.Getwd()
	if err != nil {
		return bstr.Str{}, mapErr(err)
	}
	return bstr.FromString(wd), nil
}

// Abs rewrites path as an absolute, cleaned path relative to the
// current working directory.
func Abs(path *bstr.Str) error {
	if IsAbs(path) {
		Norm(path)
		return nil
	}
	wd, err := Cwd()
	if err != nil {
		return err
	}
	wd.AddByte(Separator)
	path.Prepend(wd.Bytes())
	Norm(path)
	return nil
}
