package pathx

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/dshills/keel/bstr"
)

func TestJoin(t *testing.T) {
	p := bstr.FromString("/usr")
	Join(&p, "local", "", "bin")
	if got := p.String(); got != "/usr/local/bin" {
		t.Errorf("expected /usr/local/bin, got %q", got)
	}

	q := bstr.New()
	Join(&q, "rel", "x")
	if got := q.String(); got != "rel/x" {
		t.Errorf("expected rel/x, got %q", got)
	}
}

func TestJoinSkipsDoubledSeparator(t *testing.T) {
	p := bstr.FromString("/usr/")
	Join(&p, "bin")
	if got := p.String(); got != "/usr/bin" {
		t.Errorf("expected /usr/bin, got %q", got)
	}
}

func TestSplit(t *testing.T) {
	p := bstr.FromString("/a/b/c.txt")
	dir, base := bstr.New(), bstr.New()
	Split(&p, &dir, &base)
	if dir.String() != "/a/b/" {
		t.Errorf("dir: expected /a/b/, got %q", dir.String())
	}
	if base.String() != "c.txt" {
		t.Errorf("base: expected c.txt, got %q", base.String())
	}

	p2 := bstr.FromString("plain")
	Split(&p2, &dir, &base)
	if dir.String() != "" || base.String() != "plain" {
		t.Errorf("no-separator split: got %q / %q", dir.String(), base.String())
	}
}

func TestDirBaseExt(t *testing.T) {
	tests := []struct{ path, dir, base, ext string }{
		{"/a/b/c.txt", "/a/b", "c.txt", ".txt"},
		{"/x", "/", "x", ""},
		{"name.tar.gz", ".", "name.tar.gz", ".gz"},
		{"/a/b/", "/a/b", "b", ""},
		{"noext", ".", "noext", ""},
	}
	for _, tt := range tests {
		p := bstr.FromString(tt.path)
		if got := Dir(&p); got.String() != tt.dir {
			t.Errorf("Dir(%q): expected %q, got %q", tt.path, tt.dir, got.String())
		}
		if got := Base(&p); got.String() != tt.base {
			t.Errorf("Base(%q): expected %q, got %q", tt.path, tt.base, got.String())
		}
		got := Ext(&p)
		if tt.ext == "" {
			if !got.IsNull() {
				t.Errorf("Ext(%q): expected null, got %q", tt.path, got.String())
			}
		} else if got.String() != tt.ext {
			t.Errorf("Ext(%q): expected %q, got %q", tt.path, tt.ext, got.String())
		}
	}
}

func TestBaseSharesStorage(t *testing.T) {
	p := bstr.FromString("/a/b/c")
	base := Base(&p)
	if base.String() != "c" {
		t.Fatalf("expected c, got %q", base.String())
	}
	if !p.Shared() {
		t.Error("expected base to share the source allocation")
	}
}

func TestNorm(t *testing.T) {
	p := bstr.FromString("/a//b/../c/./d")
	Norm(&p)
	if got := p.String(); got != "/a/c/d" {
		t.Errorf("expected /a/c/d, got %q", got)
	}
}

func TestAbs(t *testing.T) {
	p := bstr.FromString("sub/file")
	if err := Abs(&p); err != nil {
		t.Fatalf("abs failed: %v", err)
	}
	if !IsAbs(&p) {
		t.Errorf("expected absolute path, got %q", p.String())
	}
	wd, _ := os.Getwd()
	if got := p.String(); got != filepath.Join(wd, "sub/file") {
		t.Errorf("expected %q, got %q", filepath.Join(wd, "sub/file"), got)
	}
}

func TestIterReadsEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	it, err := Open(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer it.Close()

	var names []string
	name := bstr.New()
	for it.Read(&name) {
		names = append(names, name.String())
	}
	if it.Err() != nil {
		t.Fatalf("read failed: %v", it.Err())
	}

	sort.Strings(names)
	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(names) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestIterSeekRestarts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "only"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	it, err := Open(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer it.Close()

	name := bstr.New()
	if !it.Read(&name) || name.String() != "only" {
		t.Fatalf("first pass: expected only, got %q", name.String())
	}
	if it.Read(&name) {
		t.Fatal("expected end of directory")
	}

	if err := it.Seek(); err != nil {
		t.Fatalf("seek failed: %v", err)
	}
	if !it.Read(&name) || name.String() != "only" {
		t.Errorf("after seek: expected only, got %q", name.String())
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(file); !errors.Is(err, ErrNotDir) {
		t.Errorf("expected ErrNotDir, got %v", err)
	}
}
