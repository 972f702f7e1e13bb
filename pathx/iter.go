package pathx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dshills/keel/bstr"
)

// Classified filesystem errors. Wrapped causes stay available through
// errors.Is / errors.As.
var (
	ErrNotFound     = errors.New("pathx: not found")
	ErrAccessDenied = errors.New("pathx: access denied")
	ErrNotDir       = errors.New("pathx: not a directory")
)

// Iter walks the entries of one directory in the order the platform
// returns them. The "." and ".." entries are never reported.
type Iter struct {
	f    *os.File
	path string
	err  error
}

// Open starts iterating the directory at path.
func Open(path string) (*Iter, error) {
	f, err := openDir(path)
	if err != nil {
		return nil, err
	}
	return &Iter{f: f, path: path}, nil
}

func openDir(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mapErr(err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, mapErr(err)
	}
	if !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotDir, path)
	}
	return f, nil
}

// Read stores the next entry name and reports whether one was
// available. It returns false at the end of the directory and on
// error; Err distinguishes the two.
func (it *Iter) Read(name *bstr.Str) bool {
	if it.f == nil || it.err != nil {
		return false
	}
	for {
		names, err := it.f.Readdirnames(1)
		if err != nil {
			if err != io.EOF {
				it.err = mapErr(err)
			}
			return false
		}
		if len(names) == 0 {
			return false
		}
		if names[0] == "." || names[0] == ".." {
			continue
		}
		name.SetString(names[0])
		return true
	}
}

// Seek rewinds the iterator to the first entry.
func (it *Iter) Seek() error {
	if it.f != nil {
		it.f.Close()
		it.f = nil
	}
	f, err := openDir(it.path)
	if err != nil {
		it.err = err
		return err
	}
	it.f = f
	it.err = nil
	return nil
}

// Err returns the first error encountered while reading.
func (it *Iter) Err() error { return it.err }

// Close releases the directory handle. The iterator may be reused
// after Seek.
func (it *Iter) Close() error {
	if it.f == nil {
		return nil
	}
	err := it.f.Close()
	it.f = nil
	return err
}

// mapErr folds platform errors into the package's classified set.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	default:
		return err
	}
}
