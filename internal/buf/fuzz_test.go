package buf

import (
	"bytes"
	"testing"
)

// FuzzInsertRemove applies an insert then a remove at arbitrary
// positions and checks the buffer against a plain slice model.
func FuzzInsertRemove(f *testing.F) {
	f.Add("hello", 0, "x", 1, 2)
	f.Add("hello", 5, "world", 0, 0)
	f.Add("", 0, "test", 0, 4)
	f.Add("abc", 1, "", 2, 9)
	f.Add("\x00\x01\x02", 3, "\xff", 0, 1)

	f.Fuzz(func(t *testing.T, initial string, at int, ins string, rmAt, rmN int) {
		var b Buf[byte]
		b.SetCopy([]byte(initial), 0)
		model := []byte(initial)

		at = clamp(at, 0, len(model))
		copy(b.InsertGap(at, len(ins), 0), ins)
		model = append(model[:at:at], append([]byte(ins), model[at:]...)...)

		rmAt = clamp(rmAt, 0, len(model))
		n := rmN
		if n < 0 {
			n = 0
		}
		if rmAt+n > len(model) {
			n = len(model) - rmAt
		}
		b.Remove(rmAt, rmN)
		model = append(model[:rmAt:rmAt], model[rmAt+n:]...)

		if !bytes.Equal(b.View(), model) {
			t.Errorf("content mismatch: got %q, want %q", b.View(), model)
		}
		if b.Len() != len(model) {
			t.Errorf("length mismatch: got %d, want %d", b.Len(), len(model))
		}
	})
}

// FuzzSharedMutation copies a buffer, mutates the copy, and verifies
// the original never observes the write.
func FuzzSharedMutation(f *testing.F) {
	f.Add("hello", "x", 2)
	f.Add("", "data", 0)
	f.Add("shared contents here", "y", 19)

	f.Fuzz(func(t *testing.T, initial, extra string, at int) {
		if extra == "" {
			return
		}
		var a Buf[byte]
		a.SetCopy([]byte(initial), 0)

		var b Buf[byte]
		b.CopyFrom(&a)

		at = clamp(at, 0, b.Len())
		copy(b.InsertGap(at, len(extra), 0), extra)
		b.Append([]byte(extra), 0)

		if !bytes.Equal(a.View(), []byte(initial)) {
			t.Errorf("source disturbed by copy mutation: %q", a.View())
		}
		if a.Shared() {
			t.Error("source still marked shared after the copy detached")
		}
	})
}

// FuzzSliceWindow slices an arbitrary window and checks it matches the
// equivalent slice expression.
func FuzzSliceWindow(f *testing.F) {
	f.Add("hello world", 2, 5)
	f.Add("abc", 0, 3)
	f.Add("abc", 3, 1)
	f.Add("", 0, 0)

	f.Fuzz(func(t *testing.T, initial string, i, count int) {
		var b Buf[byte]
		b.SetCopy([]byte(initial), 0)
		b.Slice(i, count)

		lo := clamp(i, 0, len(initial))
		n := count
		if n < 0 {
			n = 0
		}
		if lo+n > len(initial) {
			n = len(initial) - lo
		}
		want := initial[lo : lo+n]

		if string(b.View()) != want {
			t.Errorf("slice mismatch: got %q, want %q", b.View(), want)
		}
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
