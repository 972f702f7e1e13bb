// Package bstr provides Str, a byte string sharing the copy-on-write
// storage discipline of the seq package, specialized for byte elements.
//
// On top of the sequence operations it adds:
//
//   - Zero-terminator management: CStr returns a view guaranteed to be
//     followed by a NUL byte in its backing storage, writing one into
//     reserved headroom or detaching first
//   - Number formatting and parsing adapters over the numfmt package
//     (SetInt, AddUint, ToFloat, ...)
//   - Field-padded formatting with left, center, and right alignment
//   - Smart quoting: the minimal bracketing that makes a byte run safely
//     enclosable for a given delimiter
//   - Destructive split iteration (SplitNext) over a delimiter
//
// Byte string allocations reserve one slot of headroom past the used
// region so a terminator can be written on demand without relocating.
//
// Str distinguishes null from empty exactly as seq.Seq does, and the zero
// value is a null string.
package bstr
