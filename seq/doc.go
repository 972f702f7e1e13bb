// Package seq provides Seq, a growable sequence of values with
// copy-on-write sharing. Assigning one Seq to another with Copy shares the
// underlying storage; the first mutation through either detaches it, so
// copies are cheap and writers never disturb each other.
//
// A Seq distinguishes null (no view at all) from empty (a view of length
// zero). The zero value is null. Borrow aliases caller-owned memory
// without copying; the caller guarantees its lifetime and the Seq copies
// it on first mutation.
//
// Operations that need element equality or ordering are package-level
// functions (Find, Contains, Equal, Compare, ...) constrained on
// comparable or cmp.Ordered, so Seq itself accepts any element type.
//
// Seq is designed for single-threaded mutation; see the concurrency notes
// on the storage core.
package seq
