// Package buf provides the copy-on-write storage core shared by every
// container in the library. A Buf owns (or borrows) a contiguous run of
// elements and exposes a view onto it that can be narrowed, grown, and
// mutated under a detach-before-write discipline.
//
// The buf package provides:
//
//   - Reference-counted allocations shared between containers on copy
//   - A four-state view model: null, empty, owned, borrowed
//   - Slicing that narrows the view without touching the allocation
//   - Detach (unshare) before any in-place mutation of shared storage
//   - Lazy allocation reuse after Clear for steady-state workloads
//   - Optional terminator headroom for zero-terminated byte storage
//
// State model:
//
// A Buf is in exactly one of four states. Null means there is no view at
// all. Empty means the view exists but has length zero. Owned means the
// view lies inside a reference-counted allocation. Borrowed means the view
// aliases caller-provided memory whose lifetime the caller guarantees; a
// borrowed view is never reference counted and is copied into an owned
// allocation before the first mutation.
//
// Concurrency:
//
// The reference count is not atomic. A Buf (and every container built on
// it) is designed for single-threaded mutation; allocations may be shared
// across goroutines only while every holder treats them as immutable.
package buf
