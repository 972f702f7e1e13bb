// Package variant provides Var, a dynamically-typed value holding one of:
// object (ordered map of byte string to Var), list (sequence of Var),
// byte string, float64, uint64, int64, bool, or null.
//
// The zero value is null. Retyping mutators (AsObject, AsInt, ...) switch
// the kind in place, preserving the numeric value across the three number
// kinds and resetting the payload otherwise. Indexing autovivifies:
//
//	var v variant.Var
//	v.Key("user").Key("age").SetInt(30)
//	v.Key("user").Key("tags").At(0).SetString("x")
//
// Read accessors coerce across kinds (strings parse as numbers, bools
// read as 0/1) and return zero values rather than failing; GetStr,
// GetList, and GetObject return a shared static null value when the
// variant holds a different kind.
//
// Dump emits the native textual form with smart-quoted keys; ParseJSON
// and JSON bridge to strict JSON via the gjson and sjson packages.
//
// Containers inside a Var share storage copy-on-write exactly as their
// standalone counterparts do; SharedScan and UnshareAll walk the tree.
package variant
