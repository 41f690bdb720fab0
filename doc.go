// Package jsonish implements a JSON codec with two grammars: strict
// (RFC 8259) and loose ("JSON-ish"), a superset that also accepts
// trailing commas, // and /* */ comments, numbers missing a leading
// zero, and backslash-newline line continuations inside strings.
//
// Decode turns text into a tree of any built from nil, bool, int64,
// *big.Int (for integers too large for int64), float64, string,
// []any, and map[string]any. Marshal turns such a tree back into text.
//
// Both operations run entirely in memory, are safe for concurrent use
// on independent inputs, and never retain state across calls.
package jsonish
