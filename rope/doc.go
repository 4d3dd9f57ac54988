// Package rope implements a zero-copy text representation whose characters
// keep a stable identity across slicing and re-assembly.
//
// A Rope is an ordered list of fragments. Each fragment is a half-open byte
// range [start, end) into an immutable Buffer. Offsets are byte offsets into
// the flattened text; out-of-range offsets clamp instead of failing.
//
// Every character's identity is its Buffer's base ID plus its byte offset in
// that buffer, so a character viewed through any number of slices always
// reports the same ID.
package rope
