package relation

import "github.com/iw2rmb/lineage/rope"

// Allocator gives freshly computed text its own identities.
type Allocator interface {
	Store(text string) rope.Rope
}

// Track applies f to the text of s, stores the result through alloc and
// relates every character of s to every character of the result.
//
// f is treated as opaque: no positional correspondence is recorded.
func (r *Relation) Track(alloc Allocator, f func(string) string, s rope.Rope) rope.Rope {
	out := alloc.Store(f(s.String()))
	r.AddTexts(s, out)
	return out
}
