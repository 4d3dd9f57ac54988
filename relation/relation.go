// Package relation records which source characters produced which derived
// characters.
//
// Edges run from a source identity to a derived identity. The forward index
// answers "what did this character become", the inverse index "where did this
// character come from". Both are kept in step on every insertion and edges
// are never removed.
package relation

import "github.com/iw2rmb/lineage/rope"

// Relation is a many-to-many graph of identities. The zero value is ready to
// use.
type Relation struct {
	forward map[rope.ID]*Set
	inverse map[rope.ID]*Set
	edges   int
}

// Add records the edge a -> b. Adding an existing edge has no effect.
func (r *Relation) Add(a, b rope.ID) {
	if r.forward == nil {
		r.forward = make(map[rope.ID]*Set)
		r.inverse = make(map[rope.ID]*Set)
	}
	fwd, ok := r.forward[a]
	if !ok {
		fwd = NewSet()
		r.forward[a] = fwd
	}
	if !fwd.Add(b) {
		return
	}
	inv, ok := r.inverse[b]
	if !ok {
		inv = NewSet()
		r.inverse[b] = inv
	}
	inv.Add(a)
	r.edges++
}

func (r *Relation) AddOneToMany(a rope.ID, bs []rope.ID) {
	for _, b := range bs {
		r.Add(a, b)
	}
}

func (r *Relation) AddManyToOne(as []rope.ID, b rope.ID) {
	for _, a := range as {
		r.Add(a, b)
	}
}

// AddManyToMany relates every member of as to every member of bs.
func (r *Relation) AddManyToMany(as, bs []rope.ID) {
	for _, a := range as {
		r.AddOneToMany(a, bs)
	}
}

// AddTexts relates every character of src to every character of dst.
func (r *Relation) AddTexts(src, dst rope.Rope) {
	r.AddManyToMany(src.IDs(), dst.IDs())
}

// Forward returns the derived identities recorded for a.
func (r *Relation) Forward(a rope.ID) (*Set, bool) {
	s, ok := r.forward[a]
	return s, ok
}

// Inverse returns the source identities recorded for b.
func (r *Relation) Inverse(b rope.ID) (*Set, bool) {
	s, ok := r.inverse[b]
	return s, ok
}

// Edges returns the number of distinct edges.
func (r *Relation) Edges() int { return r.edges }
