package relation

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/iw2rmb/lineage/rope"
)

// Set is an ordered set of character identities.
type Set struct {
	tree *treeset.Set
}

// NewSet returns a set holding ids.
func NewSet(ids ...rope.ID) *Set {
	s := &Set{tree: treeset.NewWith(compareIDs)}
	for _, id := range ids {
		s.tree.Add(id)
	}
	return s
}

func compareIDs(a, b interface{}) int {
	x, y := a.(rope.ID), b.(rope.ID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Add inserts id and reports whether it was absent.
func (s *Set) Add(id rope.ID) bool {
	if s.tree.Contains(id) {
		return false
	}
	s.tree.Add(id)
	return true
}

func (s *Set) Contains(id rope.ID) bool {
	if s == nil {
		return false
	}
	return s.tree.Contains(id)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Size()
}

// IDs returns the members in ascending order.
func (s *Set) IDs() []rope.ID {
	if s.Len() == 0 {
		return nil
	}
	out := make([]rope.ID, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, it.Value().(rope.ID))
	}
	return out
}

// Intersects reports whether s and o share a member.
func (s *Set) Intersects(o *Set) bool {
	if s.Len() == 0 || o.Len() == 0 {
		return false
	}
	small, large := s, o
	if small.Len() > large.Len() {
		small, large = large, small
	}
	it := small.tree.Iterator()
	for it.Next() {
		if large.tree.Contains(it.Value()) {
			return true
		}
	}
	return false
}
