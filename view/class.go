package view

import (
	"github.com/iw2rmb/lineage/relation"
	"github.com/iw2rmb/lineage/rope"
)

// Class is how one character relates to the current selection.
type Class int

const (
	// ClassPlain characters are unrelated to the selection.
	ClassPlain Class = iota
	// ClassSelected characters sit in a selected cell.
	ClassSelected
	// ClassSame characters share an identity with a selected character.
	ClassSame
	// ClassUpstream characters are sources of a selected character.
	ClassUpstream
	// ClassDownstream characters were derived from a selected character.
	ClassDownstream
)

func (c Class) String() string {
	switch c {
	case ClassSelected:
		return "selected"
	case ClassSame:
		return "same"
	case ClassUpstream:
		return "upstream"
	case ClassDownstream:
		return "downstream"
	}
	return "plain"
}

// Classify returns the class of the character id. inCell reports whether the
// character is drawn in a selected cell; sel holds the identities of all
// selected characters.
func Classify(id rope.ID, inCell bool, sel *relation.Set, rel *relation.Relation) Class {
	switch {
	case inCell:
		return ClassSelected
	case sel.Contains(id):
		return ClassSame
	case rel == nil || sel.Len() == 0:
		return ClassPlain
	}
	if fwd, ok := rel.Forward(id); ok && fwd.Intersects(sel) {
		return ClassUpstream
	}
	if inv, ok := rel.Inverse(id); ok && inv.Intersects(sel) {
		return ClassDownstream
	}
	return ClassPlain
}
