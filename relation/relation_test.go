package relation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/lineage/rope"
)

func TestAdd_BothDirections(t *testing.T) {
	var r Relation
	r.Add(1, 10)

	fwd, ok := r.Forward(1)
	if !ok || !fwd.Contains(10) {
		t.Fatalf("forward(1): got %v ok=%v, want {10}", fwd.IDs(), ok)
	}
	inv, ok := r.Inverse(10)
	if !ok || !inv.Contains(1) {
		t.Fatalf("inverse(10): got %v ok=%v, want {1}", inv.IDs(), ok)
	}
}

func TestLookup_UnknownIsAbsent(t *testing.T) {
	var r Relation
	if _, ok := r.Forward(7); ok {
		t.Fatalf("forward on empty relation: got present")
	}
	r.Add(1, 2)
	if _, ok := r.Forward(2); ok {
		t.Fatalf("forward(2): got present, want absent")
	}
	if _, ok := r.Inverse(1); ok {
		t.Fatalf("inverse(1): got present, want absent")
	}
}

func TestAdd_Idempotent(t *testing.T) {
	var r Relation
	r.Add(1, 2)
	r.Add(1, 2)

	if got := r.Edges(); got != 1 {
		t.Fatalf("edges: got %d, want 1", got)
	}
	fwd, _ := r.Forward(1)
	if got := fwd.Len(); got != 1 {
		t.Fatalf("forward(1) len: got %d, want 1", got)
	}
}

func TestBulkAdd(t *testing.T) {
	var r Relation
	r.AddOneToMany(1, []rope.ID{10, 11})
	r.AddManyToOne([]rope.ID{2, 3}, 12)

	fwd, _ := r.Forward(1)
	if diff := cmp.Diff([]rope.ID{10, 11}, fwd.IDs()); diff != "" {
		t.Fatalf("forward(1) mismatch (-want +got):\n%s", diff)
	}
	inv, _ := r.Inverse(12)
	if diff := cmp.Diff([]rope.ID{2, 3}, inv.IDs()); diff != "" {
		t.Fatalf("inverse(12) mismatch (-want +got):\n%s", diff)
	}
	if got := r.Edges(); got != 4 {
		t.Fatalf("edges: got %d, want 4", got)
	}
}

func TestAddManyToMany_CartesianAndIdempotent(t *testing.T) {
	var r Relation
	as := []rope.ID{1, 2, 3}
	bs := []rope.ID{10, 20}

	r.AddManyToMany(as, bs)
	if got := r.Edges(); got != 6 {
		t.Fatalf("edges: got %d, want 6", got)
	}
	r.AddManyToMany(as, bs)
	if got := r.Edges(); got != 6 {
		t.Fatalf("edges after re-add: got %d, want 6", got)
	}
	for _, a := range as {
		fwd, _ := r.Forward(a)
		if diff := cmp.Diff(bs, fwd.IDs()); diff != "" {
			t.Fatalf("forward(%d) mismatch (-want +got):\n%s", a, diff)
		}
	}
	for _, b := range bs {
		inv, _ := r.Inverse(b)
		if diff := cmp.Diff(as, inv.IDs()); diff != "" {
			t.Fatalf("inverse(%d) mismatch (-want +got):\n%s", b, diff)
		}
	}
}

func TestAddTexts(t *testing.T) {
	var src rope.Source
	a := src.Rope("ab")
	b := src.Rope("xyz")

	var r Relation
	r.AddTexts(a, b)
	if got := r.Edges(); got != 6 {
		t.Fatalf("edges: got %d, want 6", got)
	}
	for _, id := range a.IDs() {
		fwd, _ := r.Forward(id)
		if diff := cmp.Diff(b.IDs(), fwd.IDs()); diff != "" {
			t.Fatalf("forward(%d) mismatch (-want +got):\n%s", id, diff)
		}
	}
}
