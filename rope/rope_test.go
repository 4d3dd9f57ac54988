package rope

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_IsEmpty(t *testing.T) {
	r := New()
	if !r.IsEmpty() || r.Len() != 0 || r.String() != "" {
		t.Fatalf("new rope: got len=%d text=%q, want empty", r.Len(), r.String())
	}
	if got := len(r.Fragments()); got != 0 {
		t.Fatalf("fragments: got %d, want 0", got)
	}
}

func TestFrom_SingleFragment(t *testing.T) {
	var src Source
	b := src.Buffer("héllo")
	r := From(&b)

	if got, want := r.Len(), len("héllo"); got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}
	if got, want := r.RuneCount(), 5; got != want {
		t.Fatalf("rune count: got %d, want %d", got, want)
	}
	frags := r.Fragments()
	if len(frags) != 1 || frags[0].Buffer() != &b || frags[0].Start() != 0 || frags[0].End() != b.Len() {
		t.Fatalf("fragments: got %+v, want one fragment over the whole buffer", frags)
	}
}

func TestFrom_EmptyBufferHasNoFragments(t *testing.T) {
	var src Source
	if got := len(src.Rope("").Fragments()); got != 0 {
		t.Fatalf("fragments of empty buffer: got %d, want 0", got)
	}
}

func TestAppend_KeepsOrderAndIdentities(t *testing.T) {
	var src Source
	a := src.Rope("ab")
	b := src.Rope("cd")
	idsA := a.IDs()

	var r Rope
	r.Append(a, b)
	if got, want := r.String(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if diff := cmp.Diff(append(idsA, b.IDs()...), r.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_DoesNotAliasSharedFragments(t *testing.T) {
	var src Source
	base := Concat(src.Rope("a"), src.Rope("b"))
	x := base
	y := base
	x.Append(src.Rope("x"))
	y.Append(src.Rope("y"))

	if got := x.String(); got != "abx" {
		t.Fatalf("x: got %q, want %q", got, "abx")
	}
	if got := y.String(); got != "aby" {
		t.Fatalf("y: got %q, want %q", got, "aby")
	}
	if got := base.String(); got != "ab" {
		t.Fatalf("base: got %q, want %q", got, "ab")
	}
}

func TestSlice_AcrossFragments(t *testing.T) {
	var src Source
	r := Concat(src.Rope("abc"), src.Rope("def"), src.Rope("ghi"))

	cases := []struct {
		start, end int
		want       string
		frags      int
	}{
		{start: 0, end: 9, want: "abcdefghi", frags: 3},
		{start: 1, end: 8, want: "bcdefgh", frags: 3},
		{start: 3, end: 6, want: "def", frags: 1},
		{start: 2, end: 4, want: "cd", frags: 2},
		{start: 4, end: 4, want: "", frags: 0},
		{start: 5, end: 2, want: "", frags: 0},
		{start: -3, end: 2, want: "ab", frags: 1},
		{start: 7, end: 100, want: "hi", frags: 1},
		{start: 100, end: 200, want: "", frags: 0},
	}
	for _, tc := range cases {
		got := r.Slice(tc.start, tc.end)
		if got.String() != tc.want {
			t.Fatalf("Slice(%d,%d): got %q, want %q", tc.start, tc.end, got.String(), tc.want)
		}
		if n := len(got.Fragments()); n != tc.frags {
			t.Fatalf("Slice(%d,%d) fragments: got %d, want %d", tc.start, tc.end, n, tc.frags)
		}
	}
}

func TestSlice_RetainsIdentities(t *testing.T) {
	var src Source
	r := Concat(src.Rope("abc"), src.Rope("def"))
	ids := r.IDs()

	got := r.Slice(2, 5).IDs()
	if diff := cmp.Diff(ids[2:5], got); diff != "" {
		t.Fatalf("slice ids mismatch (-want +got):\n%s", diff)
	}
}

func TestIDs_CountsCharactersNotBytes(t *testing.T) {
	var src Source
	r := src.Rope("aé😀b")

	ids := r.IDs()
	if got, want := len(ids), 4; got != want {
		t.Fatalf("ids: got %d, want %d", got, want)
	}
	// Identities advance by each character's encoded width.
	base := ids[0]
	want := []ID{base, base + 1, base + 3, base + 7}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestSource_IdentitiesNeverOverlap(t *testing.T) {
	var src Source
	a := src.Rope("same")
	b := src.Rope("same")

	seen := make(map[ID]bool)
	for _, id := range append(a.IDs(), b.IDs()...) {
		if id == 0 {
			t.Fatalf("zero id assigned")
		}
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
}

func TestChars_StopsEarly(t *testing.T) {
	var src Source
	r := src.Rope("abcdef")

	var got []rune
	for _, c := range r.Chars() {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	if string(got) != "ab" {
		t.Fatalf("chars: got %q, want %q", string(got), "ab")
	}
}
