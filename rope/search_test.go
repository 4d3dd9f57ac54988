package rope

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFind_LeftmostAndAll(t *testing.T) {
	var src Source
	r := Concat(src.Rope("a.b"), src.Rope(".c"))
	dot := Literal(".")

	m, ok := r.Find(dot)
	if !ok || m != (Range{Start: 1, End: 2}) {
		t.Fatalf("Find: got %v ok=%v, want %v", m, ok, Range{Start: 1, End: 2})
	}

	want := []Range{{Start: 1, End: 2}, {Start: 3, End: 4}}
	if diff := cmp.Diff(want, r.FindAll(dot)); diff != "" {
		t.Fatalf("FindAll mismatch (-want +got):\n%s", diff)
	}
}

func TestFind_NoMatchIsAbsence(t *testing.T) {
	var src Source
	r := src.Rope("abc")
	re := Literal("z")

	if _, ok := r.Find(re); ok {
		t.Fatalf("Find: got a match, want none")
	}
	if got := r.FindAll(re); got != nil {
		t.Fatalf("FindAll: got %v, want nil", got)
	}
	if _, ok := r.SliceFirst(re); ok {
		t.Fatalf("SliceFirst: got a match, want none")
	}
	if got := r.SliceAll(re); got != nil {
		t.Fatalf("SliceAll: got %v, want nil", got)
	}
}

func TestSliceAll_ViewsOriginalCharacters(t *testing.T) {
	var src Source
	r := src.Rope("x1y22z")
	ids := r.IDs()

	parts := r.SliceAll(regexp.MustCompile(`[0-9]+`))
	if len(parts) != 2 {
		t.Fatalf("parts: got %d, want 2", len(parts))
	}
	if got := parts[1].String(); got != "22" {
		t.Fatalf("parts[1]: got %q, want %q", got, "22")
	}
	if diff := cmp.Diff(ids[3:5], parts[1].IDs()); diff != "" {
		t.Fatalf("parts[1] ids mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceGroup(t *testing.T) {
	var src Source
	r := src.Rope(`Indent: "  " rest`)
	re := regexp.MustCompile(`Indent: "(.*)"`)

	g, m, ok := r.FindGroup(re, 1)
	if !ok {
		t.Fatalf("FindGroup: no match")
	}
	if g != (Range{Start: 9, End: 11}) || m != (Range{Start: 0, End: 12}) {
		t.Fatalf("FindGroup: got group=%v match=%v", g, m)
	}
	got, ok := r.SliceGroup(re, 1)
	if !ok || got.String() != "  " {
		t.Fatalf("SliceGroup: got %q ok=%v, want %q", got.String(), ok, "  ")
	}
	if _, ok := r.SliceGroup(re, 2); ok {
		t.Fatalf("SliceGroup(2): got a match for a missing group")
	}
}

func TestReplaceFirst(t *testing.T) {
	var src Source
	r := src.Rope("ab.cd")
	repl := src.Rope("??")

	got := r.ReplaceFirst(Literal("."), repl)
	if got.String() != "ab??cd" {
		t.Fatalf("ReplaceFirst: got %q, want %q", got.String(), "ab??cd")
	}

	ids := r.IDs()
	want := append(append(append([]ID{}, ids[:2]...), repl.IDs()...), ids[3:]...)
	if diff := cmp.Diff(want, got.IDs()); diff != "" {
		t.Fatalf("ReplaceFirst ids mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceFirst_NoMatchKeepsTextAndIdentities(t *testing.T) {
	var src Source
	r := Concat(src.Rope("abc"), src.Rope("def"))

	got := r.ReplaceFirst(Literal("z"), src.Rope("??"))
	if got.String() != r.String() {
		t.Fatalf("text: got %q, want %q", got.String(), r.String())
	}
	if diff := cmp.Diff(r.IDs(), got.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceAll(t *testing.T) {
	var src Source
	r := src.Rope("a.b.c")
	repl := src.Rope("??")

	got := r.ReplaceAll(Literal("."), repl)
	if got.String() != "a??b??c" {
		t.Fatalf("ReplaceAll: got %q, want %q", got.String(), "a??b??c")
	}

	ids := got.IDs()
	if ids[1] != ids[4] || ids[1] != repl.IDs()[0] {
		t.Fatalf("replacement copies must share the replacement's identities: got %v", ids)
	}
	orig := r.IDs()
	if ids[0] != orig[0] || ids[3] != orig[2] || ids[len(ids)-1] != orig[4] {
		t.Fatalf("retained characters changed identity: got %v, orig %v", ids, orig)
	}
}

func TestReplaceAll_MatchAtEdges(t *testing.T) {
	var src Source
	got := src.Rope(".x.").ReplaceAll(Literal("."), src.Rope("-"))
	if got.String() != "-x-" {
		t.Fatalf("ReplaceAll: got %q, want %q", got.String(), "-x-")
	}
}

func TestIndent(t *testing.T) {
	var src Source
	r := src.Rope("x\ny")
	indent := src.Rope("  ")

	got := r.Indent(indent)
	if got.String() != "  x\n  y" {
		t.Fatalf("Indent: got %q, want %q", got.String(), "  x\n  y")
	}

	ids := got.IDs()
	orig := r.IDs()
	in := indent.IDs()
	want := []ID{in[0], in[1], orig[0], orig[1], in[0], in[1], orig[2]}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("Indent ids mismatch (-want +got):\n%s", diff)
	}
}

func TestIndent_TrailingNewline(t *testing.T) {
	var src Source
	got := src.Rope("a\n").Indent(src.Rope("> "))
	if got.String() != "> a\n> " {
		t.Fatalf("Indent: got %q, want %q", got.String(), "> a\n> ")
	}
}
