package rope

import "regexp"

// Range is a half-open byte range [Start, End) in flattened-text coordinates.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

// Literal compiles s as a pattern that matches s verbatim.
func Literal(s string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(s))
}

var newlineRE = Literal("\n")

// Find returns the leftmost match of re in r.
func (r Rope) Find(re *regexp.Regexp) (Range, bool) {
	loc := re.FindStringIndex(r.String())
	if loc == nil {
		return Range{}, false
	}
	return Range{Start: loc[0], End: loc[1]}, true
}

// FindAll returns all non-overlapping matches of re in r, left to right.
func (r Rope) FindAll(re *regexp.Regexp) []Range {
	locs := re.FindAllStringIndex(r.String(), -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Range, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Range{Start: loc[0], End: loc[1]})
	}
	return out
}

// FindGroup returns the range of capture group n within the leftmost match of
// re, along with the range of the whole match. ok is false when there is no
// match or group n did not participate in it.
func (r Rope) FindGroup(re *regexp.Regexp, n int) (group, match Range, ok bool) {
	if n < 0 || n > re.NumSubexp() {
		return Range{}, Range{}, false
	}
	loc := re.FindStringSubmatchIndex(r.String())
	if loc == nil || loc[2*n] < 0 {
		return Range{}, Range{}, false
	}
	return Range{Start: loc[2*n], End: loc[2*n+1]}, Range{Start: loc[0], End: loc[1]}, true
}

// SliceFirst returns the part of r covered by the leftmost match of re.
func (r Rope) SliceFirst(re *regexp.Regexp) (Rope, bool) {
	m, ok := r.Find(re)
	if !ok {
		return Rope{}, false
	}
	return r.Slice(m.Start, m.End), true
}

// SliceAll returns the parts of r covered by each match of re.
func (r Rope) SliceAll(re *regexp.Regexp) []Rope {
	ms := r.FindAll(re)
	if len(ms) == 0 {
		return nil
	}
	out := make([]Rope, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.Slice(m.Start, m.End))
	}
	return out
}

// SliceGroup returns the part of r covered by capture group n of the leftmost
// match of re.
func (r Rope) SliceGroup(re *regexp.Regexp, n int) (Rope, bool) {
	g, _, ok := r.FindGroup(re, n)
	if !ok {
		return Rope{}, false
	}
	return r.Slice(g.Start, g.End), true
}

// ReplaceFirst substitutes replacement for the leftmost match of re. Without
// a match the result has the same text and identities as r.
func (r Rope) ReplaceFirst(re *regexp.Regexp, replacement Rope) Rope {
	m, ok := r.Find(re)
	if !ok {
		return r.Slice(0, r.Len())
	}
	return Concat(r.Slice(0, m.Start), replacement, r.Slice(m.End, r.Len()))
}

// ReplaceAll substitutes replacement for every match of re, left to right.
func (r Rope) ReplaceAll(re *regexp.Regexp, replacement Rope) Rope {
	var out Rope
	cursor := 0
	for _, m := range r.FindAll(re) {
		out.Append(r.Slice(cursor, m.Start), replacement)
		cursor = m.End
	}
	out.Append(r.Slice(cursor, r.Len()))
	return out
}

// Indent prefixes r, and every line that follows a newline in r, with
// indent. The newlines themselves are retained from r rather than replaced.
func (r Rope) Indent(indent Rope) Rope {
	out := indent
	cursor := 0
	for _, m := range r.FindAll(newlineRE) {
		out.Append(r.Slice(cursor, m.End), indent)
		cursor = m.End
	}
	out.Append(r.Slice(cursor, r.Len()))
	return out
}
