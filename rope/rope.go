package rope

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Fragment is a view of buf.Text()[start:end].
type Fragment struct {
	buf        *Buffer
	start, end int
}

func (f Fragment) Buffer() *Buffer { return f.buf }

func (f Fragment) Start() int { return f.start }

func (f Fragment) End() int { return f.end }

func (f Fragment) Len() int { return f.end - f.start }

func (f Fragment) Text() string { return f.buf.text[f.start:f.end] }

// Rope is an ordered sequence of fragments. Operations return new ropes and
// never copy character data.
type Rope struct {
	frags []Fragment
}

// New returns an empty rope.
func New() Rope { return Rope{} }

// From returns a rope spanning all of b.
func From(b *Buffer) Rope {
	if b == nil || b.Len() == 0 {
		return Rope{}
	}
	return Rope{frags: []Fragment{{buf: b, start: 0, end: b.Len()}}}
}

// Concat joins ropes in order.
func Concat(ropes ...Rope) Rope {
	var r Rope
	r.Append(ropes...)
	return r
}

// Append extends r with the fragments of others, in order.
func (r *Rope) Append(others ...Rope) {
	for _, o := range others {
		if len(o.frags) == 0 {
			continue
		}
		// Cap the slice so appending never writes into an array shared with
		// another rope value.
		r.frags = append(r.frags[:len(r.frags):len(r.frags)], o.frags...)
	}
}

// Fragments returns a copy of r's fragment list.
func (r Rope) Fragments() []Fragment {
	if len(r.frags) == 0 {
		return nil
	}
	out := make([]Fragment, len(r.frags))
	copy(out, r.frags)
	return out
}

// Len returns the length of r in bytes.
func (r Rope) Len() int {
	n := 0
	for _, f := range r.frags {
		n += f.Len()
	}
	return n
}

func (r Rope) IsEmpty() bool { return r.Len() == 0 }

// RuneCount returns the number of characters in r.
func (r Rope) RuneCount() int {
	n := 0
	for _, f := range r.frags {
		n += utf8.RuneCountInString(f.Text())
	}
	return n
}

// String flattens r into one contiguous string.
func (r Rope) String() string {
	switch len(r.frags) {
	case 0:
		return ""
	case 1:
		return r.frags[0].Text()
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	for _, f := range r.frags {
		sb.WriteString(f.Text())
	}
	return sb.String()
}

// Slice returns the half-open byte range [start, end) of r. Both bounds clamp
// to [0, r.Len()]; an empty or inverted range yields an empty rope.
func (r Rope) Slice(start, end int) Rope {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return Rope{}
	}

	var out []Fragment
	fragEnd := 0
	for _, f := range r.frags {
		fragStart := fragEnd
		fragEnd = fragStart + f.Len()
		if fragEnd <= start {
			continue
		}
		if fragStart >= end {
			break
		}
		lo := maxInt(start-fragStart, 0)
		hi := minInt(f.Len(), end-fragStart)
		if lo >= hi {
			continue
		}
		out = append(out, Fragment{buf: f.buf, start: f.start + lo, end: f.start + hi})
	}
	return Rope{frags: out}
}

// IDs returns the identity of every character of r in flattened order.
func (r Rope) IDs() []ID {
	ids := make([]ID, 0, r.RuneCount())
	for id := range r.Chars() {
		ids = append(ids, id)
	}
	return ids
}

// Chars yields each character of r with its identity, in flattened order.
func (r Rope) Chars() iter.Seq2[ID, rune] {
	return func(yield func(ID, rune) bool) {
		for _, f := range r.frags {
			for off, c := range f.Text() {
				if !yield(f.buf.IDAt(f.start+off), c) {
					return
				}
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
