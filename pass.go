// Package lineage tracks, character by character, where derived text came
// from.
//
// A Pass bundles everything one transformation run needs: an identity
// source, an arena owning derived buffers, and the relation between source
// and derived characters. Build a fresh Pass for every run and drop it
// afterwards; nothing carries over between passes.
package lineage

import (
	"github.com/iw2rmb/lineage/arena"
	"github.com/iw2rmb/lineage/relation"
	"github.com/iw2rmb/lineage/rope"
)

// Pass is the state of one transformation run.
type Pass struct {
	src      rope.Source
	buffers  arena.Arena[rope.Buffer]
	rel      relation.Relation
	literals map[string]rope.Rope
}

func NewPass() *Pass {
	return &Pass{literals: make(map[string]rope.Rope)}
}

// Ingest wraps external input text. Its characters get identities but the
// buffer is not owned by the arena.
func (p *Pass) Ingest(text string) rope.Rope {
	return p.src.Rope(text)
}

// Literal returns a rope for a fixed piece of text. Every call with the same
// text during a pass yields the same characters.
func (p *Pass) Literal(text string) rope.Rope {
	if r, ok := p.literals[text]; ok {
		return r
	}
	if p.literals == nil {
		p.literals = make(map[string]rope.Rope)
	}
	r := p.Ingest(text)
	p.literals[text] = r
	return r
}

// Alloc moves text into the arena and returns its index.
func (p *Pass) Alloc(text string) int {
	return p.buffers.Allocate(p.src.Buffer(text))
}

// Get returns the arena buffer at index i.
func (p *Pass) Get(i int) (*rope.Buffer, bool) {
	return p.buffers.Get(i)
}

// Store moves text into the arena and returns a rope over it.
func (p *Pass) Store(text string) rope.Rope {
	b, _ := p.buffers.Get(p.Alloc(text))
	return rope.From(b)
}

// Buffers returns the number of arena-owned buffers.
func (p *Pass) Buffers() int { return p.buffers.Len() }

func (p *Pass) Relation() *relation.Relation { return &p.rel }

// Track applies f to r, stores the result in the arena and relates every
// character of r to every character of the result.
func (p *Pass) Track(f func(string) string, r rope.Rope) rope.Rope {
	return p.rel.Track(p, f, r)
}
