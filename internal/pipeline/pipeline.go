// Package pipeline runs the demo transformation pass over an input document
// and records the provenance of every output character.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/lineage"
	"github.com/iw2rmb/lineage/rope"
)

// Result is the outcome of one pass. Output is laid out as
//
//	header(" INPUT ") input header(" OUTPUT ") part1 "\n\n" part2 ...
//
// with the indent applied to the parts.
type Result struct {
	Pass   *lineage.Pass
	Input  rope.Rope
	Output rope.Rope
}

// Run builds a fresh pass over text.
func (c *Compiled) Run(text string, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}

	pass := lineage.NewPass()
	in := pass.Ingest(text)

	parts := make([]rope.Rope, len(c.parts))
	for i, p := range c.parts {
		parts[i] = in
		if c.substitute != nil {
			parts[i] = in.ReplaceAll(c.substitute, pass.Literal(p.replacement))
		}
	}

	if c.modify != nil {
		if g, m, ok := in.FindGroup(c.modify, 1); ok {
			inner := in.Slice(g.Start, g.End)
			prefix := in.Slice(m.Start, g.Start)
			suffix := in.Slice(g.End, m.End)
			for i, p := range c.parts {
				out := pass.Track(p.transform, inner)
				parts[i] = parts[i].ReplaceFirst(c.modify, rope.Concat(prefix, out, suffix))
				log.Debug("transformed",
					zap.String("transform", p.name),
					zap.Int("input_chars", inner.RuneCount()),
					zap.Int("output_chars", out.RuneCount()))
			}
		}
	}

	var modified rope.Rope
	for i, p := range parts {
		if i > 0 {
			modified.Append(pass.Literal("\n"), pass.Literal("\n"))
		}
		modified.Append(p)
	}

	if c.indent != nil {
		if indent, ok := in.SliceGroup(c.indent, 1); ok {
			modified = modified.Indent(indent)
		}
	}

	output := rope.Concat(
		header(pass, " INPUT "),
		in,
		header(pass, " OUTPUT "),
		modified,
	)

	log.Debug("pass complete",
		zap.Int("input_bytes", in.Len()),
		zap.Int("output_chars", output.RuneCount()),
		zap.Int("fragments", len(output.Fragments())),
		zap.Int("arena_buffers", pass.Buffers()),
		zap.Int("edges", pass.Relation().Edges()))

	return &Result{Pass: pass, Input: in, Output: output}
}

func header(pass *lineage.Pass, title string) rope.Rope {
	nl := pass.Literal("\n")
	hashes := pass.Literal("###")
	return rope.Concat(nl, nl, hashes, pass.Literal(title), hashes, nl, nl)
}
