// Package cells lays a rope out on a terminal grid and maps grid cells back
// to the characters drawn there.
package cells

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/iw2rmb/lineage/rope"
)

// Glyph is one character placed on the grid.
//
// Characters of one grapheme cluster share X; only the first carries the
// cluster's Width, the rest have Width 0.
type Glyph struct {
	ID    rope.ID
	Rune  rune
	X, Y  int
	Width int
}

// Grid is a rope split into lines. Newline characters are not drawn.
type Grid struct {
	Lines [][]Glyph
}

type char struct {
	id rope.ID
	r  rune
}

// Layout places every character of r on a grid.
func Layout(r rope.Rope) Grid {
	var g Grid
	var line []char
	for id, c := range r.Chars() {
		if c == '\n' {
			g.Lines = append(g.Lines, placeLine(line, len(g.Lines)))
			line = line[:0]
			continue
		}
		line = append(line, char{id: id, r: c})
	}
	g.Lines = append(g.Lines, placeLine(line, len(g.Lines)))
	return g
}

func placeLine(line []char, y int) []Glyph {
	if len(line) == 0 {
		return nil
	}
	runes := make([]rune, len(line))
	for i, c := range line {
		runes[i] = c.r
	}

	out := make([]Glyph, 0, len(line))
	x, i := 0, 0
	gr := uniseg.NewGraphemes(string(runes))
	for gr.Next() {
		n := len(gr.Runes())
		w := gr.Width()
		if w == 0 && unicode.IsControl(line[i].r) {
			w = 1
		}
		for k := 0; k < n && i < len(line); k++ {
			gw := 0
			if k == 0 {
				gw = w
			}
			out = append(out, Glyph{ID: line[i].id, Rune: line[i].r, X: x, Y: y, Width: gw})
			i++
		}
		x += w
	}
	return out
}

func (g Grid) Height() int { return len(g.Lines) }

// Width returns the widest line's width in cells.
func (g Grid) Width() int {
	w := 0
	for _, line := range g.Lines {
		if lw := LineWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// LineWidth returns the number of cells line occupies.
func LineWidth(line []Glyph) int {
	w := 0
	for _, gl := range line {
		w += gl.Width
	}
	return w
}

// At returns the glyphs of the cluster covering cell (x, y), or nil when the
// cell is empty or off the grid.
func (g Grid) At(x, y int) []Glyph {
	if y < 0 || y >= len(g.Lines) || x < 0 {
		return nil
	}
	line := g.Lines[y]
	for i := 0; i < len(line); i++ {
		gl := line[i]
		if gl.Width == 0 || x < gl.X || x >= gl.X+gl.Width {
			continue
		}
		j := i + 1
		for j < len(line) && line[j].Width == 0 && line[j].X == gl.X {
			j++
		}
		return line[i:j]
	}
	return nil
}
