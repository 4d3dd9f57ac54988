package view

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/lineage/internal/cells"
	"github.com/iw2rmb/lineage/relation"
)

func (m *Model) renderContent() string {
	if len(m.grid.Lines) == 0 {
		return ""
	}
	sel := m.SelectedIDs()
	width := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()

	out := make([]string, 0, len(m.grid.Lines))
	for _, line := range m.grid.Lines {
		out = append(out, m.renderLine(line, sel, width))
	}
	return strings.Join(out, "\n")
}

// renderLine draws the glyphs of line that fit in width cells, merging
// neighbours of the same class into one styled run. A width <= 0 draws the
// whole line.
func (m *Model) renderLine(line []cells.Glyph, sel *relation.Set, width int) string {
	var sb, run strings.Builder
	runClass := ClassPlain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.cfg.Style.forClass(runClass).Render(run.String()))
		run.Reset()
	}

	for _, g := range line {
		if width > 0 && g.X+g.Width > width {
			break
		}
		c := m.classify(g, sel)
		if c != runClass {
			flush()
			runClass = c
		}
		run.WriteString(m.glyphText(g, c))
	}
	flush()
	return sb.String()
}

func (m *Model) glyphText(g cells.Glyph, c Class) string {
	switch {
	case g.Rune == ' ' && c != ClassPlain && m.cfg.ShowSpaces:
		return "·"
	case unicode.IsControl(g.Rune):
		return " "
	}
	return string(g.Rune)
}
