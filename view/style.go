package view

import "github.com/charmbracelet/lipgloss"

// Style controls how each provenance class is drawn.
type Style struct {
	Text       lipgloss.Style
	Selected   lipgloss.Style
	Same       lipgloss.Style
	Upstream   lipgloss.Style
	Downstream lipgloss.Style
}

func DefaultStyle() Style {
	return StyleFor(lipgloss.DefaultRenderer())
}

// StyleFor builds the default palette on renderer r.
func StyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Text:       r.NewStyle(),
		Selected:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Same:       r.NewStyle().Foreground(lipgloss.Color("4")),
		Upstream:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Downstream: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (s Style) forClass(c Class) lipgloss.Style {
	switch c {
	case ClassSelected:
		return s.Selected
	case ClassSame:
		return s.Same
	case ClassUpstream:
		return s.Upstream
	case ClassDownstream:
		return s.Downstream
	}
	return s.Text
}
