package view

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineage/internal/cells"
	"github.com/iw2rmb/lineage/relation"
	"github.com/iw2rmb/lineage/rope"
)

// cell is a grid coordinate in content space (not screen space).
type cell struct{ x, y int }

// Model is a Bubble Tea component that renders a rope with provenance
// coloring.
type Model struct {
	cfg Config

	content rope.Rope
	rel     *relation.Relation
	grid    cells.Grid

	selected map[cell]struct{}
	dragging bool

	viewport viewport.Model
}

func New(cfg Config) Model {
	if !cfg.KeyMap.ClearSelection.Enabled() && !cfg.KeyMap.PageUp.Enabled() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		selected: make(map[cell]struct{}),
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// SetContent replaces the displayed rope and the relation used to color it.
// The selection is kept; cells that no longer hold a character are ignored.
func (m Model) SetContent(r rope.Rope, rel *relation.Relation) Model {
	m.content = r
	m.rel = rel
	m.grid = cells.Layout(r)
	m.rebuildContent()
	return m
}

func (m Model) Content() rope.Rope { return m.content }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	return m
}

// Select marks the content cell (x, y). Unless add is set the previous
// selection is dropped first. Cells without a character are not selectable.
func (m Model) Select(x, y int, add bool) Model {
	if !add {
		m.selected = make(map[cell]struct{})
	}
	if m.grid.At(x, y) != nil {
		m.selected = cloneCells(m.selected)
		m.selected[cell{x, y}] = struct{}{}
	}
	m.rebuildContent()
	return m
}

func (m Model) ClearSelection() Model {
	if len(m.selected) == 0 {
		return m
	}
	m.selected = make(map[cell]struct{})
	m.rebuildContent()
	return m
}

// SelectedIDs returns the identities of every character in a selected cell.
func (m Model) SelectedIDs() *relation.Set {
	ids := relation.NewSet()
	for c := range m.selected {
		for _, g := range m.grid.At(c.x, c.y) {
			ids.Add(g.ID)
		}
	}
	return ids
}

// Counts returns the number of characters in each class.
func (m Model) Counts() map[Class]int {
	counts := make(map[Class]int)
	sel := m.SelectedIDs()
	for _, line := range m.grid.Lines {
		for _, g := range line {
			counts[m.classify(g, sel)]++
		}
	}
	return counts
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.cfg.KeyMap.PageUp):
			m.viewport.HalfViewUp()
		case key.Matches(msg, m.cfg.KeyMap.PageDown):
			m.viewport.HalfViewDown()
		case key.Matches(msg, m.cfg.KeyMap.ClearSelection):
			if len(m.selected) == 0 {
				return m, nil
			}
			m = m.ClearSelection()
			return m, m.selectionCmd()
		}
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) rebuildContent() {
	y := m.viewport.YOffset
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(y)
}

func (m Model) classify(g cells.Glyph, sel *relation.Set) Class {
	_, inCell := m.selected[cell{g.X, g.Y}]
	return Classify(g.ID, inCell, sel, m.rel)
}

func cloneCells(in map[cell]struct{}) map[cell]struct{} {
	out := make(map[cell]struct{}, len(in)+1)
	for c := range in {
		out[c] = struct{}{}
	}
	return out
}
