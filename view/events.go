package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineage/rope"
)

// SelectionMsg is emitted after the selection changes.
type SelectionMsg struct {
	IDs    []rope.ID
	Counts map[Class]int
}

func (m Model) selectionCmd() tea.Cmd {
	msg := SelectionMsg{IDs: m.SelectedIDs().IDs(), Counts: m.Counts()}
	return func() tea.Msg { return msg }
}
