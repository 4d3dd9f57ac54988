package view

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		if msg.Action == tea.MouseActionRelease {
			m.dragging = false
		}
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		c := m.screenToCell(msg.X, msg.Y)
		add := msg.Shift || msg.Ctrl || msg.Alt
		m = m.Select(c.x, c.y, add)
		m.dragging = true
		return m, m.selectionCmd()

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		c := m.screenToCell(msg.X, msg.Y)
		if _, ok := m.selected[c]; ok || m.grid.At(c.x, c.y) == nil {
			return m, nil
		}
		m = m.Select(c.x, c.y, true)
		return m, m.selectionCmd()

	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
