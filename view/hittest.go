package view

// screenToCell maps component-local mouse coordinates to a content cell.
//
// (0,0) is the top-left of the visible content region; the vertical scroll
// offset is applied here.
func (m Model) screenToCell(x, y int) cell {
	left := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	top := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()
	return cell{x: x - left, y: y - top + m.viewport.YOffset}
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
