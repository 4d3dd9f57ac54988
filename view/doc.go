// Package view is a Bubble Tea component that shows a rope and colors each
// character by how it relates to the characters the user has selected.
//
// Mouse coordinates given to Update are relative to the component's top-left
// cell. A press without modifiers starts a new selection; dragging, or a
// press with shift held, adds cells to it.
package view
