// Package overlay provides the modal panels drawn over the dashboard: help,
// sort, search, kingdom detail, head-to-head comparison and confirmation.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	// Size returns the content size; a zero width means a full-width bar
	// pinned to the bottom row
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when an overlay produces a result. Key names the
// action and Value carries its payload.
type SelectionMsg struct {
	Key   string
	Value any
}
