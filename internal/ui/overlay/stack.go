package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stack manages a stack of overlays with push/pop operations. Only the top
// overlay receives input and is drawn.
type Stack struct {
	overlays []Overlay
	styles   *Styles
	width    int
	height   int
}

// NewStack creates a new empty overlay stack
func NewStack() *Stack {
	return &Stack{
		overlays: make([]Overlay, 0),
		styles:   New(),
	}
}

// Push adds an overlay to the top of the stack
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop removes and returns the top overlay from the stack
// Returns nil if the stack is empty
func (s *Stack) Pop() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}

	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top
}

// Current returns the top overlay without removing it
// Returns nil if the stack is empty
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty returns true if the stack has no overlays
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Len returns the number of stacked overlays
func (s *Stack) Len() int {
	return len(s.overlays)
}

// Clear removes all overlays from the stack
func (s *Stack) Clear() {
	s.overlays = make([]Overlay, 0)
}

// SetScreen records the terminal size the stack centres its panel in
func (s *Stack) SetScreen(width, height int) {
	s.width, s.height = width, height
}

// Update forwards the message to the current overlay and handles CloseOverlayMsg
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	current := s.Current()
	newModel, cmd := current.Update(msg)

	if newOverlay, ok := newModel.(Overlay); ok {
		s.overlays[len(s.overlays)-1] = newOverlay
	}

	return cmd
}

// Frame renders the top overlay and the screen cell of its top-left corner.
// Modal panels are boxed, titled and centred; full-width bars sit on the
// last row. It satisfies the tooltip surface's Layer interface.
func (s *Stack) Frame() (string, int, int) {
	current := s.Current()
	if current == nil {
		return "", 0, 0
	}

	view := current.View()
	width, height := current.Size()
	if width == 0 {
		return view, 0, max(s.height-lipgloss.Height(view), 0)
	}

	if title := current.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, s.styles.Title.Render(title), view)
	}
	box := s.styles.Overlay.
		Width(min(width, max(s.width-2, 1))).
		MaxHeight(max(s.height, height)).
		Render(view)

	boxWidth, boxHeight := lipgloss.Size(box)
	x := max((s.width-boxWidth)/2, 0)
	y := max((s.height-boxHeight)/2, 0)
	return box, x, y
}
