// Package toast renders transient notifications in the bottom-right corner.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/types"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// maxWidth caps the width of a single toast
const maxWidth = 40

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders the toasts still live at now, newest last, stacked and
// right-aligned. Returns an empty string when none are live.
func (r *ToastRenderer) Render(toasts []types.Toast, now time.Time, width int) string {
	toastWidth := min(max(width/3, 12), maxWidth)

	var rendered []string
	for _, t := range toasts {
		if t.Expired(now) {
			continue
		}
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Level.Icon()+" "+t.Message))
	}
	if len(rendered) == 0 {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Stack is a rendered toast stack anchored to the bottom-right corner of
// a screen. It satisfies the tooltip surface's Layer interface.
type Stack struct {
	view string
	x, y int
}

// Frame returns the stack and its top-left cell
func (s Stack) Frame() (string, int, int) {
	return s.view, s.x, s.y
}

// Empty reports whether there is nothing to draw
func (s Stack) Empty() bool {
	return s.view == ""
}

// Layer renders the live toasts for a width×height screen, leaving the
// bottom row to the status bar
func (r *ToastRenderer) Layer(toasts []types.Toast, now time.Time, width, height int) Stack {
	view := r.Render(toasts, now, width)
	if view == "" {
		return Stack{}
	}
	w, h := lipgloss.Size(view)
	return Stack{
		view: view,
		x:    max(width-w-1, 0),
		y:    max(height-h-1, 0),
	}
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
