package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/types"
	"github.com/riordanpawley/kingdoms/internal/ui/board"
	"github.com/riordanpawley/kingdoms/internal/ui/statusbar"
	"github.com/riordanpawley/kingdoms/internal/ui/toast"
	"github.com/riordanpawley/kingdoms/internal/ui/tooltip"
)

// View renders the frame. The base view is zone scanned before anything is
// composited over it, so trigger regions are in screen cells and no layer
// can shift them.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Show loading spinner if loading
	if m.loading {
		return m.renderLoading()
	}

	mainHeight := max(m.height-1, 1)

	var mainView string
	switch {
	case len(m.standings) == 0:
		mainView = m.renderEmpty(mainHeight)
	case m.view == types.ViewTable:
		mainView = m.renderTableView(mainHeight)
	default:
		mainView = m.renderBoardView(mainHeight)
	}

	sb := statusbar.New(statusbar.Info{
		Mode:      m.Mode(),
		View:      m.view,
		Season:    m.snapshot.Season,
		Kingdoms:  len(m.standings),
		Marked:    len(m.markOrder),
		Refreshed: m.lastRefresh,
		Now:       m.clock.Now(),
	}, m.width, m.styles)

	view := lipgloss.JoinVertical(lipgloss.Left, mainView, sb.Render())
	view = m.zones.Scan(view)

	// Tooltips first, then panels and toasts above them
	view = m.surface.Render(view, m.width, m.height)

	top := tooltip.NewSurface()
	if !m.overlayStack.IsEmpty() {
		top.Mount(m.overlayStack)
	}
	if toasts := toast.New(m.styles).Layer(m.toasts, m.clock.Now(), m.width, m.height); !toasts.Empty() {
		top.Mount(toasts)
	}
	return top.Render(view, m.width, m.height)
}

func (m Model) renderBoardView(height int) string {
	columns := m.buildColumns()
	pos := m.nav.GetPosition(m.navColumns())

	return board.Render(columns, board.Cursor{Column: pos.Column, Row: pos.Row}, board.Options{
		Marked:           m.marked,
		ShowAchievements: m.config.UI.ShowAchievements,
		Marker:           m.zones,
	}, m.styles, m.width, height)
}

func (m Model) renderTableView(height int) string {
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(m.table.Render())
}

// renderEmpty is shown when the first load failed
func (m Model) renderEmpty(height int) string {
	lines := []string{m.styles.KingdomName.Render("No standings loaded")}
	if m.loadErr != nil {
		lines = append(lines, m.styles.Muted.Render(m.loadErr.Error()))
	}
	lines = append(lines, "", m.styles.Muted.Render("r: retry  q: quit"))

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading() string {
	msg := "Loading standings..."
	if m.source != nil {
		msg = "Loading standings from " + m.source.Location() + "..."
	}
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		msg,
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
