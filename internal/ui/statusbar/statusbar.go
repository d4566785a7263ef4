// Package statusbar renders the bottom line of the dashboard: the mode
// badge, key hints and a summary of the loaded snapshot.
package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/kingdoms/internal/types"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// Info is what the status bar reports
type Info struct {
	Mode      types.Mode
	View      types.View
	Season    string
	Kingdoms  int
	Marked    int
	Refreshed time.Time
	Now       time.Time
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	info   Info
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for info at the given width
func New(info Info, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		info:   info,
		width:  width,
		styles: styles,
	}
}

// summary is the right-hand segment, e.g. "Winter of Ash · 12 kingdoms · 2 marked · updated 5 seconds ago"
func (sb StatusBar) summary() string {
	var parts []string
	if sb.info.Season != "" {
		parts = append(parts, sb.info.Season)
	}
	parts = append(parts, fmt.Sprintf("%d kingdoms", sb.info.Kingdoms))
	if sb.info.Marked > 0 {
		parts = append(parts, fmt.Sprintf("%d marked", sb.info.Marked))
	}
	if !sb.info.Refreshed.IsZero() && !sb.info.Now.IsZero() {
		parts = append(parts, "updated "+humanize.RelTime(sb.info.Refreshed, sb.info.Now, "ago", "from now"))
	}
	return strings.Join(parts, " · ")
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.info.Mode.String() + " ")
	viewBadge := sb.styles.StatusInfo.Render(" " + strings.ToUpper(sb.info.View.String()) + " ")
	left := modeBadge + viewBadge

	right := sb.styles.StatusInfo.Render(sb.summary() + " ")
	inner := sb.width - sb.styles.StatusBar.GetHorizontalFrameSize()

	// Hints fill the middle and are dropped first when space runs out
	if hints := GetHints(sb.info.Mode, sb.info.View); hints != "" {
		withHints := left + sb.styles.StatusHint.Render(" │ "+hints)
		if lipgloss.Width(withHints)+lipgloss.Width(right)+1 <= inner {
			left = withHints
		}
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	content := left
	if gap > 0 {
		content += strings.Repeat(" ", gap) + right
	}

	return sb.styles.StatusBar.Width(sb.width).MaxWidth(sb.width).Render(content)
}
