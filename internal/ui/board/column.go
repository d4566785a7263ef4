package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// visibleWindow returns the [start, end) range of cards that fit in height
// while keeping the cursor row on screen
func visibleWindow(total, cursorRow, height int) (start, end int) {
	fit := max(height/cardHeight, 1)
	if total <= fit {
		return 0, total
	}
	start = max(0, cursorRow-fit+1)
	end = min(start+fit, total)
	return start, end
}

// renderColumn renders a tier column with header and kingdom cards
func renderColumn(col Column, cursorRow int, isActive bool, opts Options, width, height int, s *styles.Styles) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Header, e.g. "■─ Legendary (3) ─────"; the tier swatch and padding take five cells
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title(), len(col.Standings))
	if remaining := width - ansi.StringWidth(headerText) - 5; remaining > 0 {
		headerText += strings.Repeat("─", remaining)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.TierBadge(int(col.Tier)).Render(" "),
		headerStyle.Render(headerText))

	// header line plus its bottom margin, and one line for the overflow hint
	bodyHeight := max(height-3, cardHeight)
	start, end := visibleWindow(len(col.Standings), cursorRow, bodyHeight)

	cardWidth := width - 2
	var cards []string
	for i := start; i < end; i++ {
		st := col.Standings[i]
		isCursor := isActive && i == cursorRow
		cards = append(cards, renderCard(st, isCursor, opts.Marked[st.ID], cardWidth, opts, s))
	}

	var hint string
	switch {
	case len(col.Standings) == 0:
		hint = s.Muted.Render("no kingdoms")
	case start > 0 && end < len(col.Standings):
		hint = s.Muted.Render(fmt.Sprintf("↑%d ↓%d more", start, len(col.Standings)-end))
	case start > 0:
		hint = s.Muted.Render(fmt.Sprintf("↑%d more", start))
	case end < len(col.Standings):
		hint = s.Muted.Render(fmt.Sprintf("↓%d more", len(col.Standings)-end))
	}
	if hint != "" {
		cards = append(cards, hint)
	}

	content := s.Column.Width(width).Render(strings.Join(cards, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}
