// Package board renders the tier board: one column of kingdom cards per tier.
package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// Render renders the entire board, one column per tier
func Render(columns []Column, cursor Cursor, opts Options, s *styles.Styles, width, height int) string {
	if len(columns) == 0 {
		return ""
	}

	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorRow := 0
		if isActive {
			cursorRow = cursor.Row
		}

		columnStr := renderColumn(col, cursorRow, isActive, opts, columnWidth, height, s)

		// Force consistent width so trigger regions line up across refreshes
		sized := lipgloss.NewStyle().Width(columnWidth).MaxWidth(columnWidth).Height(height).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
