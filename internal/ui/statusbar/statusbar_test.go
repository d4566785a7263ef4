package statusbar

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/kingdoms/internal/types"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestStatusBar_RenderBoard(t *testing.T) {
	sb := New(Info{
		Mode:      types.ModeNormal,
		View:      types.ViewBoard,
		Season:    "Winter of Ash",
		Kingdoms:  12,
		Marked:    1,
		Refreshed: now.Add(-5 * time.Second),
		Now:       now,
	}, 160, styles.New())

	got := ansi.Strip(sb.Render())

	assert.Contains(t, got, "NORMAL")
	assert.Contains(t, got, "BOARD")
	assert.Contains(t, got, "h/l: tiers")
	assert.Contains(t, got, "Winter of Ash · 12 kingdoms · 1 marked · updated 5 seconds ago")
	assert.Equal(t, 160, lipgloss.Width(got))
}

func TestStatusBar_RenderTable(t *testing.T) {
	sb := New(Info{Mode: types.ModeNormal, View: types.ViewTable, Kingdoms: 3}, 160, styles.New())

	got := ansi.Strip(sb.Render())

	assert.Contains(t, got, "TABLE")
	assert.Contains(t, got, "s: sort")
	assert.Contains(t, got, "3 kingdoms")
	assert.NotContains(t, got, "marked")
	assert.NotContains(t, got, "updated")
}

func TestStatusBar_NarrowDropsHints(t *testing.T) {
	sb := New(Info{Mode: types.ModeNormal, Season: "S1", Kingdoms: 3}, 50, styles.New())

	got := ansi.Strip(sb.Render())

	assert.NotContains(t, got, "h/l")
	assert.Contains(t, got, "S1 · 3 kingdoms")
	assert.LessOrEqual(t, lipgloss.Width(got), 50)
}

func TestGetHints(t *testing.T) {
	tests := []struct {
		name string
		mode types.Mode
		view types.View
		want string
	}{
		{"board", types.ModeNormal, types.ViewBoard, "h/l: tiers  j/k: kingdoms  Space: mark  c: compare  Tab: table  ?: help"},
		{"table", types.ModeNormal, types.ViewTable, "j/k: rows  s: sort  Space: mark  c: compare  Tab: board  ?: help"},
		{"search", types.ModeSearch, types.ViewBoard, "Type a name  Enter: keep  Esc: cancel"},
		{"panel", types.ModePanel, types.ViewTable, "Esc: close"},
		{"loading", types.ModeLoading, types.ViewBoard, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHints(tt.mode, tt.view))
		})
	}
}
