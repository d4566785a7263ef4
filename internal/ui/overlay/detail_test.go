package overlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailStanding() domain.Standing {
	st := domain.Standing{
		Kingdom: domain.Kingdom{
			ID: "brn", Name: "Brinehold", Ruler: "Queen Maren",
			Score: 18420, Wins: 120, Losses: 30, Territory: 57, Members: 64, Streak: 6,
		},
		Rank:  1,
		Delta: 2,
	}
	st.Achievements = domain.Evaluate(st)
	return st
}

func TestDetailPanel_View(t *testing.T) {
	panel := NewDetailPanel(detailStanding(), nil)

	view := ansi.Strip(panel.View())

	for _, want := range []string{"#1 Brinehold", "Legendary", "Queen Maren", "18,420", "120W / 30L (80%)", "287.8 pts each", "▲2", "Champion", "no earlier snapshots recorded"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, "Kingdom", panel.Title())
}

func TestDetailPanel_Trend(t *testing.T) {
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	trend := []history.Entry{
		{Rank: 5, TakenAt: day},
		{Rank: 3, TakenAt: day.AddDate(0, 0, 1)},
		{Rank: 1, TakenAt: day.AddDate(0, 0, 2)},
	}

	panel := NewDetailPanel(detailStanding(), trend)
	for i := 0; i < 20; i++ {
		panel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	view := ansi.Strip(panel.View())

	assert.Contains(t, view, "#5 → #3 → #1")
	assert.Contains(t, view, "2026-03-01 to 2026-03-03, 3 snapshots")
}

func TestDetailPanel_Scrolling(t *testing.T) {
	panel := NewDetailPanel(detailStanding(), nil)
	require.Greater(t, panel.lines, detailViewHeight, "content should overflow the viewport")

	panel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, panel.ScrollOffset(), "cannot scroll above the top")

	panel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, panel.ScrollOffset())

	panel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, panel.lines-detailViewHeight, panel.ScrollOffset())

	panel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, panel.ScrollOffset())
}

func TestDetailPanel_NoAchievements(t *testing.T) {
	st := domain.Standing{Kingdom: domain.Kingdom{ID: "x", Name: "Xorn"}, Rank: 30}

	view := ansi.Strip(NewDetailPanel(st, nil).View())

	assert.Contains(t, view, "none yet")
	assert.NotContains(t, view, "Ruler")
}

func TestDetailPanel_Keys(t *testing.T) {
	panel := NewDetailPanel(detailStanding(), nil)

	_, cmd := panel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	sel, ok := cmd().(SelectionMsg)
	require.True(t, ok)
	assert.Equal(t, ActionShareKingdom, sel.Key)
	assert.Equal(t, "brn", sel.Value)

	_, cmd = panel.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok = cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}
