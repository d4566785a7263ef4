package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

// stripANSI removes ANSI escape codes from a string for testing
func stripANSI(s string) string {
	return ansi.Strip(s)
}

func champion() domain.Standing {
	st := domain.Standing{
		Kingdom: domain.Kingdom{ID: "brn", Name: "Brinehold", Score: 18420, Wins: 120, Losses: 31, Territory: 57, Streak: 6, Members: 64},
		Rank:    1,
		Delta:   2,
	}
	st.Achievements = domain.Evaluate(st)
	return st
}

func TestRenderCard_Basic(t *testing.T) {
	s := styles.New()

	got := stripANSI(RenderCard(champion(), false, false, 30, Options{ShowAchievements: true}, s))
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, cardHeight)
	assert.Contains(t, lines[1], "#1 Brinehold")
	assert.NotContains(t, lines[1], "▶")
	assert.Contains(t, lines[2], "18,420 pts")
	assert.Contains(t, lines[2], "▲2")
	assert.Contains(t, lines[3], "♛")
	assert.Contains(t, lines[3], "☰", "horde badge")
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestRenderCard_Cursor(t *testing.T) {
	s := styles.New()

	got := stripANSI(RenderCard(champion(), true, false, 30, Options{}, s))

	assert.Contains(t, got, "▶#1 Brinehold")
}

func TestRenderCard_WithoutAchievements(t *testing.T) {
	s := styles.New()

	got := stripANSI(RenderCard(champion(), false, false, 30, Options{ShowAchievements: false}, s))

	assert.Contains(t, got, "64 members")
	assert.NotContains(t, got, "♛")
}

func TestRenderCard_TruncatesLongNames(t *testing.T) {
	s := styles.New()
	st := champion()
	st.Name = "The Exceedingly Long Dominion of Brinehold-upon-Sea"

	got := stripANSI(RenderCard(st, false, false, 24, Options{}, s))

	assert.Contains(t, got, "…")
	for _, line := range strings.Split(got, "\n") {
		assert.Equal(t, 24, lipgloss.Width(line))
	}
}

func TestRenderCard_MovementVariants(t *testing.T) {
	s := styles.New()

	tests := []struct {
		name string
		mod  func(*domain.Standing)
		want string
	}{
		{"fell", func(st *domain.Standing) { st.Delta = -3 }, "▼3"},
		{"steady", func(st *domain.Standing) { st.Delta = 0 }, "="},
		{"new", func(st *domain.Standing) { st.Delta = 0; st.New = true }, "new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := champion()
			tt.mod(&st)
			got := stripANSI(RenderCard(st, false, false, 30, Options{}, s))
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestRenderCard_MarkedKeepsLayout(t *testing.T) {
	s := styles.New()

	plain := RenderCard(champion(), false, false, 30, Options{}, s)
	marked := RenderCard(champion(), false, true, 30, Options{}, s)

	assert.Equal(t, stripANSI(plain), stripANSI(marked), "marking only changes the border color")
}
