package compact

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMarker struct {
	ids []string
}

func (r *recordingMarker) Mark(id, v string) string {
	r.ids = append(r.ids, id)
	return v
}

func createTestStandings(n int) []domain.Standing {
	kingdoms := make([]domain.Kingdom, n)
	for i := range kingdoms {
		kingdoms[i] = domain.Kingdom{
			ID:      fmt.Sprintf("k%02d", i+1),
			Name:    fmt.Sprintf("Kingdom %02d", i+1),
			Score:   10000 - i*100,
			Wins:    10 + i,
			Losses:  5,
			Members: 20 + i,
			Streak:  i % 4,
		}
	}
	return domain.Rank(kingdoms, nil)
}

var byRank = domain.Sort{Field: domain.SortByRank, Order: domain.SortAsc}

func newTestView(n, width, height int) *ListView {
	lv := NewListView(width, height)
	lv.SetStandings(createTestStandings(n), byRank)
	return lv
}

func TestSetCursor(t *testing.T) {
	lv := newTestView(5, 100, 20)

	tests := []struct {
		name     string
		index    int
		expected int
	}{
		{"Normal position", 2, 2},
		{"Negative position", -1, 0},
		{"Beyond end", 10, 4},
		{"At end", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv.SetCursor(tt.index)
			assert.Equal(t, tt.expected, lv.Cursor())
		})
	}
}

func TestMoveAndSelect(t *testing.T) {
	lv := newTestView(5, 100, 20)

	lv.MoveUp()
	assert.Equal(t, 0, lv.Cursor())
	lv.MoveDown()
	lv.MoveDown()
	assert.Equal(t, 2, lv.Cursor())
	lv.GotoBottom()
	assert.Equal(t, 4, lv.Cursor())
	lv.GotoTop()
	assert.Equal(t, 0, lv.Cursor())

	assert.True(t, lv.Select("k03"))
	cur, ok := lv.Current()
	require.True(t, ok)
	assert.Equal(t, "k03", cur.ID)
	assert.False(t, lv.Select("missing"))
	assert.Equal(t, 2, lv.Cursor())
}

func TestSetStandings_KeepsCursorOnKingdom(t *testing.T) {
	lv := newTestView(5, 100, 20)
	lv.Select("k02")

	// Descending rank puts k02 fourth
	lv.SetStandings(createTestStandings(5), domain.Sort{Field: domain.SortByRank, Order: domain.SortDesc})

	cur, ok := lv.Current()
	require.True(t, ok)
	assert.Equal(t, "k02", cur.ID)
	assert.Equal(t, 3, lv.Cursor())
	assert.Equal(t, "k05", lv.Rows()[0].ID)
}

func TestCurrent_Empty(t *testing.T) {
	lv := NewListView(80, 20)

	_, ok := lv.Current()
	assert.False(t, ok)
}

func TestRenderEmpty(t *testing.T) {
	lv := NewListView(80, 20)

	assert.Contains(t, ansi.Strip(lv.Render()), "No kingdoms to display")
}

func TestRender(t *testing.T) {
	lv := newTestView(3, 100, 10)

	got := ansi.Strip(lv.Render())
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "Kingdom")
	assert.Contains(t, lines[0], "Win%")
	assert.Contains(t, lines[0], "# ↓", "rank is the sorted column")
	assert.Contains(t, lines[1], "───")
	assert.Contains(t, lines[2], "▶   1")
	assert.Contains(t, lines[2], "Kingdom 01")
	assert.Contains(t, lines[2], "Legendary")
	assert.Contains(t, lines[2], "10,000")
	assert.Contains(t, lines[2], "10W/5L")
	assert.Contains(t, lines[2], "67%")
	assert.Contains(t, lines[3], "Kingdom 02")
	for i, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 100, "line %d", i)
	}
}

func TestRender_SortIndicator(t *testing.T) {
	lv := NewListView(100, 10)
	lv.SetStandings(createTestStandings(3), domain.Sort{Field: domain.SortByStreak, Order: domain.SortDesc})

	header := strings.Split(ansi.Strip(lv.Render()), "\n")[0]

	assert.Contains(t, header, "Streak ↑")
	assert.NotContains(t, header, "# ↓")
}

func TestRender_MarkedRow(t *testing.T) {
	lv := newTestView(3, 100, 10)
	lv.SetMarked(map[string]bool{"k01": true, "k02": true})

	lines := strings.Split(ansi.Strip(lv.Render()), "\n")

	assert.Contains(t, lines[2], "●▶", "marked row under the cursor")
	assert.Contains(t, lines[3], "● ")
	assert.NotContains(t, lines[4], "●")
}

func TestRender_ScrollsToCursor(t *testing.T) {
	lv := newTestView(20, 100, 7)

	lv.GotoBottom()
	got := ansi.Strip(lv.Render())

	assert.Contains(t, got, "Kingdom 20")
	assert.NotContains(t, got, "Kingdom 01")
	assert.Equal(t, 15, lv.Offset())

	lv.GotoTop()
	got = ansi.Strip(lv.Render())
	assert.Contains(t, got, "Kingdom 01")
	assert.Equal(t, 0, lv.Offset())
}

func TestScroll(t *testing.T) {
	lv := newTestView(20, 100, 7)

	assert.False(t, lv.Scroll(-1), "already at the top")
	assert.True(t, lv.Scroll(3))
	assert.Equal(t, 3, lv.Offset())
	assert.Equal(t, 0, lv.Cursor(), "scrolling leaves the cursor alone")
	assert.True(t, lv.Scroll(100))
	assert.Equal(t, 15, lv.Offset(), "clamped to the last page")
	assert.False(t, lv.Scroll(1))
}

func TestSetSize(t *testing.T) {
	lv := newTestView(20, 100, 7)
	lv.GotoBottom()

	lv.SetSize(80, 12)
	lines := strings.Split(ansi.Strip(lv.Render()), "\n")

	assert.Len(t, lines, 12)
	assert.Contains(t, ansi.Strip(lv.Render()), "Kingdom 20")
}

func TestRender_MarksTriggers(t *testing.T) {
	lv := newTestView(2, 100, 10)
	marker := &recordingMarker{}

	lv.SetMarker(marker)

	assert.Contains(t, marker.ids, RowZone("k01"))
	assert.Contains(t, marker.ids, WinRateZone("k01"))
	assert.Contains(t, marker.ids, StreakZone("k02"))
}

func TestRender_TruncatesLongNames(t *testing.T) {
	lv := NewListView(80, 6)
	standings := createTestStandings(1)
	standings[0].Name = "The Exceedingly Long Dominion of Brinehold-upon-Sea"
	lv.SetStandings(standings, byRank)

	got := ansi.Strip(lv.Render())

	assert.Contains(t, got, "…")
	assert.NotContains(t, got, "upon-Sea")
}
