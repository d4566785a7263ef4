// Package compact renders the rank table: one row per kingdom, sortable by column.
package compact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/share"
)

// Fixed column widths; the name column takes whatever is left
const (
	colRank    = 7
	colTier    = 12
	colScore   = 9
	colRecord  = 10
	colWinRate = 7
	colMembers = 10
	colStreak  = 9
	colMove    = 5
	fixedWidth = colRank + colTier + colScore + colRecord + colWinRate + colMembers + colStreak + colMove

	// header line and separator
	headerHeight = 2
)

// Marker wraps trigger text in a named region. *zone.Manager satisfies it.
type Marker interface {
	Mark(id, v string) string
}

type noMarker struct{}

func (noMarker) Mark(_, v string) string { return v }

// RowZone marks a kingdom's name cell; clicking it moves the cursor there
func RowZone(kingdomID string) string { return "row:" + kingdomID }

// WinRateZone marks a kingdom's win rate cell
func WinRateZone(kingdomID string) string { return "winrate:" + kingdomID }

// StreakZone marks a kingdom's streak cell
func StreakZone(kingdomID string) string { return "streak:" + kingdomID }

// ListView is the table view of ranked kingdoms. Rows scroll inside a
// viewport that follows the cursor.
type ListView struct {
	standings []domain.Standing
	sort      domain.Sort
	cursor    int
	marked    map[string]bool
	marker    Marker
	styles    *Styles
	width     int
	height    int
	vp        viewport.Model
}

// NewListView creates an empty ListView with the given dimensions
func NewListView(width, height int) *ListView {
	lv := &ListView{
		sort:   domain.Sort{Field: domain.SortByRank, Order: domain.SortAsc},
		marked: make(map[string]bool),
		marker: noMarker{},
		styles: NewStyles(),
		vp:     viewport.New(width, max(height-headerHeight, 1)),
	}
	lv.width, lv.height = width, height
	return lv
}

// SetStandings replaces the rows, sorted by s. The cursor stays on the same
// kingdom when it is still present.
func (lv *ListView) SetStandings(standings []domain.Standing, s domain.Sort) {
	current, hadCurrent := lv.Current()
	lv.sort = s
	lv.standings = s.Apply(standings)
	lv.cursor = 0
	if hadCurrent {
		lv.selectID(current.ID)
	}
	lv.refresh()
	lv.ensureVisible()
}

// SetSize resizes the table
func (lv *ListView) SetSize(width, height int) {
	lv.width, lv.height = width, height
	lv.vp.Width = width
	lv.vp.Height = max(height-headerHeight, 1)
	lv.refresh()
	lv.vp.SetYOffset(lv.vp.YOffset)
	lv.ensureVisible()
}

// SetMarked sets the kingdoms marked for comparison
func (lv *ListView) SetMarked(marked map[string]bool) {
	lv.marked = marked
	lv.refresh()
}

// SetMarker sets the region marker used for trigger cells; nil disables marking
func (lv *ListView) SetMarker(m Marker) {
	if m == nil {
		m = noMarker{}
	}
	lv.marker = m
	lv.refresh()
}

// SetCursor sets the cursor position, clamped to the rows
func (lv *ListView) SetCursor(index int) {
	switch {
	case index < 0:
		lv.cursor = 0
	case index >= len(lv.standings):
		lv.cursor = max(0, len(lv.standings)-1)
	default:
		lv.cursor = index
	}
	lv.refresh()
	lv.ensureVisible()
}

// Cursor returns the cursor row index
func (lv *ListView) Cursor() int {
	return lv.cursor
}

// MoveDown moves the cursor one row down
func (lv *ListView) MoveDown() { lv.SetCursor(lv.cursor + 1) }

// MoveUp moves the cursor one row up
func (lv *ListView) MoveUp() { lv.SetCursor(lv.cursor - 1) }

// GotoTop moves the cursor to the first row
func (lv *ListView) GotoTop() { lv.SetCursor(0) }

// GotoBottom moves the cursor to the last row
func (lv *ListView) GotoBottom() { lv.SetCursor(len(lv.standings) - 1) }

// Select moves the cursor to the kingdom with the given ID
func (lv *ListView) Select(id string) bool {
	if !lv.selectID(id) {
		return false
	}
	lv.refresh()
	lv.ensureVisible()
	return true
}

func (lv *ListView) selectID(id string) bool {
	for i, st := range lv.standings {
		if st.ID == id {
			lv.cursor = i
			return true
		}
	}
	return false
}

// Current returns the standing under the cursor
func (lv *ListView) Current() (domain.Standing, bool) {
	if lv.cursor < 0 || lv.cursor >= len(lv.standings) {
		return domain.Standing{}, false
	}
	return lv.standings[lv.cursor], true
}

// Rows returns the rows in display order
func (lv *ListView) Rows() []domain.Standing {
	return lv.standings
}

// Scroll moves the viewport by delta lines without moving the cursor.
// It reports whether the visible rows changed.
func (lv *ListView) Scroll(delta int) bool {
	before := lv.vp.YOffset
	lv.vp.SetYOffset(before + delta)
	return lv.vp.YOffset != before
}

// Offset returns the index of the first visible row
func (lv *ListView) Offset() int {
	return lv.vp.YOffset
}

// ensureVisible scrolls the viewport so the cursor row is on screen
func (lv *ListView) ensureVisible() {
	switch {
	case lv.cursor < lv.vp.YOffset:
		lv.vp.SetYOffset(lv.cursor)
	case lv.cursor >= lv.vp.YOffset+lv.vp.Height:
		lv.vp.SetYOffset(lv.cursor - lv.vp.Height + 1)
	}
}

// refresh re-renders the rows into the viewport
func (lv *ListView) refresh() {
	rows := make([]string, len(lv.standings))
	for i, st := range lv.standings {
		rows[i] = lv.renderRow(i, st)
	}
	lv.vp.SetContent(strings.Join(rows, "\n"))
}

// Render renders the full table
func (lv *ListView) Render() string {
	if len(lv.standings) == 0 {
		return lv.styles.Empty.Render("No kingdoms to display")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lv.renderHeader(),
		lv.renderSeparator(),
		lv.vp.View(),
	)
}

func (lv *ListView) nameWidth() int {
	return max(10, lv.width-fixedWidth)
}

// headerCell renders a column label, highlighting the sorted column
func (lv *ListView) headerCell(label string, width int, field domain.SortField) string {
	style := lv.styles.HeaderCell
	if field != "" && field == lv.sort.Field {
		style = lv.styles.HeaderSorted
		if lv.sort.Order == domain.SortAsc {
			label += " ↓"
		} else {
			label += " ↑"
		}
	}
	return style.Width(width).Render(label)
}

// renderHeader renders the table header
func (lv *ListView) renderHeader() string {
	cells := []string{
		lv.headerCell("  #", colRank, domain.SortByRank),
		lv.headerCell("Kingdom", lv.nameWidth(), ""),
		lv.headerCell("Tier", colTier, ""),
		lv.headerCell("Score", colScore, ""),
		lv.headerCell("W/L", colRecord, ""),
		lv.headerCell("Win%", colWinRate, domain.SortByWinRate),
		lv.headerCell("Members", colMembers, domain.SortByMembers),
		lv.headerCell("Streak", colStreak, domain.SortByStreak),
		lv.headerCell("Move", colMove, ""),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderSeparator renders the separator line
func (lv *ListView) renderSeparator() string {
	return lv.styles.Separator.Render(strings.Repeat("─", max(lv.width, 1)))
}

// renderRow renders a single kingdom row
func (lv *ListView) renderRow(index int, st domain.Standing) string {
	isActive := index == lv.cursor
	isMarked := lv.marked[st.ID]

	rowStyle := lv.styles.Row
	if isMarked {
		rowStyle = lv.styles.RowMarked
	} else if isActive {
		rowStyle = lv.styles.RowActive
	}
	cell := func(col lipgloss.Style, width int) lipgloss.Style {
		return col.Inherit(rowStyle).Width(width)
	}

	nameWidth := lv.nameWidth()
	name := ansi.Truncate(st.Name, nameWidth-1, "…")

	cells := []string{
		lv.renderRankCell(st.Rank, isActive, isMarked, rowStyle),
		lv.marker.Mark(RowZone(st.ID), cell(lv.styles.ColName, nameWidth).Render(name)),
		cell(lv.styles.Tier(int(st.Tier())), colTier).Render(st.Tier().String()),
		cell(lv.styles.ColScore, colScore).Render(humanize.Comma(int64(st.Score))),
		cell(lv.styles.ColRecord, colRecord).Render(fmt.Sprintf("%dW/%dL", st.Wins, st.Losses)),
		lv.marker.Mark(WinRateZone(st.ID), cell(lv.styles.ColWinRate, colWinRate).Render(share.Percent(st.WinRate()))),
		cell(lv.styles.ColRecord, colMembers).Render(humanize.Comma(int64(st.Members))),
		lv.marker.Mark(StreakZone(st.ID), cell(lv.styles.ColStreak, colStreak).Render(fmt.Sprintf("%d", st.Streak))),
		cell(lv.styles.Row, colMove).Render(share.Movement(st)),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderRankCell renders the rank with cursor and mark indicators
func (lv *ListView) renderRankCell(rank int, isActive, isMarked bool, rowStyle lipgloss.Style) string {
	var indicator string
	switch {
	case isActive && isMarked:
		indicator = lv.styles.Marked.Render("●▶")
	case isActive:
		indicator = lv.styles.Cursor.Render("▶ ")
	case isMarked:
		indicator = lv.styles.Marked.Render("● ")
	default:
		indicator = "  "
	}

	number := fmt.Sprintf("%3d", rank)
	return lv.styles.ColRank.Inherit(rowStyle).Width(colRank).Render(indicator + number)
}
