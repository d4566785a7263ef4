package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/kingdoms/internal/domain"
)

// ActionSort is the SelectionMsg key sent when the table sort changes;
// the value is the new domain.Sort
const ActionSort = "sort"

// SortOption represents a sort option with metadata
type SortOption struct {
	Key         string
	Label       string
	Field       domain.SortField
	Description string
}

// SortMenu is a menu overlay for the table's sort column. It edits a copy
// of the sort state and reports every change.
type SortMenu struct {
	sort    domain.Sort
	options []SortOption
	styles  *Styles
}

// NewSortMenu creates a new sort menu starting from current
func NewSortMenu(current domain.Sort) *SortMenu {
	return &SortMenu{
		sort:   current,
		styles: New(),
		options: []SortOption{
			{Key: "r", Label: "Rank", Field: domain.SortByRank, Description: "score, then wins, then name"},
			{Key: "w", Label: "Win rate", Field: domain.SortByWinRate, Description: "wins over battles fought"},
			{Key: "m", Label: "Members", Field: domain.SortByMembers, Description: "largest kingdoms first"},
			{Key: "s", Label: "Streak", Field: domain.SortByStreak, Description: "longest current win streak"},
		},
	}
}

// Sort returns the menu's current sort state
func (m *SortMenu) Sort() domain.Sort {
	return m.sort
}

// Init initializes the menu
func (m *SortMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SortMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }

	case "tab":
		m.sort.Next()
		return m, m.changed()
	}

	for _, opt := range m.options {
		if opt.Key == keyMsg.String() {
			// Same key flips direction, a new key starts best-first
			m.sort.Toggle(opt.Field)
			return m, m.changed()
		}
	}

	return m, nil
}

func (m *SortMenu) changed() tea.Cmd {
	s := m.sort
	return func() tea.Msg {
		return SelectionMsg{Key: ActionSort, Value: s}
	}
}

// View renders the menu
func (m *SortMenu) View() string {
	var b strings.Builder

	for _, opt := range m.options {
		isActive := m.sort.Field == opt.Field

		keyStyle := m.styles.MenuItem
		labelStyle := m.styles.MenuItem
		if isActive {
			keyStyle = m.styles.MenuKey
			labelStyle = m.styles.MenuItemActive
		}

		b.WriteString(keyStyle.Render("[" + opt.Key + "]"))
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(opt.Label))
		b.WriteString(" ")
		b.WriteString(m.styles.Trailer.Render("(" + opt.Description + ")"))

		if isActive {
			arrow := "best first"
			if m.sort.Order == domain.SortDesc {
				arrow = "worst first"
			}
			b.WriteString(" ")
			b.WriteString(m.styles.MenuItemActive.Render("● " + arrow))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("Same key flips direction • Tab cycles • Esc closes"))

	return b.String()
}

// Title returns the overlay title
func (m *SortMenu) Title() string {
	return "Sort table"
}

// Size returns the overlay dimensions
func (m *SortMenu) Size() (width, height int) {
	return 64, len(m.options) + 5
}
