package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/share"
)

// ActionCopyComparison is the SelectionMsg key asking the host to copy a
// comparison; the value is its plain-text rendering
const ActionCopyComparison = "copy-comparison"

const (
	compareLabelWidth = 11
	compareValueWidth = 16
)

// CompareOverlay shows two kingdoms head to head, one metric per row,
// with the better value of each row highlighted
type CompareOverlay struct {
	cmp    domain.Comparison
	styles *Styles
}

// NewCompareOverlay creates a comparison panel for a and b
func NewCompareOverlay(a, b domain.Standing) *CompareOverlay {
	return &CompareOverlay{
		cmp:    domain.Compare(a, b),
		styles: New(),
	}
}

// Comparison returns the comparison being shown
func (c *CompareOverlay) Comparison() domain.Comparison {
	return c.cmp
}

// Init initializes the overlay
func (c *CompareOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *CompareOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter", "c":
		return c, func() tea.Msg { return CloseOverlayMsg{} }

	case "s":
		c.cmp = domain.Compare(c.cmp.B, c.cmp.A)

	case "y":
		text := share.Comparison(c.cmp)
		return c, func() tea.Msg {
			return SelectionMsg{Key: ActionCopyComparison, Value: text}
		}
	}

	return c, nil
}

func (c *CompareOverlay) value(v string, leads bool) string {
	style := c.styles.Trailer
	if leads {
		style = c.styles.Leader
	}
	return style.Width(compareValueWidth).Align(lipgloss.Right).Render(v)
}

// View renders the metric table
func (c *CompareOverlay) View() string {
	var b strings.Builder

	name := func(s domain.Standing) string {
		return c.styles.Header.Width(compareValueWidth).Align(lipgloss.Right).
			Render(ansi.Truncate(s.Name, compareValueWidth, "…"))
	}
	b.WriteString(strings.Repeat(" ", compareLabelWidth))
	b.WriteString(name(c.cmp.A))
	b.WriteString(name(c.cmp.B))
	b.WriteString("\n")
	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", compareLabelWidth+2*compareValueWidth)))
	b.WriteString("\n")

	for _, m := range c.cmp.Metrics {
		leader := m.Leader()
		b.WriteString(c.styles.MenuItem.Width(compareLabelWidth).Render(m.Label))
		b.WriteString(c.value(share.MetricValue(m.Kind, m.A), leader == domain.LeaderA))
		b.WriteString(c.value(share.MetricValue(m.Kind, m.B), leader == domain.LeaderB))
		b.WriteString("\n")
	}

	ta, tb := c.cmp.Tally()
	var verdict string
	switch c.cmp.Winner() {
	case domain.LeaderA:
		verdict = fmt.Sprintf("%s leads %d-%d", c.cmp.A.Name, ta, tb)
	case domain.LeaderB:
		verdict = fmt.Sprintf("%s leads %d-%d", c.cmp.B.Name, tb, ta)
	default:
		verdict = fmt.Sprintf("Level at %d-%d", ta, tb)
	}
	b.WriteString("\n")
	b.WriteString(c.styles.Leader.Render(verdict))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("s: swap sides • y: copy • Esc: close"))

	return b.String()
}

// Title returns the overlay title
func (c *CompareOverlay) Title() string {
	return "Head to head"
}

// Size returns the overlay dimensions
func (c *CompareOverlay) Size() (width, height int) {
	return compareLabelWidth + 2*compareValueWidth + 4, len(c.cmp.Metrics) + 8
}
