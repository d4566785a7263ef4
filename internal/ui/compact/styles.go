package compact

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// Styles holds the styling for the rank table
type Styles struct {
	// Table structure
	HeaderCell   lipgloss.Style
	HeaderSorted lipgloss.Style
	Separator    lipgloss.Style

	// Row styles
	Row        lipgloss.Style
	RowActive  lipgloss.Style
	RowMarked  lipgloss.Style
	ColRank    lipgloss.Style
	ColName    lipgloss.Style
	ColScore   lipgloss.Style
	ColRecord  lipgloss.Style
	ColWinRate lipgloss.Style
	ColStreak  lipgloss.Style

	// Tier colors
	Tier func(tier int) lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
	Marked lipgloss.Style
	Empty  lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		HeaderSorted: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		RowMarked: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface1),

		ColRank: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Bold(true),

		ColName: lipgloss.NewStyle().
			Foreground(styles.Text),

		ColScore: lipgloss.NewStyle().
			Foreground(styles.Peach),

		ColRecord: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		ColWinRate: lipgloss.NewStyle().
			Foreground(styles.Green),

		ColStreak: lipgloss.NewStyle().
			Foreground(styles.Yellow),

		Tier: func(tier int) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(styles.TierColor(tier))
		},

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Marked: lipgloss.NewStyle().
			Foreground(styles.Mauve).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Italic(true),
	}
}
