package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	CardMarked  lipgloss.Style
	Rank        lipgloss.Style
	KingdomName lipgloss.Style
	Score       lipgloss.Style
	Muted       lipgloss.Style

	// Badges
	TierBadge func(tier int) lipgloss.Style
	Badge     lipgloss.Style

	// Movement
	MoveUp   lipgloss.Style
	MoveDown lipgloss.Style
	MoveSame lipgloss.Style
	MoveNew  lipgloss.Style

	// Table
	TableHeader    lipgloss.Style
	TableRow       lipgloss.Style
	TableRowActive lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Separator      lipgloss.Style
	Leader         lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Tooltip content
	TooltipTitle lipgloss.Style
	TooltipLabel lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Padding(0, 1)

	return &Styles{
		Board: lipgloss.NewStyle().
			Background(Base),

		Column: lipgloss.NewStyle().
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card:       card,
		CardActive: card.BorderForeground(Lavender),
		CardMarked: card.BorderForeground(Mauve),

		Rank: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		KingdomName: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		Score: lipgloss.NewStyle().
			Foreground(Peach),

		Muted: lipgloss.NewStyle().
			Foreground(Overlay0),

		TierBadge: func(tier int) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(TierColor(tier)).
				Padding(0, 1).
				Bold(true)
		},

		Badge: lipgloss.NewStyle().
			Foreground(Yellow),

		MoveUp:   lipgloss.NewStyle().Foreground(MovementColors["up"]),
		MoveDown: lipgloss.NewStyle().Foreground(MovementColors["down"]),
		MoveSame: lipgloss.NewStyle().Foreground(MovementColors["same"]),
		MoveNew:  lipgloss.NewStyle().Foreground(MovementColors["new"]).Italic(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(Subtext1).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Surface1),

		TableRow: lipgloss.NewStyle().
			Foreground(Text),

		TableRowActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Lavender).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		Leader: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		ToastInfo:    toast(Blue),
		ToastSuccess: toast(Green),
		ToastWarning: toast(Yellow),
		ToastError:   toast(Red),

		TooltipTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		TooltipLabel: lipgloss.NewStyle().
			Foreground(Subtext0),
	}
}

func toast(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(c).
		Padding(0, 1)
}

// Movement returns the style for a standing's rank change
func (s *Styles) Movement(st domain.Standing) lipgloss.Style {
	switch {
	case st.New:
		return s.MoveNew
	case st.Delta > 0:
		return s.MoveUp
	case st.Delta < 0:
		return s.MoveDown
	default:
		return s.MoveSame
	}
}
