package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Header is the style for section headers inside a panel
	Header lipgloss.Style
	// Label is the right-aligned field label in detail panels
	Label lipgloss.Style
	// Leader highlights the better value of a compared metric
	Leader lipgloss.Style
	// Trailer dims the worse value of a compared metric
	Trailer lipgloss.Style
	// Danger marks destructive choices
	Danger lipgloss.Style
	// Search is the bottom search bar
	Search lipgloss.Style
	// SearchCount is the match counter inside the search bar
	SearchCount lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Header: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Width(12).
			Align(lipgloss.Right),

		Leader: lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true),

		Trailer: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		Danger: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		Search: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		SearchCount: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Background(styles.Surface0),
	}
}
