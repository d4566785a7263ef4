package overlay

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// HelpOverlay displays the full keybinding reference of a key map
type HelpOverlay struct {
	keys help.KeyMap
	help help.Model
}

// NewHelpOverlay creates a help overlay for keys
func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(styles.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(styles.Surface2)
	h.FullSeparator = "    "

	return &HelpOverlay{keys: keys, help: h}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update closes the overlay on esc, q or ?
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return h, nil
}

// View renders the key map in columns
func (h *HelpOverlay) View() string {
	return h.help.View(h.keys)
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keys"
}

// Size fits the panel to the rendered columns plus padding
func (h *HelpOverlay) Size() (width, height int) {
	w, ht := lipgloss.Size(h.View())
	return w + 4, ht + 2
}
