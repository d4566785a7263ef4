package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionClearHistory is the confirm action that wipes the rank history
const ActionClearHistory = "clear-history"

// ConfirmDialog is a confirmation dialog overlay with Yes/No options.
// No is selected by default.
type ConfirmDialog struct {
	action   string
	title    string
	message  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult is the payload of the SelectionMsg a ConfirmDialog sends.
// The message Key is the dialog's action.
type ConfirmResult struct {
	Action    string
	Confirmed bool
}

// NewConfirmDialog creates a dialog asking whether to perform action
func NewConfirmDialog(action, title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		action:  action,
		title:   title,
		message: message,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) answer(confirmed bool) tea.Cmd {
	action := c.action
	return func() tea.Msg {
		return SelectionMsg{
			Key:   action,
			Value: ConfirmResult{Action: action, Confirmed: confirmed},
		}
	}
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, c.answer(true)

	case "n", "N", "esc", "q":
		return c, c.answer(false)

	case "enter":
		return c, c.answer(c.selected)

	case "left", "h":
		c.selected = false

	case "right", "l", "tab":
		c.selected = true
	}

	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.Danger
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n")

	b.WriteString(c.styles.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 56, messageLines + 6
}
