package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the dashboard key bindings. It implements help.KeyMap so the
// help overlay can list it.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	View    key.Binding
	Mark    key.Binding
	Compare key.Binding
	Details key.Binding
	Share   key.Binding
	Sort    key.Binding
	Search  key.Binding
	Refresh key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous tier")),
		Right:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next tier")),
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Bottom:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		View:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "board/table")),
		Mark:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark to compare")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare marked")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Share:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort table")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find kingdom")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Clear:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear history")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.View, k.Compare, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Top, k.Bottom},
		{k.View, k.Sort, k.Search, k.Details, k.Mark, k.Compare},
		{k.Share, k.Refresh, k.Clear, k.Help, k.Quit},
	}
}

// forView enables the bindings that make sense in view. Tier moves only
// apply to the board; sorting only to the table.
func (k KeyMap) forView(board bool) KeyMap {
	k.Left.SetEnabled(board)
	k.Right.SetEnabled(board)
	k.Sort.SetEnabled(!board)
	return k
}
