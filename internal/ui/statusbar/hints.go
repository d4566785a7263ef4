package statusbar

import "github.com/riordanpawley/kingdoms/internal/types"

// GetHints returns the keybinding hints for the given mode and view
func GetHints(mode types.Mode, view types.View) string {
	switch mode {
	case types.ModeNormal:
		if view == types.ViewTable {
			return "j/k: rows  s: sort  Space: mark  c: compare  Tab: board  ?: help"
		}
		return "h/l: tiers  j/k: kingdoms  Space: mark  c: compare  Tab: table  ?: help"
	case types.ModeSearch:
		return "Type a name  Enter: keep  Esc: cancel"
	case types.ModePanel:
		return "Esc: close"
	default:
		return ""
	}
}
