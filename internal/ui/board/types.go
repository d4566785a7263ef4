package board

import "github.com/riordanpawley/kingdoms/internal/domain"

// Column represents a tier column of ranked kingdoms
type Column struct {
	Tier      domain.Tier
	Standings []domain.Standing
}

// Title returns the column header text
func (c Column) Title() string {
	return c.Tier.String()
}

// Columns groups ranked standings into one column per tier
func Columns(standings []domain.Standing) []Column {
	groups := domain.GroupByTier(standings)
	cols := make([]Column, len(groups))
	for i, g := range groups {
		cols[i] = Column{Tier: domain.Tier(i), Standings: g}
	}
	return cols
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // column index
	Row    int // card index within column
}

// Marker wraps trigger text in a named region. *zone.Manager satisfies it.
type Marker interface {
	Mark(id, v string) string
}

type noMarker struct{}

func (noMarker) Mark(_, v string) string { return v }

// Options controls what the board draws
type Options struct {
	Marked           map[string]bool // kingdoms marked for comparison
	ShowAchievements bool
	Marker           Marker // nil draws without trigger regions
}

func (o Options) marker() Marker {
	if o.Marker == nil {
		return noMarker{}
	}
	return o.Marker
}

// Trigger region IDs. Hosts use the same IDs to attach tooltips.

// NameZone marks a kingdom's name; clicking it selects the card
func NameZone(kingdomID string) string { return "name:" + kingdomID }

// ScoreZone marks a kingdom's score
func ScoreZone(kingdomID string) string { return "score:" + kingdomID }

// MoveZone marks a kingdom's rank movement
func MoveZone(kingdomID string) string { return "move:" + kingdomID }

// BadgeZone marks one achievement badge on a card
func BadgeZone(kingdomID, achievementID string) string {
	return "badge:" + kingdomID + ":" + achievementID
}
