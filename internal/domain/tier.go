package domain

// Tier groups ranks into board columns
type Tier int

const (
	TierLegendary Tier = iota
	TierElite
	TierRising
	TierChallenger
)

// Tiers lists every tier in board order
var Tiers = []Tier{TierLegendary, TierElite, TierRising, TierChallenger}

// TierFor returns the tier of a 1-based rank
func TierFor(rank int) Tier {
	switch {
	case rank <= 3:
		return TierLegendary
	case rank <= 10:
		return TierElite
	case rank <= 25:
		return TierRising
	default:
		return TierChallenger
	}
}

func (t Tier) String() string {
	switch t {
	case TierLegendary:
		return "Legendary"
	case TierElite:
		return "Elite"
	case TierRising:
		return "Rising"
	case TierChallenger:
		return "Challengers"
	default:
		return "Unknown"
	}
}

// GroupByTier splits ranked standings into one slice per tier, in board order.
// Empty tiers are kept so column positions stay stable.
func GroupByTier(standings []Standing) [][]Standing {
	groups := make([][]Standing, len(Tiers))
	for _, s := range standings {
		t := s.Tier()
		groups[t] = append(groups[t], s)
	}
	return groups
}
