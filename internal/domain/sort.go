package domain

import "sort"

// SortField represents a table column to sort by
type SortField string

const (
	SortByRank    SortField = "rank"
	SortByWinRate SortField = "winrate"
	SortByMembers SortField = "members"
	SortByStreak  SortField = "streak"
)

// SortFields lists the sortable columns in cycle order
var SortFields = []SortField{SortByRank, SortByWinRate, SortByMembers, SortByStreak}

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state of the table view
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction.
// A different field starts ascending; the same field flips direction.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
		return
	}
	s.Field = field
	s.Order = SortAsc
}

// Next advances to the following sortable field, ascending
func (s *Sort) Next() {
	for i, f := range SortFields {
		if f == s.Field {
			s.Field = SortFields[(i+1)%len(SortFields)]
			s.Order = SortAsc
			return
		}
	}
	s.Field = SortByRank
	s.Order = SortAsc
}

// Apply sorts a copy of standings. Ascending means "best first" for every
// field: rank 1 first, highest win rate, most members, longest streak.
func (s *Sort) Apply(standings []Standing) []Standing {
	if len(standings) == 0 {
		return standings
	}

	result := make([]Standing, len(standings))
	copy(result, standings)

	better := func(i, j int) bool {
		a, b := result[i], result[j]
		switch s.Field {
		case SortByWinRate:
			if a.WinRate() != b.WinRate() {
				return a.WinRate() > b.WinRate()
			}
		case SortByMembers:
			if a.Members != b.Members {
				return a.Members > b.Members
			}
		case SortByStreak:
			if a.Streak != b.Streak {
				return a.Streak > b.Streak
			}
		}
		return a.Rank < b.Rank
	}

	sort.SliceStable(result, func(i, j int) bool {
		if s.Order == SortAsc {
			return better(i, j)
		}
		return better(j, i)
	})

	return result
}
