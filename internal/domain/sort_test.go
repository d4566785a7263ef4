package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		initial   Sort
		toggleTo  SortField
		wantField SortField
		wantOrder SortOrder
	}{
		{
			name:      "toggle to new field sets asc",
			initial:   Sort{Field: SortByRank, Order: SortDesc},
			toggleTo:  SortByStreak,
			wantField: SortByStreak,
			wantOrder: SortAsc,
		},
		{
			name:      "toggle same field asc to desc",
			initial:   Sort{Field: SortByWinRate, Order: SortAsc},
			toggleTo:  SortByWinRate,
			wantField: SortByWinRate,
			wantOrder: SortDesc,
		},
		{
			name:      "toggle same field desc to asc",
			initial:   Sort{Field: SortByWinRate, Order: SortDesc},
			toggleTo:  SortByWinRate,
			wantField: SortByWinRate,
			wantOrder: SortAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.initial
			s.Toggle(tt.toggleTo)

			assert.Equal(t, tt.wantField, s.Field)
			assert.Equal(t, tt.wantOrder, s.Order)
		})
	}
}

func TestSort_Next(t *testing.T) {
	s := Sort{Field: SortByRank, Order: SortDesc}

	s.Next()
	assert.Equal(t, SortByWinRate, s.Field)
	assert.Equal(t, SortAsc, s.Order)

	s.Field = SortByStreak
	s.Next()
	assert.Equal(t, SortByRank, s.Field, "wraps around")

	s.Field = "bogus"
	s.Next()
	assert.Equal(t, SortByRank, s.Field)
}

func TestSort_Apply(t *testing.T) {
	standings := []Standing{
		{Kingdom: Kingdom{ID: "a", Wins: 5, Losses: 5, Members: 10, Streak: 1}, Rank: 1},
		{Kingdom: Kingdom{ID: "b", Wins: 9, Losses: 1, Members: 30, Streak: 0}, Rank: 2},
		{Kingdom: Kingdom{ID: "c", Wins: 3, Losses: 7, Members: 30, Streak: 6}, Rank: 3},
	}

	tests := []struct {
		name string
		sort Sort
		want []string
	}{
		{name: "rank asc", sort: Sort{Field: SortByRank, Order: SortAsc}, want: []string{"a", "b", "c"}},
		{name: "rank desc", sort: Sort{Field: SortByRank, Order: SortDesc}, want: []string{"c", "b", "a"}},
		{name: "win rate asc", sort: Sort{Field: SortByWinRate, Order: SortAsc}, want: []string{"b", "a", "c"}},
		{name: "members ties by rank", sort: Sort{Field: SortByMembers, Order: SortAsc}, want: []string{"b", "c", "a"}},
		{name: "streak asc", sort: Sort{Field: SortByStreak, Order: SortAsc}, want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sort.Apply(standings)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	assert.Equal(t, "a", standings[0].ID, "input is not modified")
}

func TestSort_ApplyEmpty(t *testing.T) {
	s := Sort{Field: SortByRank}
	assert.Empty(t, s.Apply(nil))
}
