package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleKingdoms() []Kingdom {
	return []Kingdom{
		{ID: "ash", Name: "Ashvale", Score: 900, Wins: 40, Losses: 10},
		{ID: "brn", Name: "Brinehold", Score: 1200, Wins: 80, Losses: 20},
		{ID: "cnd", Name: "Cinderfall", Score: 900, Wins: 55, Losses: 5},
		{ID: "dus", Name: "Duskmere", Score: 900, Wins: 40, Losses: 30},
	}
}

func ids(standings []Standing) []string {
	out := make([]string, len(standings))
	for i, s := range standings {
		out[i] = s.ID
	}
	return out
}

func TestRank_Order(t *testing.T) {
	got := Rank(sampleKingdoms(), nil)

	require.Len(t, got, 4)
	// score desc, then wins desc, then name asc
	assert.Equal(t, []string{"brn", "cnd", "ash", "dus"}, ids(got))
	for i, s := range got {
		assert.Equal(t, i+1, s.Rank)
		assert.Zero(t, s.Delta)
		assert.False(t, s.New)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := sampleKingdoms()
	Rank(in, nil)

	assert.Equal(t, "ash", in[0].ID)
}

func TestRank_Delta(t *testing.T) {
	previous := map[string]int{"brn": 1, "cnd": 4, "ash": 2}

	got := Rank(sampleKingdoms(), previous)

	byID := map[string]Standing{}
	for _, s := range got {
		byID[s.ID] = s
	}

	assert.Equal(t, 0, byID["brn"].Delta)
	assert.Equal(t, 2, byID["cnd"].Delta, "climbed from 4 to 2")
	assert.Equal(t, -1, byID["ash"].Delta, "fell from 2 to 3")
	assert.True(t, byID["dus"].New)
	assert.Zero(t, byID["dus"].Delta)
}

func TestRank_Achievements(t *testing.T) {
	got := Rank(sampleKingdoms(), nil)

	require.NotEmpty(t, got[0].Achievements)
	assert.Equal(t, "champion", got[0].Achievements[0].ID)
	assert.Equal(t, "podium", got[1].Achievements[0].ID)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, nil))
}

func TestLookup(t *testing.T) {
	standings := Rank(sampleKingdoms(), nil)

	t.Run("by id", func(t *testing.T) {
		s, err := Lookup(standings, "cnd")
		require.NoError(t, err)
		assert.Equal(t, "Cinderfall", s.Name)
	})

	t.Run("by name ignoring case", func(t *testing.T) {
		s, err := Lookup(standings, "duskMERE")
		require.NoError(t, err)
		assert.Equal(t, "dus", s.ID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Lookup(standings, "nowhere")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRanks_RoundTripsIntoRank(t *testing.T) {
	first := Rank(sampleKingdoms(), nil)
	second := Rank(sampleKingdoms(), Ranks(first))

	for _, s := range second {
		assert.Zero(t, s.Delta, s.ID)
		assert.False(t, s.New, s.ID)
	}
}
