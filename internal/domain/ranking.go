package domain

import (
	"sort"
	"strings"
)

// Standing is a kingdom with its position in the current ranking
type Standing struct {
	Kingdom
	Rank int

	// Delta is the number of places climbed since the previous ranking;
	// negative when the kingdom fell
	Delta int

	// New is set when a previous ranking exists but did not include the kingdom
	New bool

	Achievements []Achievement
}

// Tier returns the tier the standing's rank falls in
func (s Standing) Tier() Tier {
	return TierFor(s.Rank)
}

// Rank orders kingdoms by score, breaking ties by wins and then name, and
// computes each kingdom's movement against previous (kingdom ID → rank).
// A nil or empty previous yields zero deltas and no New marks.
func Rank(kingdoms []Kingdom, previous map[string]int) []Standing {
	ordered := make([]Kingdom, len(kingdoms))
	copy(ordered, kingdoms)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	standings := make([]Standing, len(ordered))
	for i, k := range ordered {
		s := Standing{Kingdom: k, Rank: i + 1}
		if prev, ok := previous[k.ID]; ok {
			s.Delta = prev - s.Rank
		} else if len(previous) > 0 {
			s.New = true
		}
		s.Achievements = Evaluate(s)
		standings[i] = s
	}
	return standings
}

// Find returns the standing with the given kingdom ID
func Find(standings []Standing, id string) (Standing, bool) {
	for _, s := range standings {
		if s.ID == id {
			return s, true
		}
	}
	return Standing{}, false
}

// Lookup resolves a kingdom by ID or, failing that, by case-insensitive name
func Lookup(standings []Standing, key string) (Standing, error) {
	if s, ok := Find(standings, key); ok {
		return s, nil
	}
	for _, s := range standings {
		if strings.EqualFold(s.Name, key) {
			return s, nil
		}
	}
	return Standing{}, ErrNotFound
}

// Ranks returns the kingdom ID → rank map used as the previous ranking of
// the next call to Rank
func Ranks(standings []Standing) map[string]int {
	ranks := make(map[string]int, len(standings))
	for _, s := range standings {
		ranks[s.ID] = s.Rank
	}
	return ranks
}
