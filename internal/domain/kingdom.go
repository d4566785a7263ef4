// Package domain contains the core types of the kingdoms dashboard:
// kingdoms, standings, tiers, achievements and comparisons.
package domain

import (
	"fmt"
	"time"
)

// Kingdom is one competing group as reported by the stats source
type Kingdom struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Ruler     string    `json:"ruler,omitempty" yaml:"ruler,omitempty"`
	Banner    string    `json:"banner,omitempty" yaml:"banner,omitempty"` // hex color
	Members   int       `json:"members" yaml:"members"`
	Wins      int       `json:"wins" yaml:"wins"`
	Losses    int       `json:"losses" yaml:"losses"`
	Score     int       `json:"score" yaml:"score"`
	Territory int       `json:"territory" yaml:"territory"`
	Streak    int       `json:"streak" yaml:"streak"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Battles returns the number of battles fought
func (k Kingdom) Battles() int {
	return k.Wins + k.Losses
}

// WinRate returns wins over battles in [0, 1], or 0 with no battles fought
func (k Kingdom) WinRate() float64 {
	if k.Battles() == 0 {
		return 0
	}
	return float64(k.Wins) / float64(k.Battles())
}

// ScorePerMember returns the average score contribution per member
func (k Kingdom) ScorePerMember() float64 {
	if k.Members <= 0 {
		return 0
	}
	return float64(k.Score) / float64(k.Members)
}

// Snapshot is one fetch of the standings
type Snapshot struct {
	Season   string    `json:"season" yaml:"season"`
	TakenAt  time.Time `json:"taken_at,omitempty" yaml:"taken_at,omitempty"`
	Kingdoms []Kingdom `json:"kingdoms" yaml:"kingdoms"`
}

// Validate checks that the snapshot can be ranked
func (s Snapshot) Validate() error {
	if len(s.Kingdoms) == 0 {
		return ErrEmptySnapshot
	}
	seen := make(map[string]bool, len(s.Kingdoms))
	for i, k := range s.Kingdoms {
		if k.ID == "" {
			return &SourceError{Op: "validate", Message: fmt.Sprintf("kingdom at index %d has no id", i)}
		}
		if seen[k.ID] {
			return &SourceError{Op: "validate", KingdomID: k.ID, Message: "duplicate kingdom id"}
		}
		seen[k.ID] = true
	}
	return nil
}
