package domain

// Achievement is a badge earned by a standing
type Achievement struct {
	ID          string
	Icon        string
	Title       string
	Description string
}

// Thresholds for the stat-based achievements
const (
	ConquerorTerritory = 50
	UnbrokenStreak     = 5
	VeteranWins        = 100
	HordeMembers       = 50
	RisingStarClimb    = 3
	UnderdogWinRate    = 0.6
	UnderdogMinRank    = 11
	UnderdogMinBattles = 10
)

type achievementRule struct {
	achievement Achievement
	earned      func(Standing) bool
}

// achievementRules are evaluated in display order
var achievementRules = []achievementRule{
	{
		Achievement{ID: "champion", Icon: "♛", Title: "Champion", Description: "Holds rank 1"},
		func(s Standing) bool { return s.Rank == 1 },
	},
	{
		Achievement{ID: "podium", Icon: "✦", Title: "Podium", Description: "Ranked second or third"},
		func(s Standing) bool { return s.Rank == 2 || s.Rank == 3 },
	},
	{
		Achievement{ID: "conqueror", Icon: "⚑", Title: "Conqueror", Description: "Controls 50 or more territories"},
		func(s Standing) bool { return s.Territory >= ConquerorTerritory },
	},
	{
		Achievement{ID: "unbroken", Icon: "∞", Title: "Unbroken", Description: "Won 5 or more battles in a row"},
		func(s Standing) bool { return s.Streak >= UnbrokenStreak },
	},
	{
		Achievement{ID: "veteran", Icon: "⚔", Title: "Veteran", Description: "100 or more victories"},
		func(s Standing) bool { return s.Wins >= VeteranWins },
	},
	{
		Achievement{ID: "horde", Icon: "☰", Title: "Horde", Description: "50 or more members"},
		func(s Standing) bool { return s.Members >= HordeMembers },
	},
	{
		Achievement{ID: "rising-star", Icon: "▲", Title: "Rising Star", Description: "Climbed 3 or more places"},
		func(s Standing) bool { return s.Delta >= RisingStarClimb },
	},
	{
		Achievement{ID: "underdog", Icon: "↯", Title: "Underdog", Description: "Wins 60% of battles outside the top 10"},
		func(s Standing) bool {
			return s.Rank >= UnderdogMinRank && s.Battles() >= UnderdogMinBattles && s.WinRate() >= UnderdogWinRate
		},
	},
}

// Evaluate returns the achievements a standing has earned, in display order
func Evaluate(s Standing) []Achievement {
	var earned []Achievement
	for _, r := range achievementRules {
		if r.earned(s) {
			earned = append(earned, r.achievement)
		}
	}
	return earned
}

// AllAchievements returns every achievement in display order
func AllAchievements() []Achievement {
	all := make([]Achievement, len(achievementRules))
	for i, r := range achievementRules {
		all[i] = r.achievement
	}
	return all
}
