package models

import "time"

// PhaseScore is a user's computed score for one phase. It is derived data:
// the admin recalculation job persists it for fast leaderboard reads, but
// recomputing from the same predictions and results always reproduces it.
type PhaseScore struct {
	UserID             int       `json:"user_id,omitempty" db:"user_id"`
	Phase              Phase     `json:"phase" db:"phase"`
	ExactMatches       int       `json:"exact_matches" db:"exact_matches"`
	CorrectWinners     int       `json:"correct_winners" db:"correct_winners"`
	TeamsAdvancedBonus int       `json:"teams_advanced_bonus" db:"teams_advanced_bonus"`
	MatchPoints        int       `json:"match_points" db:"match_points"`
	BonusPoints        int       `json:"bonus_points" db:"bonus_points"`
	TotalPoints        int       `json:"total_points" db:"total_points"`
	UpdatedAt          time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// TeamStats is one row of a group table, rebuilt from a match list on every
// request and never mutated in place.
type TeamStats struct {
	Team     string `json:"team"`
	Points   int    `json:"points"`
	GoalDiff int    `json:"goal_diff"`
	GoalsFor int    `json:"goals_for"`
	Played   int    `json:"played"`
	Group    string `json:"group"`
}

// KnockoutPairing is one Round-of-32 slot. Team names may be placeholder
// strings when the standings cannot resolve them yet.
type KnockoutPairing struct {
	ID    string `json:"id"`
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Round string `json:"round"`
}
