package models

import "time"

type Phase string

const (
	PhaseGroups   Phase = "grupos"
	PhaseRound32  Phase = "dieciseisavos"
	PhaseRound16  Phase = "octavos"
	PhaseQuarters Phase = "cuartos"
	PhaseSemis    Phase = "semifinal"
	PhaseFinal    Phase = "final"
)

// Match is one fixture. Score1/Score2 are nil until an official result is
// recorded; a match with only one of them set counts as unplayed.
type Match struct {
	ID     string    `json:"id" db:"id"`
	Team1  string    `json:"team1" db:"team1"`
	Team2  string    `json:"team2" db:"team2"`
	Group  string    `json:"group" db:"group_code"`
	Date   time.Time `json:"date" db:"date"`
	Score1 *int      `json:"score1,omitempty" db:"score1"`
	Score2 *int      `json:"score2,omitempty" db:"score2"`
	Phase  *Phase    `json:"phase,omitempty" db:"phase"`
}

func (m *Match) HasResult() bool {
	return m.Score1 != nil && m.Score2 != nil
}
