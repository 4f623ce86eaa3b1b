package models

import "time"

// ScorePair is a predicted score for a single match. Both fields are
// required; the ingestion layer rejects entries missing either one.
type ScorePair struct {
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

// Prediction holds one user's picks for one phase: a match-id keyed score
// map plus, optionally, the teams the user expects to advance out of the
// phase. Scores and Teams are stored as JSONB columns.
type Prediction struct {
	ID        int                  `json:"id" db:"id"`
	UserID    int                  `json:"user_id" db:"user_id"`
	Phase     Phase                `json:"phase" db:"phase"`
	Scores    map[string]ScorePair `json:"scores" db:"scores"`
	Teams     []string             `json:"teams,omitempty" db:"teams"`
	UpdatedAt time.Time            `json:"updated_at" db:"updated_at"`
}
