package tournament

import (
	"strings"

	"github.com/pollamundial/backend/models"
)

// MatchScore is the result of scoring one prediction set against official
// results.
type MatchScore struct {
	ExactMatches   int `json:"exact_matches"`
	CorrectWinners int `json:"correct_winners"`
	TotalPoints    int `json:"total_points"`
}

// TeamsBonus is the result of comparing predicted advancing teams against
// the teams that actually advanced.
type TeamsBonus struct {
	TeamsCorrect int `json:"teams_correct"`
	BonusPoints  int `json:"bonus_points"`
}

// Totals aggregates every phase of a user's tournament.
type Totals struct {
	TotalPoints    int `json:"total_points"`
	ExactMatches   int `json:"exact_matches"`
	CorrectWinners int `json:"correct_winners"`
	TeamsBonus     int `json:"teams_bonus"`
}

// ScoreMatches scores a prediction map against a match list. A match only
// counts when it has both official scores and a prediction entry; anything
// else is skipped, never an error. An exact score hit takes ExactMatch
// points, a correct outcome (win/draw/win) takes CorrectWinner points, a
// miss takes nothing.
func ScoreMatches(preds map[string]models.ScorePair, matches []models.Match, pts Points) MatchScore {
	var score MatchScore
	for i := range matches {
		m := &matches[i]
		if !m.HasResult() {
			continue
		}
		p, ok := preds[m.ID]
		if !ok {
			continue
		}
		if p.Score1 == *m.Score1 && p.Score2 == *m.Score2 {
			score.ExactMatches++
			score.TotalPoints += pts.ExactMatch
			continue
		}
		if outcome(p.Score1, p.Score2) == outcome(*m.Score1, *m.Score2) {
			score.CorrectWinners++
			score.TotalPoints += pts.CorrectWinner
		}
	}
	return score
}

// outcome collapses a score into win1/draw/win2.
func outcome(s1, s2 int) int {
	switch {
	case s1 > s2:
		return 1
	case s1 < s2:
		return -1
	default:
		return 0
	}
}

// AdvanceBonus counts how many predicted teams appear in the actual
// advancing set, comparing names case-insensitively and trimmed. Duplicate
// entries in the predicted list each count on their own; the list is taken
// as submitted.
func AdvanceBonus(predicted, actual []string, pts Points) TeamsBonus {
	if len(predicted) == 0 || len(actual) == 0 {
		return TeamsBonus{}
	}
	advanced := make(map[string]struct{}, len(actual))
	for _, t := range actual {
		advanced[normalizeTeam(t)] = struct{}{}
	}
	var bonus TeamsBonus
	for _, t := range predicted {
		if _, ok := advanced[normalizeTeam(t)]; ok {
			bonus.TeamsCorrect++
		}
	}
	bonus.BonusPoints = bonus.TeamsCorrect * pts.TeamAdvanced
	return bonus
}

func normalizeTeam(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ScorePhase combines match scoring and the advancement bonus into one
// phase record.
func ScorePhase(phase models.Phase, preds map[string]models.ScorePair, matches []models.Match, predictedTeams, actualTeams []string, pts Points) models.PhaseScore {
	matchScore := ScoreMatches(preds, matches, pts)
	bonus := AdvanceBonus(predictedTeams, actualTeams, pts)
	return models.PhaseScore{
		Phase:              phase,
		ExactMatches:       matchScore.ExactMatches,
		CorrectWinners:     matchScore.CorrectWinners,
		TeamsAdvancedBonus: bonus.TeamsCorrect,
		MatchPoints:        matchScore.TotalPoints,
		BonusPoints:        bonus.BonusPoints,
		TotalPoints:        matchScore.TotalPoints + bonus.BonusPoints,
	}
}

// TotalScore sums per-phase records over the canonical phase list. Phases
// missing from the map contribute zero; keys outside the list are ignored.
func TotalScore(byPhase map[models.Phase]models.PhaseScore) Totals {
	var totals Totals
	for _, phase := range Phases {
		ps, ok := byPhase[phase]
		if !ok {
			continue
		}
		totals.TotalPoints += ps.TotalPoints
		totals.ExactMatches += ps.ExactMatches
		totals.CorrectWinners += ps.CorrectWinners
		totals.TeamsBonus += ps.TeamsAdvancedBonus
	}
	return totals
}
