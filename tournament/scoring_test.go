package tournament

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollamundial/backend/models"
)

func intp(n int) *int { return &n }

func playedMatch(id string, s1, s2 int) models.Match {
	return models.Match{ID: id, Team1: id + "-a", Team2: id + "-b", Score1: intp(s1), Score2: intp(s2)}
}

func TestScoreMatches_ExactScore(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 2, 1)}
	preds := map[string]models.ScorePair{"m1": {Score1: 2, Score2: 1}}

	score := ScoreMatches(preds, matches, DefaultPoints())

	assert.Equal(t, 1, score.ExactMatches)
	assert.Equal(t, 0, score.CorrectWinners)
	assert.Equal(t, 5, score.TotalPoints)
}

func TestScoreMatches_CorrectWinnerOnly(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 1, 0)}
	preds := map[string]models.ScorePair{"m1": {Score1: 3, Score2: 0}}

	score := ScoreMatches(preds, matches, DefaultPoints())

	assert.Equal(t, 0, score.ExactMatches)
	assert.Equal(t, 1, score.CorrectWinners)
	assert.Equal(t, 3, score.TotalPoints)
}

func TestScoreMatches_CorrectDraw(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 2, 2)}
	preds := map[string]models.ScorePair{"m1": {Score1: 0, Score2: 0}}

	score := ScoreMatches(preds, matches, DefaultPoints())

	assert.Equal(t, 1, score.CorrectWinners)
	assert.Equal(t, 3, score.TotalPoints)
}

func TestScoreMatches_Miss(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 0, 2)}
	preds := map[string]models.ScorePair{"m1": {Score1: 1, Score2: 0}}

	score := ScoreMatches(preds, matches, DefaultPoints())

	assert.Zero(t, score.TotalPoints)
	assert.Zero(t, score.ExactMatches)
	assert.Zero(t, score.CorrectWinners)
}

func TestScoreMatches_SkipsUnplayedAndHalfScored(t *testing.T) {
	matches := []models.Match{
		{ID: "m1", Team1: "a", Team2: "b"},                  // no result at all
		{ID: "m2", Team1: "c", Team2: "d", Score1: intp(3)}, // only one score set
	}
	preds := map[string]models.ScorePair{
		"m1": {Score1: 1, Score2: 0},
		"m2": {Score1: 3, Score2: 0},
	}

	score := ScoreMatches(preds, matches, DefaultPoints())

	assert.Zero(t, score.TotalPoints)
}

func TestScoreMatches_SkipsMatchWithoutPrediction(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 1, 1)}

	score := ScoreMatches(nil, matches, DefaultPoints())

	assert.Zero(t, score.TotalPoints)
}

func TestScoreMatches_ExampleScenario(t *testing.T) {
	matches := []models.Match{
		playedMatch("m1", 1, 0),
		playedMatch("m2", 2, 2),
		playedMatch("m3", 0, 2),
		playedMatch("m4", 2, 0),
		playedMatch("m5", 1, 0),
		playedMatch("m6", 0, 1),
	}
	preds := map[string]models.ScorePair{
		"m1": {Score1: 1, Score2: 0}, // exact
		"m2": {Score1: 2, Score2: 2}, // exact
		"m3": {Score1: 0, Score2: 1}, // winner only
		"m4": {Score1: 3, Score2: 1}, // winner only
		"m5": {Score1: 0, Score2: 0}, // miss
		"m6": {Score1: 2, Score2: 0}, // miss
	}

	score := ScoreMatches(preds, matches, DefaultPoints())

	assert.Equal(t, 2, score.ExactMatches)
	assert.Equal(t, 2, score.CorrectWinners)
	assert.Equal(t, 16, score.TotalPoints)
}

func TestScoreMatches_Additivity(t *testing.T) {
	// 72 exact predictions score exactly 72 independent contributions.
	matches := make([]models.Match, 0, 72)
	preds := make(map[string]models.ScorePair, 72)
	for i := 0; i < 72; i++ {
		id := fmt.Sprintf("m%d", i)
		matches = append(matches, playedMatch(id, i%4, i%3))
		preds[id] = models.ScorePair{Score1: i % 4, Score2: i % 3}
	}

	score := ScoreMatches(preds, matches, DefaultPoints())

	require.Equal(t, 72, score.ExactMatches)
	assert.Equal(t, 360, score.TotalPoints)
}

func TestAdvanceBonus_CountsNormalizedMatches(t *testing.T) {
	predicted := []string{"  Argentina ", "brasil", "Francia", "Japón"}
	actual := []string{"ARGENTINA", "Brasil", "Uruguay", "Países Bajos"}

	bonus := AdvanceBonus(predicted, actual, DefaultPoints())

	assert.Equal(t, 2, bonus.TeamsCorrect)
	assert.Equal(t, 4, bonus.BonusPoints)
}

func TestAdvanceBonus_EmptyListsScoreZero(t *testing.T) {
	pts := DefaultPoints()
	assert.Zero(t, AdvanceBonus(nil, []string{"Argentina"}, pts).BonusPoints)
	assert.Zero(t, AdvanceBonus([]string{"Argentina"}, nil, pts).BonusPoints)
}

// Duplicate predicted teams each count. Observed behavior, kept for parity;
// not a promise.
func TestAdvanceBonus_DuplicatePredictionsCountTwice(t *testing.T) {
	bonus := AdvanceBonus([]string{"Argentina", "Argentina"}, []string{"Argentina"}, DefaultPoints())

	assert.Equal(t, 2, bonus.TeamsCorrect)
	assert.Equal(t, 4, bonus.BonusPoints)
}

func TestScorePhase_CombinesMatchAndBonusPoints(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 1, 0)}
	preds := map[string]models.ScorePair{"m1": {Score1: 1, Score2: 0}}

	ps := ScorePhase(models.PhaseGroups, preds, matches,
		[]string{"Argentina", "Brasil"}, []string{"Argentina"}, DefaultPoints())

	assert.Equal(t, models.PhaseGroups, ps.Phase)
	assert.Equal(t, 1, ps.ExactMatches)
	assert.Equal(t, 5, ps.MatchPoints)
	assert.Equal(t, 1, ps.TeamsAdvancedBonus)
	assert.Equal(t, 2, ps.BonusPoints)
	assert.Equal(t, 7, ps.TotalPoints)
}

func TestTotalScore_SumsKnownPhasesOnly(t *testing.T) {
	byPhase := map[models.Phase]models.PhaseScore{
		models.PhaseGroups:  {TotalPoints: 10, ExactMatches: 2, CorrectWinners: 0, TeamsAdvancedBonus: 1},
		models.PhaseRound32: {TotalPoints: 3, ExactMatches: 0, CorrectWinners: 1},
		"mystery_phase":     {TotalPoints: 1000},
	}

	totals := TotalScore(byPhase)

	assert.Equal(t, 13, totals.TotalPoints)
	assert.Equal(t, 2, totals.ExactMatches)
	assert.Equal(t, 1, totals.CorrectWinners)
	assert.Equal(t, 1, totals.TeamsBonus)
}

func TestTotalScore_EmptyMapIsZero(t *testing.T) {
	assert.Zero(t, TotalScore(nil).TotalPoints)
}

func TestScoreMatches_Idempotent(t *testing.T) {
	matches := []models.Match{playedMatch("m1", 2, 1), playedMatch("m2", 0, 0)}
	preds := map[string]models.ScorePair{
		"m1": {Score1: 2, Score2: 1},
		"m2": {Score1: 1, Score2: 1},
	}

	first := ScoreMatches(preds, matches, DefaultPoints())
	second := ScoreMatches(preds, matches, DefaultPoints())

	assert.Equal(t, first, second)
}
