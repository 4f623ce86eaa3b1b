package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollamundial/backend/models"
)

func groupMatch(id, group, t1, t2 string, s1, s2 int) models.Match {
	return models.Match{ID: id, Group: group, Team1: t1, Team2: t2, Score1: intp(s1), Score2: intp(s2)}
}

func TestGroupStandings_PointsDecide(t *testing.T) {
	matches := []models.Match{
		groupMatch("m1", "A", "México", "Canadá", 2, 0),
		groupMatch("m2", "A", "México", "Uruguay", 1, 0),
		groupMatch("m3", "A", "Canadá", "Uruguay", 1, 0),
	}

	table := GroupStandings(matches, "A")

	require.Len(t, table, 3)
	assert.Equal(t, "México", table[0].Team)
	assert.Equal(t, 6, table[0].Points)
	assert.Equal(t, "Canadá", table[1].Team)
	assert.Equal(t, 3, table[1].Points)
	assert.Equal(t, "Uruguay", table[2].Team)
	assert.Equal(t, 0, table[2].Points)
}

func TestGroupStandings_GoalDiffBreaksPointsTie(t *testing.T) {
	matches := []models.Match{
		groupMatch("m1", "B", "España", "Italia", 3, 0),
		groupMatch("m2", "B", "Italia", "Malta", 1, 0),
		groupMatch("m3", "B", "Malta", "España", 1, 0),
	}
	// Everyone on 3 points; diffs España +2, Malta 0, Italia -2.
	table := GroupStandings(matches, "B")

	require.Len(t, table, 3)
	for _, row := range table {
		assert.Equal(t, 3, row.Points)
	}
	assert.Equal(t, "España", table[0].Team)
	assert.Equal(t, "Malta", table[1].Team)
	assert.Equal(t, "Italia", table[2].Team)
}

func TestGroupStandings_GoalsForBreaksDiffTie(t *testing.T) {
	matches := []models.Match{
		groupMatch("m1", "C", "Ghana", "Senegal", 3, 3),
		groupMatch("m2", "C", "Egipto", "Marruecos", 0, 0),
	}

	table := GroupStandings(matches, "C")

	require.Len(t, table, 4)
	// All on 1 point, all diff 0; higher goals-for ranks first.
	assert.Equal(t, "Ghana", table[0].Team)
	assert.Equal(t, "Senegal", table[1].Team)
}

func TestGroupStandings_FullTieKeepsInsertionOrder(t *testing.T) {
	matches := []models.Match{
		groupMatch("m1", "D", "Chile", "Perú", 1, 1),
		groupMatch("m2", "D", "Bolivia", "Ecuador", 1, 1),
	}

	table := GroupStandings(matches, "D")

	require.Len(t, table, 4)
	assert.Equal(t, []string{"Chile", "Perú", "Bolivia", "Ecuador"},
		[]string{table[0].Team, table[1].Team, table[2].Team, table[3].Team})
}

func TestGroupStandings_EveryTeamAppearsOnce(t *testing.T) {
	matches := []models.Match{
		groupMatch("m1", "E", "Francia", "Alemania", 2, 1),
		{ID: "m2", Group: "E", Team1: "Polonia", Team2: "Austria"}, // unplayed
		groupMatch("m3", "E", "Francia", "Polonia", 0, 0),
	}

	table := GroupStandings(matches, "E")

	require.Len(t, table, 4)
	seen := make(map[string]int)
	for _, row := range table {
		seen[row.Team]++
	}
	for team, n := range seen {
		assert.Equalf(t, 1, n, "team %s appears %d times", team, n)
	}
	// Austria never played: all zeroes, still present.
	var austria models.TeamStats
	for _, row := range table {
		if row.Team == "Austria" {
			austria = row
		}
	}
	assert.Equal(t, models.TeamStats{Team: "Austria", Group: "E"}, austria)
}

func TestGroupStandings_UnplayedMatchesLeaveStatsAlone(t *testing.T) {
	matches := []models.Match{
		{ID: "m1", Group: "F", Team1: "Japón", Team2: "Corea", Score1: intp(2)}, // half-scored
	}

	table := GroupStandings(matches, "F")

	require.Len(t, table, 2)
	for _, row := range table {
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
		assert.Zero(t, row.GoalsFor)
	}
}

func TestGroupStandings_IgnoresOtherGroups(t *testing.T) {
	matches := []models.Match{
		groupMatch("m1", "A", "México", "Canadá", 1, 0),
		groupMatch("m2", "B", "España", "Italia", 1, 0),
	}

	table := GroupStandings(matches, "A")

	require.Len(t, table, 2)
	assert.Equal(t, "A", table[0].Group)
}

func TestGroupStandings_WorksOnPredictedResults(t *testing.T) {
	// Same calculation over a user's predicted scores instead of official ones.
	predicted := []models.Match{
		groupMatch("m1", "G", "Brasil", "Nigeria", 4, 0),
		groupMatch("m2", "G", "Brasil", "Serbia", 2, 0),
	}

	table := GroupStandings(predicted, "G")

	assert.Equal(t, "Brasil", table[0].Team)
	assert.Equal(t, 6, table[0].Points)
	assert.Equal(t, 2, table[0].Played)
}

func TestAllGroupStandings_PartitionsByGroup(t *testing.T) {
	r32 := models.PhaseRound32
	matches := []models.Match{
		groupMatch("m1", "A", "México", "Canadá", 1, 0),
		groupMatch("m2", "B", "España", "Italia", 2, 2),
		{ID: "k1", Team1: "X", Team2: "Y", Phase: &r32}, // no group tag
	}

	standings := AllGroupStandings(matches)

	require.Len(t, standings, 2)
	assert.Len(t, standings["A"], 2)
	assert.Len(t, standings["B"], 2)
}
