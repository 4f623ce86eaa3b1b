package tournament

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollamundial/backend/models"
)

// fullStandings builds 12 settled groups, teams named "A1".."L4" by finish.
// basePoints lets callers skew the cross-group third-place ranking.
func fullStandings(thirdPoints func(group string) int) map[string][]models.TeamStats {
	standings := make(map[string][]models.TeamStats, len(Groups))
	for _, g := range Groups {
		pts := 4
		if thirdPoints != nil {
			pts = thirdPoints(g)
		}
		standings[g] = []models.TeamStats{
			{Team: g + "1", Group: g, Points: 9, GoalDiff: 5, GoalsFor: 7},
			{Team: g + "2", Group: g, Points: 6, GoalDiff: 1, GoalsFor: 4},
			{Team: g + "3", Group: g, Points: pts, GoalDiff: 0, GoalsFor: 2},
			{Team: g + "4", Group: g, Points: 0, GoalDiff: -6, GoalsFor: 1},
		}
	}
	return standings
}

func TestBestThirds_TopEightAcrossGroups(t *testing.T) {
	// Thirds of A-H get 4 points, I-L only 1: A-H must be the eight picked.
	standings := fullStandings(func(g string) int {
		if g >= "I" {
			return 1
		}
		return 4
	})

	thirds := BestThirds(standings)

	require.Len(t, thirds, 8)
	for _, third := range thirds {
		assert.Less(t, third.Group, "I")
		assert.Equal(t, third.Group+"3", third.Team)
	}
}

func TestBestThirds_FewerGroupsMeansFewerThirds(t *testing.T) {
	standings := map[string][]models.TeamStats{
		"A": fullStandings(nil)["A"],
		"B": fullStandings(nil)["B"],
		"C": {{Team: "C1", Group: "C"}, {Team: "C2", Group: "C"}}, // no third place yet
	}

	thirds := BestThirds(standings)

	require.Len(t, thirds, 2)
	assert.Equal(t, "A3", thirds[0].Team)
	assert.Equal(t, "B3", thirds[1].Team)
}

func TestBestThirds_NeverMoreThanEight(t *testing.T) {
	thirds := BestThirds(fullStandings(nil))
	assert.Len(t, thirds, 8)
}

func TestRoundOf32_CompleteAndUnique(t *testing.T) {
	pairings := RoundOf32(fullStandings(nil))

	require.Len(t, pairings, 16)
	ids := make(map[string]bool)
	thirdsUsed := make(map[string]bool)
	for _, p := range pairings {
		assert.False(t, ids[p.ID], "duplicate pairing id %s", p.ID)
		ids[p.ID] = true
		assert.Equal(t, RoundR32, p.Round)
		assert.NotEmpty(t, p.Team1)
		assert.NotEmpty(t, p.Team2)
		// A group's third must not appear in two slots.
		if len(p.Team2) == 2 && p.Team2[1] == '3' {
			assert.False(t, thirdsUsed[p.Team2], "third %s seeded twice", p.Team2)
			thirdsUsed[p.Team2] = true
		}
	}
	assert.Len(t, thirdsUsed, 8)
}

func TestRoundOf32_DirectLookups(t *testing.T) {
	pairings := RoundOf32(fullStandings(nil))

	byID := make(map[string]models.KnockoutPairing, len(pairings))
	for _, p := range pairings {
		byID[p.ID] = p
	}

	assert.Equal(t, "A1", byID["R32-1"].Team1)
	assert.Equal(t, "A2", byID["R32-2"].Team1)
	assert.Equal(t, "B2", byID["R32-2"].Team2)
	assert.Equal(t, "E1", byID["R32-4"].Team1)
	assert.Equal(t, "D2", byID["R32-4"].Team2)
	assert.Equal(t, "L1", byID["R32-16"].Team1)
	assert.Equal(t, "I2", byID["R32-16"].Team2)
}

func TestRoundOf32_ThirdsFollowPriorityLists(t *testing.T) {
	// All twelve thirds qualify equally; the chart walks priorities in order,
	// so R32-1 takes 3C (first priority of slot 1), R32-3 takes 3A, and so on.
	standings := fullStandings(func(string) int { return 4 })

	pairings := RoundOf32(standings)
	byID := make(map[string]models.KnockoutPairing, len(pairings))
	for _, p := range pairings {
		byID[p.ID] = p
	}

	// Thirds pool is the top 8 of 12 equal candidates: groups A-H by the
	// stable alphabetical walk.
	assert.Equal(t, "C3", byID["R32-1"].Team2)
	assert.Equal(t, "A3", byID["R32-3"].Team2)
	assert.Equal(t, "D3", byID["R32-5"].Team2)
	assert.Equal(t, "B3", byID["R32-7"].Team2)
	assert.Equal(t, "H3", byID["R32-9"].Team2)
}

func TestRoundOf32_FallbackWhenPriorityExhausted(t *testing.T) {
	// Only groups A and B have standings: every priority list on the right
	// bracket misses, so remaining third slots fall back to unused thirds and
	// then to the placeholder.
	standings := map[string][]models.TeamStats{
		"A": fullStandings(nil)["A"],
		"B": fullStandings(nil)["B"],
	}

	pairings := RoundOf32(standings)

	require.Len(t, pairings, 16)
	thirdSlots := 0
	placeholders := 0
	for _, p := range pairings {
		switch p.Team2 {
		case "A3", "B3":
			thirdSlots++
		case thirdPlaceholder:
			placeholders++
		}
	}
	assert.Equal(t, 2, thirdSlots)
	assert.Equal(t, 6, placeholders)
}

func TestRoundOf32_PlaceholdersForMissingStandings(t *testing.T) {
	pairings := RoundOf32(map[string][]models.TeamStats{})

	require.Len(t, pairings, 16)
	byID := make(map[string]models.KnockoutPairing, len(pairings))
	for _, p := range pairings {
		byID[p.ID] = p
	}
	assert.Equal(t, "TBD (1A)", byID["R32-1"].Team1)
	assert.Equal(t, "TBD (2B)", byID["R32-2"].Team2)
	assert.Equal(t, thirdPlaceholder, byID["R32-1"].Team2)
}

func TestRoundOf32_Idempotent(t *testing.T) {
	standings := fullStandings(func(g string) int {
		// Arbitrary uneven spread to exercise the priority walk.
		return int(g[0]) % 5
	})

	first := RoundOf32(standings)
	second := RoundOf32(standings)

	assert.Equal(t, first, second)
}

func TestRoundOf32_AllWinnersAndRunnersSeededOnce(t *testing.T) {
	pairings := RoundOf32(fullStandings(nil))

	seen := make(map[string]int)
	for _, p := range pairings {
		seen[p.Team1]++
		seen[p.Team2]++
	}
	for _, g := range Groups {
		assert.Equalf(t, 1, seen[g+"1"], "winner of %s", g)
		assert.Equalf(t, 1, seen[g+"2"], "runner-up of %s", g)
	}
	// 32 distinct team names in total.
	assert.Len(t, seen, 32)
}

func TestRoundOf32_FromPlayedMatches(t *testing.T) {
	// End to end: raw match list -> standings -> bracket.
	var matches []models.Match
	n := 0
	for _, g := range Groups {
		teams := []string{g + "-w", g + "-x", g + "-y", g + "-z"}
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				n++
				// Earlier team in the slice always wins by a margin.
				matches = append(matches, groupMatch(fmt.Sprintf("m%d", n), g, teams[i], teams[j], 3-i, 0))
			}
		}
	}

	pairings := RoundOf32(AllGroupStandings(matches))

	require.Len(t, pairings, 16)
	byID := make(map[string]models.KnockoutPairing, len(pairings))
	for _, p := range pairings {
		byID[p.ID] = p
	}
	assert.Equal(t, "A-w", byID["R32-1"].Team1)
	assert.Equal(t, "B-x", byID["R32-2"].Team2)
}
