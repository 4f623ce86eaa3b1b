package tournament

import (
	"sort"

	"github.com/pollamundial/backend/models"
)

const bestThirdsCount = 8

// BestThirds collects the third-place finisher of every group with at least
// three rows, ranks them with the group tie-break and keeps the top eight.
// Fewer candidate groups simply yield a shorter list. Groups are visited in
// alphabetical order so repeated calls produce the same slice.
func BestThirds(standings map[string][]models.TeamStats) []models.TeamStats {
	groups := make([]string, 0, len(standings))
	for g := range standings {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	thirds := make([]models.TeamStats, 0, len(groups))
	for _, g := range groups {
		table := standings[g]
		if len(table) < 3 {
			continue
		}
		thirds = append(thirds, table[2])
	}

	sort.SliceStable(thirds, func(i, j int) bool {
		return statsBefore(thirds[i], thirds[j])
	})
	if len(thirds) > bestThirdsCount {
		thirds = thirds[:bestThirdsCount]
	}
	return thirds
}
