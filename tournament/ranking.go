package tournament

import "sort"

// RankingRow is one leaderboard entry before ranks are assigned.
type RankingRow struct {
	UserID   int    `json:"user_id"`
	Nickname string `json:"nickname"`
	Totals   Totals `json:"totals"`
}

// RankedRow is a leaderboard entry with its competition rank.
type RankedRow struct {
	Rank int `json:"rank"`
	RankingRow
}

// Rank orders rows by total points, then exact matches, then correct
// winners, all descending, and assigns competition ranks: rows tied on the
// full triple share a rank and the next distinct row skips past them
// (1, 1, 3).
func Rank(rows []RankingRow) []RankedRow {
	sorted := make([]RankingRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Totals, sorted[j].Totals
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.ExactMatches != b.ExactMatches {
			return a.ExactMatches > b.ExactMatches
		}
		return a.CorrectWinners > b.CorrectWinners
	})

	ranked := make([]RankedRow, len(sorted))
	for i, row := range sorted {
		rank := i + 1
		if i > 0 && sameRankTriple(row.Totals, sorted[i-1].Totals) {
			rank = ranked[i-1].Rank
		}
		ranked[i] = RankedRow{Rank: rank, RankingRow: row}
	}
	return ranked
}

func sameRankTriple(a, b Totals) bool {
	return a.TotalPoints == b.TotalPoints &&
		a.ExactMatches == b.ExactMatches &&
		a.CorrectWinners == b.CorrectWinners
}
