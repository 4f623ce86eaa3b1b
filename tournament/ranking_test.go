package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByPointsThenExactThenWinners(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, Nickname: "ana", Totals: Totals{TotalPoints: 10, ExactMatches: 1, CorrectWinners: 1}},
		{UserID: 2, Nickname: "beto", Totals: Totals{TotalPoints: 12, ExactMatches: 0, CorrectWinners: 4}},
		{UserID: 3, Nickname: "carla", Totals: Totals{TotalPoints: 10, ExactMatches: 2, CorrectWinners: 0}},
	}

	ranked := Rank(rows)

	require.Len(t, ranked, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{ranked[0].UserID, ranked[1].UserID, ranked[2].UserID})
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
}

func TestRank_TiesShareRankAndSkip(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, Totals: Totals{TotalPoints: 10, ExactMatches: 2, CorrectWinners: 1}},
		{UserID: 2, Totals: Totals{TotalPoints: 10, ExactMatches: 2, CorrectWinners: 1}},
		{UserID: 3, Totals: Totals{TotalPoints: 9}},
	}

	ranked := Rank(rows)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRank_PartialTieBrokenByCounters(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, Totals: Totals{TotalPoints: 10, ExactMatches: 1, CorrectWinners: 5}},
		{UserID: 2, Totals: Totals{TotalPoints: 10, ExactMatches: 1, CorrectWinners: 6}},
	}

	ranked := Rank(rows)

	assert.Equal(t, 2, ranked[0].UserID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, Totals: Totals{TotalPoints: 1}},
		{UserID: 2, Totals: Totals{TotalPoints: 2}},
	}

	Rank(rows)

	assert.Equal(t, 1, rows[0].UserID)
}
