package tournament

import (
	"sort"

	"github.com/pollamundial/backend/models"
)

// GroupStandings builds the table for one group from a match list. The list
// may carry official results or a user's predicted results; the calculation
// does not care which. Every team named by a group match gets a row, even
// with zero played matches. Matches without both scores leave all stats
// untouched, including Played.
//
// Ordering is points, then goal difference, then goals for, all descending.
// Teams still tied after the three levels keep the order in which they first
// appeared in the match list.
func GroupStandings(matches []models.Match, group string) []models.TeamStats {
	index := make(map[string]*models.TeamStats)
	order := make([]string, 0, 4)

	ensure := func(team string) *models.TeamStats {
		if s, ok := index[team]; ok {
			return s
		}
		s := &models.TeamStats{Team: team, Group: group}
		index[team] = s
		order = append(order, team)
		return s
	}

	for i := range matches {
		m := &matches[i]
		if m.Group != group {
			continue
		}
		s1 := ensure(m.Team1)
		s2 := ensure(m.Team2)
		if !m.HasResult() {
			continue
		}
		a, b := *m.Score1, *m.Score2
		s1.GoalsFor += a
		s1.GoalDiff += a - b
		s1.Played++
		s2.GoalsFor += b
		s2.GoalDiff += b - a
		s2.Played++
		switch {
		case a > b:
			s1.Points += 3
		case a < b:
			s2.Points += 3
		default:
			s1.Points++
			s2.Points++
		}
	}

	table := make([]models.TeamStats, 0, len(order))
	for _, team := range order {
		table = append(table, *index[team])
	}
	sort.SliceStable(table, func(i, j int) bool {
		return statsBefore(table[i], table[j])
	})
	return table
}

// AllGroupStandings partitions the match list by group and builds every
// table. Matches without a group tag (knockout fixtures) are skipped.
func AllGroupStandings(matches []models.Match) map[string][]models.TeamStats {
	seen := make(map[string]bool)
	groups := make([]string, 0, len(Groups))
	for i := range matches {
		g := matches[i].Group
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		groups = append(groups, g)
	}

	standings := make(map[string][]models.TeamStats, len(groups))
	for _, g := range groups {
		standings[g] = GroupStandings(matches, g)
	}
	return standings
}

// statsBefore is the three-level group tie-break shared by standings, best
// thirds and the leaderboard's standings views.
func statsBefore(a, b models.TeamStats) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDiff != b.GoalDiff {
		return a.GoalDiff > b.GoalDiff
	}
	return a.GoalsFor > b.GoalsFor
}
