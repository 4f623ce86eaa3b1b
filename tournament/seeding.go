package tournament

import (
	"fmt"

	"github.com/pollamundial/backend/models"
)

// RoundR32 tags every pairing produced by RoundOf32.
const RoundR32 = "R32"

// Placeholder used when the best-thirds pool is exhausted.
const thirdPlaceholder = "3ro TBD"

// slotSource resolves a team by direct index into a group table: position 1
// is the group winner, position 2 the runner-up.
type slotSource struct {
	pos   int
	group string
}

// seedSlot is one row of the Round-of-32 chart. Team2 comes either from a
// direct source or, when thirdPriority is set, from the best-thirds pool by
// walking the priority groups in order.
type seedSlot struct {
	id            string
	team1         slotSource
	team2         slotSource
	thirdPriority []string
}

// roundOf32Chart is the fixed competition rule mapping group finishes to the
// sixteen Round-of-32 slots. The left half of the bracket draws its
// best-thirds mainly from groups A-G, the right half from F-L, mirroring the
// regionalized cross-bracket design. The chart is data, not logic: changing
// the published draw means editing this table only.
var roundOf32Chart = []seedSlot{
	{id: "R32-1", team1: slotSource{1, "A"}, thirdPriority: []string{"C", "D", "F", "G"}},
	{id: "R32-2", team1: slotSource{2, "A"}, team2: slotSource{2, "B"}},
	{id: "R32-3", team1: slotSource{1, "C"}, thirdPriority: []string{"A", "B", "E", "F"}},
	{id: "R32-4", team1: slotSource{1, "E"}, team2: slotSource{2, "D"}},
	{id: "R32-5", team1: slotSource{1, "B"}, thirdPriority: []string{"D", "E", "F", "G"}},
	{id: "R32-6", team1: slotSource{2, "C"}, team2: slotSource{2, "E"}},
	{id: "R32-7", team1: slotSource{1, "D"}, thirdPriority: []string{"B", "C", "F", "G"}},
	{id: "R32-8", team1: slotSource{1, "G"}, team2: slotSource{2, "F"}},
	{id: "R32-9", team1: slotSource{1, "F"}, thirdPriority: []string{"H", "I", "J", "K"}},
	{id: "R32-10", team1: slotSource{2, "G"}, team2: slotSource{2, "H"}},
	{id: "R32-11", team1: slotSource{1, "H"}, thirdPriority: []string{"I", "J", "K", "L"}},
	{id: "R32-12", team1: slotSource{1, "J"}, team2: slotSource{2, "L"}},
	{id: "R32-13", team1: slotSource{1, "I"}, thirdPriority: []string{"G", "J", "K", "L"}},
	{id: "R32-14", team1: slotSource{2, "J"}, team2: slotSource{2, "K"}},
	{id: "R32-15", team1: slotSource{1, "K"}, thirdPriority: []string{"H", "I", "J", "L"}},
	{id: "R32-16", team1: slotSource{1, "L"}, team2: slotSource{2, "I"}},
}

// RoundOf32 seeds the sixteen Round-of-32 pairings from full group
// standings, real or predicted. Winners and runners-up resolve by direct
// lookup; best-third slots walk their priority groups and consume each
// group's third at most once across the whole bracket. Missing rows become
// placeholders instead of errors, so a half-played group stage still yields
// a complete bracket. The used-thirds set lives on the stack; calling again
// with the same standings returns the same pairings.
func RoundOf32(standings map[string][]models.TeamStats) []models.KnockoutPairing {
	thirds := BestThirds(standings)
	usedThirds := make(map[string]bool, len(thirds))

	pairings := make([]models.KnockoutPairing, 0, len(roundOf32Chart))
	for _, slot := range roundOf32Chart {
		p := models.KnockoutPairing{
			ID:    slot.id,
			Round: RoundR32,
			Team1: resolveDirect(standings, slot.team1),
		}
		if len(slot.thirdPriority) > 0 {
			p.Team2 = takeThird(thirds, usedThirds, slot.thirdPriority)
		} else {
			p.Team2 = resolveDirect(standings, slot.team2)
		}
		pairings = append(pairings, p)
	}
	return pairings
}

func resolveDirect(standings map[string][]models.TeamStats, src slotSource) string {
	table := standings[src.group]
	if len(table) < src.pos {
		return fmt.Sprintf("TBD (%d%s)", src.pos, src.group)
	}
	return table[src.pos-1].Team
}

// takeThird picks the first priority group whose third is still unclaimed,
// then falls back to any unused best-third in pool order.
func takeThird(thirds []models.TeamStats, used map[string]bool, priority []string) string {
	for _, g := range priority {
		if used[g] {
			continue
		}
		for i := range thirds {
			if thirds[i].Group == g {
				used[g] = true
				return thirds[i].Team
			}
		}
	}
	for i := range thirds {
		if !used[thirds[i].Group] {
			used[thirds[i].Group] = true
			return thirds[i].Team
		}
	}
	return thirdPlaceholder
}
