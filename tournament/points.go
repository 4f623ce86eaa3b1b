package tournament

import "github.com/pollamundial/backend/models"

// Points holds the scoring weights. The engine only reads them; the values
// come from configuration so they can be tuned without touching the
// algorithms.
type Points struct {
	ExactMatch    int
	CorrectWinner int
	TeamAdvanced  int
}

func DefaultPoints() Points {
	return Points{
		ExactMatch:    5,
		CorrectWinner: 3,
		TeamAdvanced:  2,
	}
}

// Phases is the canonical phase list, in tournament order. TotalScore
// iterates it so that unknown keys in a per-phase score map are ignored
// instead of summed.
var Phases = []models.Phase{
	models.PhaseGroups,
	models.PhaseRound32,
	models.PhaseRound16,
	models.PhaseQuarters,
	models.PhaseSemis,
	models.PhaseFinal,
}

// Groups of the 48-team format, A through L. The Round-of-32 seeding chart
// assumes exactly these 12 groups of 4 teams each.
var Groups = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
