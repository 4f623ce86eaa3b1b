package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/tournament"
)

// snapshot is everything scoring needs, loaded once per recalculation or
// leaderboard build: the full fixture list, every user, and every prediction
// grouped by user and phase. Scoring itself is pure, so two concurrent
// snapshots never interfere.
type snapshot struct {
	users       []*models.User
	matches     []models.Match
	byPhase     map[models.Phase][]models.Match
	predictions map[int]map[models.Phase]*models.Prediction

	// actualAdvancing holds, per phase, the teams that really advanced out
	// of it, as far as official results can tell.
	actualAdvancing map[models.Phase][]string
}

func loadSnapshot(ctx context.Context, userRepo repositories.UserRepository, matchRepo repositories.MatchRepository, predictionRepo repositories.PredictionRepository) (*snapshot, error) {
	snap := &snapshot{
		predictions: make(map[int]map[models.Phase]*models.Prediction),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := userRepo.List(gCtx, nil)
		if err != nil {
			return err
		}
		snap.users = users
		return nil
	})

	g.Go(func() error {
		matches, err := matchRepo.List(gCtx, nil, repositories.MatchFilter{})
		if err != nil {
			return err
		}
		snap.matches = matches
		return nil
	})

	phasePredictions := make([][]*models.Prediction, len(tournament.Phases))
	for i, phase := range tournament.Phases {
		i, phase := i, phase
		g.Go(func() error {
			preds, err := predictionRepo.ListByPhase(gCtx, nil, phase)
			if err != nil {
				return err
			}
			phasePredictions[i] = preds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, preds := range phasePredictions {
		for _, p := range preds {
			if snap.predictions[p.UserID] == nil {
				snap.predictions[p.UserID] = make(map[models.Phase]*models.Prediction)
			}
			snap.predictions[p.UserID][p.Phase] = p
		}
	}

	snap.byPhase = splitByPhase(snap.matches)
	snap.actualAdvancing = map[models.Phase][]string{
		models.PhaseGroups: groupStageAdvancers(snap.byPhase[models.PhaseGroups]),
	}
	return snap, nil
}

// splitByPhase buckets matches by their phase tag. Untagged matches with a
// group letter are group-stage fixtures.
func splitByPhase(matches []models.Match) map[models.Phase][]models.Match {
	byPhase := make(map[models.Phase][]models.Match)
	for _, m := range matches {
		phase := models.PhaseGroups
		if m.Phase != nil {
			phase = *m.Phase
		}
		byPhase[phase] = append(byPhase[phase], m)
	}
	return byPhase
}

// groupStageAdvancers derives the 32 teams leaving the group stage from
// official results: 12 winners, 12 runners-up and the 8 best thirds. With a
// partially played group stage the list is simply shorter.
func groupStageAdvancers(groupMatches []models.Match) []string {
	standings := tournament.AllGroupStandings(groupMatches)

	advancing := make([]string, 0, 32)
	for _, g := range tournament.Groups {
		table := standings[g]
		if len(table) > 0 && table[0].Played > 0 {
			advancing = append(advancing, table[0].Team)
		}
		if len(table) > 1 && table[1].Played > 0 {
			advancing = append(advancing, table[1].Team)
		}
	}
	for _, third := range tournament.BestThirds(standings) {
		if third.Played > 0 {
			advancing = append(advancing, third.Team)
		}
	}
	return advancing
}

// scoreUser computes every phase score for one user from the snapshot.
func (s *snapshot) scoreUser(userID int, pts tournament.Points) map[models.Phase]models.PhaseScore {
	byPhase := make(map[models.Phase]models.PhaseScore, len(tournament.Phases))
	userPreds := s.predictions[userID]
	for _, phase := range tournament.Phases {
		var scores map[string]models.ScorePair
		var teams []string
		if p := userPreds[phase]; p != nil {
			scores = p.Scores
			teams = p.Teams
		}
		ps := tournament.ScorePhase(phase, scores, s.byPhase[phase], teams, s.actualAdvancing[phase], pts)
		ps.UserID = userID
		byPhase[phase] = ps
	}
	return byPhase
}
