package services

import (
	"context"
	"errors"

	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/tournament"
)

type BracketService interface {
	// LiveRoundOf32 seeds the bracket from official group results.
	LiveRoundOf32(ctx context.Context) ([]models.KnockoutPairing, error)
	// PredictedRoundOf32 seeds the bracket a user's predicted group results
	// would produce.
	PredictedRoundOf32(ctx context.Context, userID int) ([]models.KnockoutPairing, error)
}

type bracketService struct {
	matchRepo      repositories.MatchRepository
	predictionRepo repositories.PredictionRepository
}

func NewBracketService(matchRepo repositories.MatchRepository, predictionRepo repositories.PredictionRepository) BracketService {
	return &bracketService{matchRepo: matchRepo, predictionRepo: predictionRepo}
}

func (s *bracketService) LiveRoundOf32(ctx context.Context) ([]models.KnockoutPairing, error) {
	matches, err := s.groupMatches(ctx)
	if err != nil {
		return nil, err
	}
	return tournament.RoundOf32(tournament.AllGroupStandings(matches)), nil
}

func (s *bracketService) PredictedRoundOf32(ctx context.Context, userID int) ([]models.KnockoutPairing, error) {
	matches, err := s.groupMatches(ctx)
	if err != nil {
		return nil, err
	}

	prediction, err := s.predictionRepo.GetByUserAndPhase(ctx, nil, userID, models.PhaseGroups)
	if err != nil {
		if errors.Is(err, repositories.ErrPredictionNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}

	// Replay the group stage with the user's scores. Matches the user left
	// unpredicted stay unplayed, which the standings calculator already
	// handles; seeding degrades to placeholders where tables are short.
	predicted := make([]models.Match, len(matches))
	copy(predicted, matches)
	for i := range predicted {
		pair, ok := prediction.Scores[predicted[i].ID]
		if !ok {
			predicted[i].Score1 = nil
			predicted[i].Score2 = nil
			continue
		}
		s1, s2 := pair.Score1, pair.Score2
		predicted[i].Score1 = &s1
		predicted[i].Score2 = &s2
	}

	return tournament.RoundOf32(tournament.AllGroupStandings(predicted)), nil
}

func (s *bracketService) groupMatches(ctx context.Context) ([]models.Match, error) {
	phase := models.PhaseGroups
	return s.matchRepo.List(ctx, nil, repositories.MatchFilter{Phase: &phase})
}
