package services

import (
	"context"
	"errors"

	"github.com/pollamundial/backend/live"
	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/tournament"
)

const maxGoals = 99

type MatchService interface {
	SeedFixtures(ctx context.Context, matches []models.Match) error
	List(ctx context.Context, filter repositories.MatchFilter) ([]models.Match, error)
	RecordResult(ctx context.Context, id string, score1, score2 int) (*models.Match, error)
	GroupStandings(ctx context.Context) (map[string][]models.TeamStats, error)
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       *live.Hub
}

func NewMatchService(matchRepo repositories.MatchRepository, hub *live.Hub) MatchService {
	return &matchService{matchRepo: matchRepo, hub: hub}
}

// SeedFixtures bulk-loads the official fixture list. Existing match ids are
// left untouched so re-importing is safe.
func (s *matchService) SeedFixtures(ctx context.Context, matches []models.Match) error {
	refs := make([]*models.Match, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		if m.ID == "" || m.Team1 == "" || m.Team2 == "" {
			return ErrValidationFailed
		}
		refs = append(refs, m)
	}
	return s.matchRepo.BatchCreate(ctx, nil, refs)
}

func (s *matchService) List(ctx context.Context, filter repositories.MatchFilter) ([]models.Match, error) {
	return s.matchRepo.List(ctx, nil, filter)
}

// RecordResult stores an official result. Scores are validated here, before
// they ever reach the scoring engine.
func (s *matchService) RecordResult(ctx context.Context, id string, score1, score2 int) (*models.Match, error) {
	if !validScore(score1) || !validScore(score2) {
		return nil, ErrInvalidScore
	}
	if err := s.matchRepo.UpdateResult(ctx, nil, id, score1, score2); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	match, err := s.matchRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.BroadcastEvent(live.EventMatchUpdated, match)
	}
	return match, nil
}

func (s *matchService) GroupStandings(ctx context.Context) (map[string][]models.TeamStats, error) {
	phase := models.PhaseGroups
	matches, err := s.matchRepo.List(ctx, nil, repositories.MatchFilter{Phase: &phase})
	if err != nil {
		return nil, err
	}
	return tournament.AllGroupStandings(matches), nil
}

func validScore(score int) bool {
	return score >= 0 && score <= maxGoals
}
