package services

import (
	"context"
	"errors"
	"time"

	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/tournament"
)

type PredictionService interface {
	Submit(ctx context.Context, userID int, phase models.Phase, scores map[string]models.ScorePair, teams []string) (*models.Prediction, error)
	GetOwn(ctx context.Context, userID int, phase models.Phase) (*models.Prediction, error)
	Community(ctx context.Context, phase models.Phase) ([]*models.Prediction, error)
}

type predictionService struct {
	predictionRepo repositories.PredictionRepository
	matchRepo      repositories.MatchRepository
	userRepo       repositories.UserRepository
	closeAt        time.Time
	now            func() time.Time
}

func NewPredictionService(
	predictionRepo repositories.PredictionRepository,
	matchRepo repositories.MatchRepository,
	userRepo repositories.UserRepository,
	closeAt time.Time,
) PredictionService {
	return &predictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		userRepo:       userRepo,
		closeAt:        closeAt,
		now:            time.Now,
	}
}

// Submit validates and stores a user's picks for a phase. This is the
// narrowing boundary: beyond here, every score pair is a well-formed
// 0-99 integer pair keyed by a real match id, so the scoring engine never
// has to second-guess its input.
func (s *predictionService) Submit(ctx context.Context, userID int, phase models.Phase, scores map[string]models.ScorePair, teams []string) (*models.Prediction, error) {
	if !knownPhase(phase) {
		return nil, ErrUnknownPhase
	}
	if !s.closeAt.IsZero() && s.now().After(s.closeAt) {
		return nil, ErrPredictionsClosed
	}

	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.PaymentStatus != models.PaymentApproved {
		return nil, ErrPaymentNotApproved
	}

	for _, pair := range scores {
		if !validScore(pair.Score1) || !validScore(pair.Score2) {
			return nil, ErrInvalidScore
		}
	}

	matches, err := s.matchRepo.List(ctx, nil, repositories.MatchFilter{})
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(matches))
	for i := range matches {
		known[matches[i].ID] = true
	}
	for id := range scores {
		if !known[id] {
			return nil, ErrUnknownMatch
		}
	}

	prediction := &models.Prediction{
		UserID: userID,
		Phase:  phase,
		Scores: scores,
		Teams:  teams,
	}
	if err := s.predictionRepo.Upsert(ctx, nil, prediction); err != nil {
		return nil, err
	}
	return prediction, nil
}

func (s *predictionService) GetOwn(ctx context.Context, userID int, phase models.Phase) (*models.Prediction, error) {
	prediction, err := s.predictionRepo.GetByUserAndPhase(ctx, nil, userID, phase)
	if err != nil {
		if errors.Is(err, repositories.ErrPredictionNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}
	return prediction, nil
}

// Community exposes everyone's picks for a phase, but only once submissions
// are locked: nobody copies the leader's sheet before kickoff.
func (s *predictionService) Community(ctx context.Context, phase models.Phase) ([]*models.Prediction, error) {
	if !knownPhase(phase) {
		return nil, ErrUnknownPhase
	}
	if s.closeAt.IsZero() || s.now().Before(s.closeAt) {
		return nil, ErrCommunityNotOpen
	}
	return s.predictionRepo.ListByPhase(ctx, nil, phase)
}

func knownPhase(phase models.Phase) bool {
	for _, p := range tournament.Phases {
		if p == phase {
			return true
		}
	}
	return false
}
