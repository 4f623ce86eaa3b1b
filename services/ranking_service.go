package services

import (
	"context"

	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/tournament"
)

// UserBreakdown is one user's leaderboard detail: every phase record plus
// the tournament totals.
type UserBreakdown struct {
	User    *models.User        `json:"user"`
	Phases  []models.PhaseScore `json:"phases"`
	Totals  tournament.Totals   `json:"totals"`
}

type RankingService interface {
	Leaderboard(ctx context.Context) ([]tournament.RankedRow, error)
	Breakdown(ctx context.Context, userID int) (*UserBreakdown, error)
}

type rankingService struct {
	userRepo       repositories.UserRepository
	matchRepo      repositories.MatchRepository
	predictionRepo repositories.PredictionRepository
	points         tournament.Points
}

func NewRankingService(
	userRepo repositories.UserRepository,
	matchRepo repositories.MatchRepository,
	predictionRepo repositories.PredictionRepository,
	points tournament.Points,
) RankingService {
	return &rankingService{
		userRepo:       userRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		points:         points,
	}
}

// Leaderboard recomputes every ranking from the current snapshot. The
// engine is pure and cheap, so there is no cached state to invalidate; the
// persisted phase_scores rows exist only for offline inspection.
func (s *rankingService) Leaderboard(ctx context.Context) ([]tournament.RankedRow, error) {
	snap, err := loadSnapshot(ctx, s.userRepo, s.matchRepo, s.predictionRepo)
	if err != nil {
		return nil, err
	}

	rows := make([]tournament.RankingRow, 0, len(snap.users))
	for _, user := range snap.users {
		byPhase := snap.scoreUser(user.ID, s.points)
		rows = append(rows, tournament.RankingRow{
			UserID:   user.ID,
			Nickname: user.Nickname,
			Totals:   tournament.TotalScore(byPhase),
		})
	}
	return tournament.Rank(rows), nil
}

func (s *rankingService) Breakdown(ctx context.Context, userID int) (*UserBreakdown, error) {
	snap, err := loadSnapshot(ctx, s.userRepo, s.matchRepo, s.predictionRepo)
	if err != nil {
		return nil, err
	}

	var user *models.User
	for _, u := range snap.users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	byPhase := snap.scoreUser(userID, s.points)
	phases := make([]models.PhaseScore, 0, len(tournament.Phases))
	for _, phase := range tournament.Phases {
		phases = append(phases, byPhase[phase])
	}
	return &UserBreakdown{
		User:   user,
		Phases: phases,
		Totals: tournament.TotalScore(byPhase),
	}, nil
}
