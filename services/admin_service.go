package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pollamundial/backend/live"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/tournament"
)

type AdminService interface {
	// RecalculateAll rescores every user against current official results
	// and persists the per-phase records.
	RecalculateAll(ctx context.Context) error
}

type adminService struct {
	db             *sql.DB
	userRepo       repositories.UserRepository
	matchRepo      repositories.MatchRepository
	predictionRepo repositories.PredictionRepository
	scoreRepo      repositories.ScoreRepository
	points         tournament.Points
	hub            *live.Hub
	logger         *slog.Logger
}

func NewAdminService(
	db *sql.DB,
	userRepo repositories.UserRepository,
	matchRepo repositories.MatchRepository,
	predictionRepo repositories.PredictionRepository,
	scoreRepo repositories.ScoreRepository,
	points tournament.Points,
	hub *live.Hub,
	logger *slog.Logger,
) AdminService {
	return &adminService{
		db:             db,
		userRepo:       userRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		scoreRepo:      scoreRepo,
		points:         points,
		hub:            hub,
		logger:         logger,
	}
}

// RecalculateAll is idempotent: the engine reproduces identical scores from
// identical inputs, so rerunning it (manually or from the scheduler) only
// refreshes updated_at. Concurrent runs are serialized by the upserts, not
// by the engine, which has no shared state.
func (s *adminService) RecalculateAll(ctx context.Context) error {
	snap, err := loadSnapshot(ctx, s.userRepo, s.matchRepo, s.predictionRepo)
	if err != nil {
		return fmt.Errorf("failed to load scoring snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	var txErr error
	defer func() {
		if txErr != nil {
			_ = tx.Rollback()
		}
	}()

	persisted := 0
	for _, user := range snap.users {
		byPhase := snap.scoreUser(user.ID, s.points)
		for _, phase := range tournament.Phases {
			score := byPhase[phase]
			if txErr = s.scoreRepo.Upsert(ctx, tx, &score); txErr != nil {
				return fmt.Errorf("failed to persist score for user %d phase %s: %w", user.ID, phase, txErr)
			}
			persisted++
		}
	}
	if txErr = tx.Commit(); txErr != nil {
		return fmt.Errorf("failed to commit recalculation: %w", txErr)
	}

	s.logger.Info("recalculation complete",
		slog.Int("users", len(snap.users)),
		slog.Int("phase_scores", persisted))

	if s.hub != nil {
		s.hub.BroadcastEvent(live.EventRankingUpdated, nil)
	}
	return nil
}
