package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pollamundial/backend/models"
)

var ErrPhaseScoreNotFound = errors.New("phase score not found")

type ScoreRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, score *models.PhaseScore) error
	ListByUser(ctx context.Context, exec SQLExecutor, userID int) ([]models.PhaseScore, error)
	ListAll(ctx context.Context, exec SQLExecutor) ([]models.PhaseScore, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresScoreRepository struct {
	db *sql.DB
}

func NewPostgresScoreRepository(db *sql.DB) ScoreRepository {
	return &postgresScoreRepository{db: db}
}

func (r *postgresScoreRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const scoreColumns = `user_id, phase, exact_matches, correct_winners, teams_advanced_bonus, match_points, bonus_points, total_points, updated_at`

// Upsert persists one recomputed phase score. Recalculation is idempotent,
// so overwriting the previous row is always safe.
func (r *postgresScoreRepository) Upsert(ctx context.Context, exec SQLExecutor, score *models.PhaseScore) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO phase_scores
			(user_id, phase, exact_matches, correct_winners, teams_advanced_bonus, match_points, bonus_points, total_points, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id, phase) DO UPDATE SET
			exact_matches = EXCLUDED.exact_matches,
			correct_winners = EXCLUDED.correct_winners,
			teams_advanced_bonus = EXCLUDED.teams_advanced_bonus,
			match_points = EXCLUDED.match_points,
			bonus_points = EXCLUDED.bonus_points,
			total_points = EXCLUDED.total_points,
			updated_at = NOW()
		RETURNING updated_at`
	return executor.QueryRowContext(ctx, query,
		score.UserID, score.Phase, score.ExactMatches, score.CorrectWinners,
		score.TeamsAdvancedBonus, score.MatchPoints, score.BonusPoints, score.TotalPoints,
	).Scan(&score.UpdatedAt)
}

func (r *postgresScoreRepository) scanScore(row interface{ Scan(...interface{}) error }) (*models.PhaseScore, error) {
	var s models.PhaseScore
	err := row.Scan(&s.UserID, &s.Phase, &s.ExactMatches, &s.CorrectWinners,
		&s.TeamsAdvancedBonus, &s.MatchPoints, &s.BonusPoints, &s.TotalPoints, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhaseScoreNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresScoreRepository) ListByUser(ctx context.Context, exec SQLExecutor, userID int) ([]models.PhaseScore, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx,
		`SELECT `+scoreColumns+` FROM phase_scores WHERE user_id = $1 ORDER BY phase`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *postgresScoreRepository) ListAll(ctx context.Context, exec SQLExecutor) ([]models.PhaseScore, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx,
		`SELECT `+scoreColumns+` FROM phase_scores ORDER BY user_id, phase`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *postgresScoreRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM phase_scores`)
	return err
}

func (r *postgresScoreRepository) collect(rows *sql.Rows) ([]models.PhaseScore, error) {
	scores := make([]models.PhaseScore, 0)
	for rows.Next() {
		s, err := r.scanScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, *s)
	}
	return scores, rows.Err()
}
