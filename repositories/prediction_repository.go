package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pollamundial/backend/models"
)

var ErrPredictionNotFound = errors.New("prediction not found")

type PredictionRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, prediction *models.Prediction) error
	GetByUserAndPhase(ctx context.Context, exec SQLExecutor, userID int, phase models.Phase) (*models.Prediction, error)
	ListByPhase(ctx context.Context, exec SQLExecutor, phase models.Phase) ([]*models.Prediction, error)
	ListByUser(ctx context.Context, exec SQLExecutor, userID int) ([]*models.Prediction, error)
}

type postgresPredictionRepository struct {
	db *sql.DB
}

func NewPostgresPredictionRepository(db *sql.DB) PredictionRepository {
	return &postgresPredictionRepository{db: db}
}

func (r *postgresPredictionRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// Scores and Teams travel as JSONB; the loose document shape mirrors how
// predictions are captured, while the model types keep them strict in Go.
func (r *postgresPredictionRepository) Upsert(ctx context.Context, exec SQLExecutor, prediction *models.Prediction) error {
	executor := r.getExecutor(exec)

	scoresJSON, err := json.Marshal(prediction.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode prediction scores: %w", err)
	}
	teamsJSON, err := json.Marshal(prediction.Teams)
	if err != nil {
		return fmt.Errorf("failed to encode prediction teams: %w", err)
	}

	query := `
		INSERT INTO predictions (user_id, phase, scores, teams, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, phase) DO UPDATE
			SET scores = EXCLUDED.scores, teams = EXCLUDED.teams, updated_at = NOW()
		RETURNING id, updated_at`
	return executor.QueryRowContext(ctx, query,
		prediction.UserID, prediction.Phase, scoresJSON, teamsJSON,
	).Scan(&prediction.ID, &prediction.UpdatedAt)
}

func (r *postgresPredictionRepository) scanPrediction(row interface{ Scan(...interface{}) error }) (*models.Prediction, error) {
	var p models.Prediction
	var scoresJSON, teamsJSON []byte
	err := row.Scan(&p.ID, &p.UserID, &p.Phase, &scoresJSON, &teamsJSON, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(scoresJSON, &p.Scores); err != nil {
		return nil, fmt.Errorf("failed to decode prediction scores for user %d: %w", p.UserID, err)
	}
	if len(teamsJSON) > 0 {
		if err := json.Unmarshal(teamsJSON, &p.Teams); err != nil {
			return nil, fmt.Errorf("failed to decode prediction teams for user %d: %w", p.UserID, err)
		}
	}
	return &p, nil
}

const predictionColumns = `id, user_id, phase, scores, teams, updated_at`

func (r *postgresPredictionRepository) GetByUserAndPhase(ctx context.Context, exec SQLExecutor, userID int, phase models.Phase) (*models.Prediction, error) {
	executor := r.getExecutor(exec)
	row := executor.QueryRowContext(ctx,
		`SELECT `+predictionColumns+` FROM predictions WHERE user_id = $1 AND phase = $2`, userID, phase)
	return r.scanPrediction(row)
}

func (r *postgresPredictionRepository) ListByPhase(ctx context.Context, exec SQLExecutor, phase models.Phase) ([]*models.Prediction, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx,
		`SELECT `+predictionColumns+` FROM predictions WHERE phase = $1 ORDER BY user_id`, phase)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *postgresPredictionRepository) ListByUser(ctx context.Context, exec SQLExecutor, userID int) ([]*models.Prediction, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx,
		`SELECT `+predictionColumns+` FROM predictions WHERE user_id = $1 ORDER BY phase`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *postgresPredictionRepository) collect(rows *sql.Rows) ([]*models.Prediction, error) {
	predictions := make([]*models.Prediction, 0)
	for rows.Next() {
		p, err := r.scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}
