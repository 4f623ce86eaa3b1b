package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pollamundial/backend/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchFilter struct {
	Phase *models.Phase
	Group *string
}

type MatchRepository interface {
	BatchCreate(ctx context.Context, exec SQLExecutor, matches []*models.Match) error
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Match, error)
	List(ctx context.Context, exec SQLExecutor, filter MatchFilter) ([]models.Match, error)
	UpdateResult(ctx context.Context, exec SQLExecutor, id string, score1, score2 int) error
	ClearResult(ctx context.Context, exec SQLExecutor, id string) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `id, team1, team2, group_code, date, score1, score2, phase`

func (r *postgresMatchRepository) BatchCreate(ctx context.Context, exec SQLExecutor, matches []*models.Match) error {
	executor := r.getExecutor(exec)
	if len(matches) == 0 {
		return nil
	}
	query := `
		INSERT INTO matches (id, team1, team2, group_code, date, score1, score2, phase)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`
	for _, m := range matches {
		if _, err := executor.ExecContext(ctx, query,
			m.ID, m.Team1, m.Team2, m.Group, m.Date, m.Score1, m.Score2, m.Phase,
		); err != nil {
			return fmt.Errorf("BatchCreate failed for match %s: %w", m.ID, err)
		}
	}
	return nil
}

func (r *postgresMatchRepository) scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var m models.Match
	err := row.Scan(&m.ID, &m.Team1, &m.Team2, &m.Group, &m.Date, &m.Score1, &m.Score2, &m.Phase)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Match, error) {
	executor := r.getExecutor(exec)
	row := executor.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	return r.scanMatch(row)
}

func (r *postgresMatchRepository) List(ctx context.Context, exec SQLExecutor, filter MatchFilter) ([]models.Match, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + matchColumns + ` FROM matches`
	args := make([]interface{}, 0, 2)
	where := ""
	if filter.Phase != nil {
		args = append(args, *filter.Phase)
		where = fmt.Sprintf(" WHERE phase = $%d", len(args))
	}
	if filter.Group != nil {
		args = append(args, *filter.Group)
		if where == "" {
			where = fmt.Sprintf(" WHERE group_code = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND group_code = $%d", len(args))
		}
	}
	query += where + ` ORDER BY date, id`

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id string, score1, score2 int) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx,
		`UPDATE matches SET score1 = $1, score2 = $2 WHERE id = $3`, score1, score2, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) ClearResult(ctx context.Context, exec SQLExecutor, id string) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx,
		`UPDATE matches SET score1 = NULL, score2 = NULL WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
