package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pollamundial/backend/models"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, payment *models.Payment) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Payment, error)
	ListByStatus(ctx context.Context, exec SQLExecutor, status *models.PaymentStatus) ([]*models.Payment, error)
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.PaymentStatus, note *string, reviewedAt time.Time) error
}

type postgresPaymentRepository struct {
	db *sql.DB
}

func NewPostgresPaymentRepository(db *sql.DB) PaymentRepository {
	return &postgresPaymentRepository{db: db}
}

func (r *postgresPaymentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const paymentColumns = `id, user_id, receipt_url, status, note, created_at, reviewed_at`

func (r *postgresPaymentRepository) Create(ctx context.Context, exec SQLExecutor, payment *models.Payment) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO payments (user_id, receipt_url, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	return executor.QueryRowContext(ctx, query,
		payment.UserID, payment.ReceiptURL, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *postgresPaymentRepository) scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.ReceiptURL, &p.Status, &p.Note, &p.CreatedAt, &p.ReviewedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPaymentRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Payment, error) {
	executor := r.getExecutor(exec)
	row := executor.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	return r.scanPayment(row)
}

func (r *postgresPaymentRepository) ListByStatus(ctx context.Context, exec SQLExecutor, status *models.PaymentStatus) ([]*models.Payment, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + paymentColumns + ` FROM payments`
	args := make([]interface{}, 0, 1)
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at`

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*models.Payment, 0)
	for rows.Next() {
		p, errScan := r.scanPayment(rows)
		if errScan != nil {
			return nil, errScan
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *postgresPaymentRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.PaymentStatus, note *string, reviewedAt time.Time) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx,
		`UPDATE payments SET status = $1, note = $2, reviewed_at = $3 WHERE id = $4`,
		status, note, reviewedAt, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPaymentNotFound)
}
