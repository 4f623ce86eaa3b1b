package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/storage"
)

type PaymentService interface {
	UploadReceipt(ctx context.Context, userID int, contentType string, receipt io.Reader) (*models.Payment, error)
	List(ctx context.Context, status *models.PaymentStatus) ([]*models.Payment, error)
	Review(ctx context.Context, paymentID int, approve bool, note *string) (*models.Payment, error)
}

type paymentService struct {
	db          *sql.DB
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	uploader    storage.FileUploader
	now         func() time.Time
}

func NewPaymentService(
	db *sql.DB,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	uploader storage.FileUploader,
) PaymentService {
	return &paymentService{
		db:          db,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		uploader:    uploader,
		now:         time.Now,
	}
}

// UploadReceipt stores the receipt image in the bucket and queues the
// payment for manual review.
func (s *paymentService) UploadReceipt(ctx context.Context, userID int, contentType string, receipt io.Reader) (*models.Payment, error) {
	if receipt == nil {
		return nil, ErrReceiptRequired
	}
	if _, err := s.userRepo.GetByID(ctx, nil, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("receipts/user-%d/%d", userID, s.now().UnixNano())
	uploaded, err := s.uploader.Upload(ctx, key, contentType, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to upload receipt for user %d: %w", userID, err)
	}

	payment := &models.Payment{
		UserID:     userID,
		ReceiptURL: uploaded.Location,
		Status:     models.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, nil, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, status *models.PaymentStatus) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.ListByStatus(ctx, nil, status)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		user, err := s.userRepo.GetByID(ctx, nil, p.UserID)
		if err != nil {
			continue
		}
		p.User = user
	}
	return payments, nil
}

// Review settles a pending payment. The payment row and the owner's
// payment status flip in one transaction so the prediction gate can never
// observe half a decision.
func (s *paymentService) Review(ctx context.Context, paymentID int, approve bool, note *string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, nil, paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status != models.PaymentPending {
		return nil, ErrPaymentReviewed
	}

	status := models.PaymentRejected
	if approve {
		status = models.PaymentApproved
	}
	reviewedAt := s.now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.paymentRepo.UpdateStatus(ctx, tx, paymentID, status, note, reviewedAt); err != nil {
		return nil, err
	}
	if err = s.userRepo.UpdatePaymentStatus(ctx, tx, payment.UserID, status); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment review: %w", err)
	}

	payment.Status = status
	payment.Note = note
	payment.ReviewedAt = &reviewedAt
	return payment, nil
}
