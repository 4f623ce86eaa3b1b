package models

import "time"

// Payment is one uploaded receipt awaiting manual review. Approving it
// flips the owner's PaymentStatus and unlocks prediction submission.
type Payment struct {
	ID         int           `json:"id" db:"id"`
	UserID     int           `json:"user_id" db:"user_id"`
	ReceiptURL string        `json:"receipt_url" db:"receipt_url"`
	Status     PaymentStatus `json:"status" db:"status"`
	Note       *string       `json:"note,omitempty" db:"note"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	ReviewedAt *time.Time    `json:"reviewed_at,omitempty" db:"reviewed_at"`

	User *User `json:"user,omitempty" db:"-"`
}
