package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

type User struct {
	ID            int           `json:"id" db:"id"`
	Email         string        `json:"email" db:"email"`
	Nickname      string        `json:"nickname" db:"nickname"`
	PasswordHash  string        `json:"-" db:"password_hash"`
	Role          UserRole      `json:"role" db:"role"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}
