package services

import "errors"

// Shared sentinel errors mapped to HTTP statuses in the handlers layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed   = errors.New("validation failed")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidScore       = errors.New("scores must be integers between 0 and 99")
	ErrUnknownPhase       = errors.New("unknown tournament phase")
	ErrUnknownMatch       = errors.New("prediction references an unknown match")
	ErrPredictionsClosed  = errors.New("predictions are closed for this phase")
	ErrCommunityNotOpen   = errors.New("community picks open once predictions close")
	ErrPaymentNotApproved = errors.New("entry payment has not been approved")
	ErrPaymentReviewed    = errors.New("payment has already been reviewed")
	ErrReceiptRequired    = errors.New("a receipt file is required")

	// Conflicts
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Authentication and authorization
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Entity lookups
	ErrUserNotFound       = errors.New("user not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrPaymentNotFound    = errors.New("payment not found")
)
