package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput         = "invalid input"
	ErrMsgTreeNotFound         = "tree not found"
	ErrMsgTierNotFound         = "tier not found"
	ErrMsgDonationBelowMinimum = "donation below minimum amount"
	ErrMsgDonationAboveMaximum = "donation above maximum amount"
	ErrMsgDatabaseError        = "database error"
	ErrMsgDuplicateTreeID      = "tree id already exists"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrTreeNotFound = errors.New(ErrMsgTreeNotFound)
	ErrTierNotFound = errors.New(ErrMsgTierNotFound)

	// ErrDonationBelowMinimum is also an ErrInvalidInput
	ErrDonationBelowMinimum = &wrappedError{msg: ErrMsgDonationBelowMinimum, base: ErrInvalidInput}
	ErrDonationAboveMaximum = &wrappedError{msg: ErrMsgDonationAboveMaximum, base: ErrInvalidInput}

	ErrDuplicateTreeID = errors.New(ErrMsgDuplicateTreeID)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

type wrappedError struct {
	msg  string
	base error
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.base }
