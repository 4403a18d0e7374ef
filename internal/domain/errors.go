package domain

import "errors"

var (
	ErrHuntNotFound          = errors.New("hunt not found")
	ErrNotAParticipant       = errors.New("user is not a participant of this hunt")
	ErrHuntFull              = errors.New("hunt is full")
	ErrHuntEnded             = errors.New("hunt has already ended")
	ErrTooCloseToEnd         = errors.New("hunt ends in less than a minute")
	ErrAlreadyProcessing     = errors.New("payment is already being processed")
	ErrAlreadyPaid           = errors.New("payment has already been made")
	ErrRejectionLimitReached = errors.New("join requests for this hunt were rejected too many times")
	ErrSettingsBlocked       = errors.New("hunt settings cannot be changed")
	ErrCapacityTooLow        = errors.New("capacity cannot be lower than the confirmed participant count")

	ErrNotHuntOwner           = errors.New("only the hunt creator can do this")
	ErrAlreadyParticipant     = errors.New("user already joined this hunt")
	ErrInvalidTransition      = errors.New("participant cannot move to the requested status")
	ErrOverCapacity           = errors.New("hunt is full, accepting requires raising its capacity")
	ErrEmailNotVerified       = errors.New("email must be verified to join a paid hunt")
	ErrPaymentAccountRequired = errors.New("a verified email and a payment account are required to host a paid hunt")
	ErrNotPaidHunt            = errors.New("hunt does not require payment")
	ErrInvalidHunt            = errors.New("invalid hunt")
	ErrUserNotFound           = errors.New("user not found")

	// ErrWriteConflict reports a lost race at the storage layer. It is retried
	// internally and never reaches a handler.
	ErrWriteConflict = errors.New("concurrent write conflict")
)
