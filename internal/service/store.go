package service

import (
	"context"
	"time"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

var (
	ErrHuntNotFound          = domain.ErrHuntNotFound
	ErrNotAParticipant       = domain.ErrNotAParticipant
	ErrHuntFull              = domain.ErrHuntFull
	ErrHuntEnded             = domain.ErrHuntEnded
	ErrTooCloseToEnd         = domain.ErrTooCloseToEnd
	ErrAlreadyProcessing     = domain.ErrAlreadyProcessing
	ErrAlreadyPaid           = domain.ErrAlreadyPaid
	ErrRejectionLimitReached = domain.ErrRejectionLimitReached
	ErrSettingsBlocked       = domain.ErrSettingsBlocked
	ErrCapacityTooLow        = domain.ErrCapacityTooLow

	ErrNotHuntOwner           = domain.ErrNotHuntOwner
	ErrAlreadyParticipant     = domain.ErrAlreadyParticipant
	ErrInvalidTransition      = domain.ErrInvalidTransition
	ErrOverCapacity           = domain.ErrOverCapacity
	ErrEmailNotVerified       = domain.ErrEmailNotVerified
	ErrPaymentAccountRequired = domain.ErrPaymentAccountRequired
	ErrNotPaidHunt            = domain.ErrNotPaidHunt
	ErrInvalidHunt            = domain.ErrInvalidHunt
	ErrUserNotFound           = domain.ErrUserNotFound
)

// CapacityLedger answers the aggregate questions transitions depend on. The
// answers are read inside the same transaction as the write that follows.
type CapacityLedger interface {
	ConfirmedCount(ctx context.Context) (int, error)
	PendingCount(ctx context.Context) (int, error)
	HasInTransition(ctx context.Context) (bool, error)
	HasConfirmedPayments(ctx context.Context) (bool, error)
	NextWaitlistPosition(ctx context.Context) (int, error)
}

// WaitlistQueue yields waitlisted participants by ascending position, then
// join time. A limit of zero or less returns the whole queue.
type WaitlistQueue interface {
	NextWaitlisted(ctx context.Context, limit int) ([]domain.Participant, error)
}

// HuntTx is a transaction holding the write lock of one hunt.
type HuntTx interface {
	CapacityLedger
	WaitlistQueue

	Hunt() domain.Hunt
	SaveHunt(ctx context.Context, hunt domain.Hunt) (domain.Hunt, error)
	DeleteHunt(ctx context.Context) error

	FindParticipant(ctx context.Context, userID uint) (domain.Participant, error)
	Participants(ctx context.Context, statuses ...domain.ParticipantStatus) ([]domain.Participant, error)
	SaveParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
}

type HuntStore interface {
	CreateHunt(ctx context.Context, hunt domain.Hunt) (domain.Hunt, error)
	GetHunt(ctx context.Context, id uint) (domain.Hunt, error)
	FindParticipant(ctx context.Context, huntID, userID uint) (domain.Participant, error)
	ListParticipants(ctx context.Context, huntID uint, statuses ...domain.ParticipantStatus) ([]domain.Participant, error)
	FindExpiredRequests(ctx context.Context, now time.Time) ([]domain.ParticipantRef, error)

	// InHuntTx locks the hunt and runs fn in a single transaction. A lost
	// race is reported as domain.ErrWriteConflict.
	InHuntTx(ctx context.Context, huntID uint, fn func(tx HuntTx) error) error
}

// UserDirectory exposes the account capabilities owned by other services.
type UserDirectory interface {
	PaymentCapability(ctx context.Context, ownerID uint) (domain.PaymentCapability, error)
	IsEmailVerified(ctx context.Context, userID uint) (bool, error)
	IncrementHuntsJoined(ctx context.Context, userID uint) error
}

type SummaryCache interface {
	Get(ctx context.Context, huntID uint) (domain.HuntSummary, bool, error)
	Set(ctx context.Context, summary domain.HuntSummary) error
	Invalidate(ctx context.Context, huntID uint) error
}

// PurgeScheduler arranges for the waitlist of a hunt to be purged one second
// before it starts.
type PurgeScheduler interface {
	SchedulePurge(ctx context.Context, hunt domain.Hunt) error
}
