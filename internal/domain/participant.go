package domain

import (
	"errors"
	"time"
)

type ParticipantStatus string

const (
	StatusPending    ParticipantStatus = "pending"
	StatusWaitlisted ParticipantStatus = "waitlisted"
	StatusConfirmed  ParticipantStatus = "confirmed"
	StatusCancelled  ParticipantStatus = "cancelled"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusPending, StatusWaitlisted, StatusConfirmed, StatusCancelled:
		return true
	}

	return false
}

// InTransition reports whether the participant still waits on an owner,
// a payment or a free slot.
func (s ParticipantStatus) InTransition() bool {
	return s == StatusPending || s == StatusWaitlisted
}

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentPending     PaymentStatus = "pending"
	PaymentMarkedPaid  PaymentStatus = "marked_paid"
	PaymentCompleted   PaymentStatus = "completed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentNotRequired, PaymentPending, PaymentMarkedPaid, PaymentCompleted:
		return true
	}

	return false
}

// transitions lists the statuses each status may move to. A cancelled row is
// reused when the same user joins again.
var transitions = map[ParticipantStatus][]ParticipantStatus{
	StatusPending:    {StatusPending, StatusConfirmed, StatusCancelled},
	StatusWaitlisted: {StatusPending, StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCancelled},
	StatusCancelled:  {StatusPending, StatusWaitlisted, StatusConfirmed},
}

func CanTransition(from, to ParticipantStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

type Participant struct {
	ID                  uint              `json:"id"`
	HuntID              uint              `json:"hunt_id"`
	UserID              uint              `json:"user_id"`
	Status              ParticipantStatus `json:"status"`
	PaymentStatus       PaymentStatus     `json:"payment_status"`
	WaitlistPosition    *int              `json:"waitlist_position"`
	JoinedAt            time.Time         `json:"joined_at"`
	RequestExpiresAt    *time.Time        `json:"request_expires_at"`
	IsPaymentProcessing bool              `json:"is_payment_processing"`
	PaidAt              *time.Time        `json:"paid_at"`
	RejectionCount      int               `json:"rejection_count"`
	LastRejectedAt      *time.Time        `json:"last_rejected_at"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// ParticipantRef identifies a participant row across hunts.
type ParticipantRef struct {
	HuntID uint
	UserID uint
}

func (p Participant) Ref() ParticipantRef {
	return ParticipantRef{HuntID: p.HuntID, UserID: p.UserID}
}

// HasCompletedPayment reports whether the participant paid and the owner confirmed it.
func (p Participant) HasCompletedPayment() bool {
	return p.Status == StatusConfirmed && p.PaymentStatus == PaymentCompleted && p.PaidAt != nil
}

func (p Participant) IsExpired(now time.Time) bool {
	return p.Status.InTransition() && p.RequestExpiresAt != nil && !p.RequestExpiresAt.After(now)
}

// Validate checks the invariants every stored participant must hold.
func (p Participant) Validate() error {
	if !p.Status.Valid() {
		return errors.New("invalid participant status")
	}
	if !p.PaymentStatus.Valid() {
		return errors.New("invalid payment status")
	}
	if (p.WaitlistPosition != nil) != (p.Status == StatusWaitlisted) {
		return errors.New("waitlist position must be set if and only if the participant is waitlisted")
	}
	if p.PaymentStatus == PaymentCompleted && (p.Status != StatusConfirmed || p.PaidAt == nil) {
		return errors.New("completed payment requires a confirmed participant with a payment date")
	}
	if p.RejectionCount < 0 {
		return errors.New("rejection count cannot be negative")
	}

	return nil
}
