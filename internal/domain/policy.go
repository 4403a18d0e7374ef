package domain

import "time"

const (
	// RequestLifetime caps how long a pending or waitlisted request lives.
	RequestLifetime = 7 * 24 * time.Hour
	// PreStartOffset is how long before the start a request must expire and
	// the waitlist is purged.
	PreStartOffset = time.Second
	// JoinCutoff closes joining this long before the hunt ends.
	JoinCutoff = time.Minute

	MaxRejectionCount = 3
)

// CalculateExpirationDate returns the deadline of a request created at from:
// at most RequestLifetime later, and never past one second before the start.
func CalculateExpirationDate(huntStart, from time.Time) time.Time {
	byLifetime := from.Add(RequestLifetime)
	byStart := huntStart.Add(-PreStartOffset)
	if byStart.Before(byLifetime) {
		return byStart
	}

	return byLifetime
}

// CanJoinBasedOnTiming allows joining until one minute before the hunt ends,
// including hunts that already started.
func CanJoinBasedOnTiming(h Hunt, now time.Time) error {
	if !now.Before(h.EndDate) {
		return ErrHuntEnded
	}
	if !now.Before(h.EndDate.Add(-JoinCutoff)) {
		return ErrTooCloseToEnd
	}

	return nil
}

// CanProcessPayment guards against double payments.
func CanProcessPayment(p Participant) error {
	if p.IsPaymentProcessing {
		return ErrAlreadyProcessing
	}
	if p.PaidAt != nil {
		return ErrAlreadyPaid
	}

	return nil
}

func CanRequestToJoin(p Participant) error {
	if p.RejectionCount >= MaxRejectionCount {
		return ErrRejectionLimitReached
	}
	if p.Status != StatusCancelled {
		return ErrAlreadyParticipant
	}

	return nil
}
