package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

// openSlots is how many waitlisted participants may be advanced. Confirmed
// participants take a slot; on paid hunts a pending participant holds one
// while its payment window is open. A negative result means unlimited.
func openSlots(ctx context.Context, tx HuntTx) (int, error) {
	hunt := tx.Hunt()
	if hunt.Capacity == nil {
		return -1, nil
	}

	taken, err := tx.ConfirmedCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("tx.ConfirmedCount -> %w", err)
	}
	if hunt.IsPaid {
		pending, err := tx.PendingCount(ctx)
		if err != nil {
			return 0, fmt.Errorf("tx.PendingCount -> %w", err)
		}
		taken += pending
	}

	slots := *hunt.Capacity - taken
	if slots < 0 {
		slots = 0
	}

	return slots, nil
}

// promoteWaitlisted advances the head of the waitlist into every open slot.
// Public free hunts confirm directly, paid hunts reopen a payment window and
// private hunts never promote: the creator approves each request by hand.
func (s *ParticipationService) promoteWaitlisted(ctx context.Context, tx HuntTx, fx *effects) ([]domain.Participant, error) {
	hunt := tx.Hunt()
	if hunt.IsPrivate() {
		return nil, nil
	}

	slots, err := openSlots(ctx, tx)
	if err != nil {
		return nil, err
	}
	if slots == 0 {
		return nil, nil
	}

	limit := slots
	if slots < 0 {
		limit = 0
	}
	queue, err := tx.NextWaitlisted(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("tx.NextWaitlisted -> %w", err)
	}

	now := s.clock.Now()
	promoted := make([]domain.Participant, 0, len(queue))
	for _, p := range queue {
		p.WaitlistPosition = nil
		if hunt.IsPaid {
			if err := moveTo(&p, domain.StatusPending); err != nil {
				return nil, err
			}
			p.PaymentStatus = domain.PaymentPending
			p.RequestExpiresAt = expiresAt(hunt, now)
		} else {
			if err := moveTo(&p, domain.StatusConfirmed); err != nil {
				return nil, err
			}
			p.RequestExpiresAt = nil
			fx.confirm(p.UserID)
		}

		saved, err := tx.SaveParticipant(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("tx.SaveParticipant -> %w", err)
		}
		promoted = append(promoted, saved)
	}

	return promoted, nil
}
