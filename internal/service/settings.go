package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

// The settings guard. Each check runs against the ledger of an open hunt
// transaction; the exported variants open one themselves.

func canChangeHuntSettings(ctx context.Context, tx HuntTx, changes domain.HuntChanges) error {
	inTransition, err := tx.HasInTransition(ctx)
	if err != nil {
		return fmt.Errorf("tx.HasInTransition -> %w", err)
	}
	if inTransition {
		return fmt.Errorf("%w: resolve pending and waitlisted participants first", ErrSettingsBlocked)
	}

	if changes.IsPaid != nil && !*changes.IsPaid && tx.Hunt().IsPaid {
		paid, err := tx.HasConfirmedPayments(ctx)
		if err != nil {
			return fmt.Errorf("tx.HasConfirmedPayments -> %w", err)
		}
		if paid {
			return fmt.Errorf("%w: participants already paid for this hunt", ErrSettingsBlocked)
		}
	}

	return nil
}

func canCancelHunt(ctx context.Context, tx HuntTx) error {
	paid, err := tx.HasConfirmedPayments(ctx)
	if err != nil {
		return fmt.Errorf("tx.HasConfirmedPayments -> %w", err)
	}
	if paid {
		return fmt.Errorf("%w: participants already paid for this hunt", ErrSettingsBlocked)
	}

	return nil
}

func canDecreaseCapacity(ctx context.Context, tx HuntTx, newCapacity int) error {
	confirmed, err := tx.ConfirmedCount(ctx)
	if err != nil {
		return fmt.Errorf("tx.ConfirmedCount -> %w", err)
	}
	if newCapacity < confirmed {
		return fmt.Errorf("%w: %d participants are confirmed", ErrCapacityTooLow, confirmed)
	}

	return nil
}

func (s *HuntService) CanChangeHuntSettings(ctx context.Context, huntID uint, changes domain.HuntChanges) error {
	return s.store.InHuntTx(ctx, huntID, func(tx HuntTx) error {
		return canChangeHuntSettings(ctx, tx, changes)
	})
}

func (s *HuntService) CanCancelHunt(ctx context.Context, huntID uint) error {
	return s.store.InHuntTx(ctx, huntID, func(tx HuntTx) error {
		return canCancelHunt(ctx, tx)
	})
}

func (s *HuntService) CanDecreaseCapacity(ctx context.Context, huntID uint, newCapacity int) error {
	return s.store.InHuntTx(ctx, huntID, func(tx HuntTx) error {
		return canDecreaseCapacity(ctx, tx, newCapacity)
	})
}

// HandleCapacityIncrease stores the larger capacity, nil meaning unlimited,
// and promotes waitlisted participants into the new slots in FIFO order.
// Private hunts keep their waitlist untouched.
func (s *HuntService) HandleCapacityIncrease(ctx context.Context, huntID uint, newCapacity *int) ([]domain.Participant, error) {
	var promoted []domain.Participant

	err := s.participation.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		var err error
		promoted, err = s.increaseCapacity(ctx, tx, fx, newCapacity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return promoted, nil
}

func (s *HuntService) increaseCapacity(ctx context.Context, tx HuntTx, fx *effects, newCapacity *int) ([]domain.Participant, error) {
	hunt := tx.Hunt()
	if newCapacity != nil {
		if hunt.Capacity != nil && *newCapacity < *hunt.Capacity {
			return nil, fmt.Errorf("%w: capacity %d is lower than %d", ErrInvalidHunt, *newCapacity, *hunt.Capacity)
		}
		if err := canDecreaseCapacity(ctx, tx, *newCapacity); err != nil {
			return nil, err
		}
	}

	hunt.Capacity = newCapacity
	if _, err := tx.SaveHunt(ctx, hunt); err != nil {
		return nil, fmt.Errorf("tx.SaveHunt -> %w", err)
	}

	return s.participation.promoteWaitlisted(ctx, tx, fx)
}
