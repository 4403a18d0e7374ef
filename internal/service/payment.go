package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

// WithPaymentLock sets isPaymentProcessing on the participant, runs fn and
// clears the flag again whatever fn returns, including when ctx is
// cancelled. fn runs outside any transaction so a slow payment provider
// never holds the hunt lock.
func (s *ParticipationService) WithPaymentLock(ctx context.Context, huntID, userID uint, fn func(ctx context.Context) error) (err error) {
	err = s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		if !tx.Hunt().IsPaid {
			return ErrNotPaidHunt
		}

		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if p.Status != domain.StatusPending {
			return ErrInvalidTransition
		}
		if err := domain.CanProcessPayment(p); err != nil {
			return err
		}

		p.IsPaymentProcessing = true
		if _, err := tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	defer func() {
		if releaseErr := s.releasePaymentLock(context.WithoutCancel(ctx), huntID, userID); releaseErr != nil {
			zap.L().Error("failed to release payment lock",
				zap.Uint("hunt_id", huntID), zap.Uint("user_id", userID), zap.Error(releaseErr))
			err = errors.Join(err, releaseErr)
		}
	}()

	return fn(ctx)
}

func (s *ParticipationService) releasePaymentLock(ctx context.Context, huntID, userID uint) error {
	return s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if !p.IsPaymentProcessing {
			return nil
		}

		p.IsPaymentProcessing = false
		if _, err := tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}

		return nil
	})
}

// MarkPaid records the participant's claim that they paid. The creator still
// has to confirm it.
func (s *ParticipationService) MarkPaid(ctx context.Context, huntID, userID uint) (domain.Participant, error) {
	var marked domain.Participant

	err := s.WithPaymentLock(ctx, huntID, userID, func(ctx context.Context) error {
		return s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
			p, err := tx.FindParticipant(ctx, userID)
			if err != nil {
				return err
			}
			if p.PaymentStatus == domain.PaymentMarkedPaid {
				return ErrAlreadyPaid
			}
			// The row may have been cancelled since the lock was taken.
			if p.Status != domain.StatusPending || !p.IsPaymentProcessing {
				return ErrInvalidTransition
			}

			p.PaymentStatus = domain.PaymentMarkedPaid
			if marked, err = tx.SaveParticipant(ctx, p); err != nil {
				return fmt.Errorf("tx.SaveParticipant -> %w", err)
			}

			return nil
		})
	})
	if err != nil {
		return domain.Participant{}, err
	}
	marked.IsPaymentProcessing = false

	return marked, nil
}

// ConfirmPayment lets the creator confirm a payment marked by the
// participant, which confirms the participant. A full hunt needs the same
// over-capacity acceptance as Approve.
func (s *ParticipationService) ConfirmPayment(ctx context.Context, huntID, ownerID, userID uint, opts ApproveOptions) (domain.Participant, error) {
	var confirmed domain.Participant

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		hunt := tx.Hunt()
		if !hunt.IsCreator(ownerID) {
			return ErrNotHuntOwner
		}
		if !hunt.IsPaid {
			return ErrNotPaidHunt
		}

		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if p.Status != domain.StatusPending || p.PaymentStatus != domain.PaymentMarkedPaid {
			return ErrInvalidTransition
		}

		if err := s.makeRoom(ctx, tx, opts); err != nil {
			return err
		}

		now := s.clock.Now()
		if err := moveTo(&p, domain.StatusConfirmed); err != nil {
			return err
		}
		p.PaymentStatus = domain.PaymentCompleted
		p.PaidAt = &now
		p.RequestExpiresAt = nil
		if confirmed, err = tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}
		fx.confirm(userID)

		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return confirmed, nil
}
