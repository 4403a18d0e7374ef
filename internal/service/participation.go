package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/hunt-api/internal/clock"
	"github.com/vietanh2810/hunt-api/internal/domain"
)

// ApproveOptions carries the owner's answer to the over-capacity prompt.
type ApproveOptions struct {
	AcceptOverCapacity bool
}

// ParticipationService is the only writer of participant rows. Every
// transition runs inside the hunt's transaction.
type ParticipationService struct {
	store HuntStore
	users UserDirectory
	cache SummaryCache
	clock clock.Clock
}

func NewParticipationService(store HuntStore, users UserDirectory, cache SummaryCache, clk clock.Clock) *ParticipationService {
	return &ParticipationService{
		store: store,
		users: users,
		cache: cache,
		clock: clk,
	}
}

// effects collects what has to happen once a transaction committed.
type effects struct {
	confirmed []uint
}

func (fx *effects) confirm(userID uint) {
	fx.confirmed = append(fx.confirmed, userID)
}

// inHunt runs fn under the hunt lock, refreshes the cached transition flag in
// the same transaction and applies the side effects after commit.
func (s *ParticipationService) inHunt(ctx context.Context, huntID uint, fn func(tx HuntTx, fx *effects) error) error {
	fx := &effects{}
	err := s.store.InHuntTx(ctx, huntID, func(tx HuntTx) error {
		if err := fn(tx, fx); err != nil {
			return err
		}

		return refreshTransitionFlag(ctx, tx)
	})
	if err != nil {
		return err
	}

	s.afterCommit(ctx, huntID, fx)

	return nil
}

func refreshTransitionFlag(ctx context.Context, tx HuntTx) error {
	inTransition, err := tx.HasInTransition(ctx)
	if err != nil {
		return fmt.Errorf("tx.HasInTransition -> %w", err)
	}

	hunt := tx.Hunt()
	if hunt.HasParticipantsInTransition == inTransition {
		return nil
	}

	hunt.HasParticipantsInTransition = inTransition
	if _, err := tx.SaveHunt(ctx, hunt); err != nil {
		return fmt.Errorf("tx.SaveHunt -> %w", err)
	}

	return nil
}

func (s *ParticipationService) afterCommit(ctx context.Context, huntID uint, fx *effects) {
	for _, userID := range fx.confirmed {
		if err := s.users.IncrementHuntsJoined(ctx, userID); err != nil {
			zap.L().Warn("failed to increment joined hunts counter",
				zap.Uint("hunt_id", huntID), zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, huntID); err != nil {
			zap.L().Warn("failed to invalidate hunt summary", zap.Uint("hunt_id", huntID), zap.Error(err))
		}
	}
}

// Join admits the user as confirmed, pending or waitlisted depending on the
// hunt and the confirmed count read under the hunt lock. A transaction that
// loses a race is retried once; losing again resolves to ErrHuntFull.
func (s *ParticipationService) Join(ctx context.Context, huntID, userID uint) (domain.Participant, error) {
	hunt, err := s.store.GetHunt(ctx, huntID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.GetHunt -> %w", err)
	}

	// The hunt read here is only a hint. If it turned paid before the lock
	// was taken, join asks for the verification and runs again.
	var verified *bool
	if hunt.IsPaid {
		if verified, err = s.emailVerified(ctx, userID); err != nil {
			return domain.Participant{}, err
		}
	}

	joined, err := s.join(ctx, huntID, userID, verified)
	if errors.Is(err, errEmailUnchecked) {
		if verified, err = s.emailVerified(ctx, userID); err != nil {
			return domain.Participant{}, err
		}
		joined, err = s.join(ctx, huntID, userID, verified)
	}
	if errors.Is(err, domain.ErrWriteConflict) {
		joined, err = s.join(ctx, huntID, userID, verified)
		if errors.Is(err, domain.ErrWriteConflict) {
			return domain.Participant{}, ErrHuntFull
		}
	}
	if err != nil {
		return domain.Participant{}, err
	}

	return joined, nil
}

var errEmailUnchecked = errors.New("email verification not checked")

func (s *ParticipationService) emailVerified(ctx context.Context, userID uint) (*bool, error) {
	verified, err := s.users.IsEmailVerified(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.users.IsEmailVerified -> %w", err)
	}

	return &verified, nil
}

// join decides on tx.Hunt(). emailVerified is nil when it was not looked up.
func (s *ParticipationService) join(ctx context.Context, huntID, userID uint, emailVerified *bool) (domain.Participant, error) {
	var joined domain.Participant

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		hunt := tx.Hunt()
		now := s.clock.Now()

		p, err := tx.FindParticipant(ctx, userID)
		switch {
		case err == nil:
			if err := domain.CanRequestToJoin(p); err != nil {
				return err
			}
		case errors.Is(err, domain.ErrNotAParticipant):
			p = domain.Participant{HuntID: hunt.ID, UserID: userID}
		default:
			return fmt.Errorf("tx.FindParticipant -> %w", err)
		}

		if err := domain.CanJoinBasedOnTiming(hunt, now); err != nil {
			return err
		}
		if hunt.IsPaid {
			if emailVerified == nil {
				return errEmailUnchecked
			}
			if !*emailVerified {
				return ErrEmailNotVerified
			}
		}

		confirmed, err := tx.ConfirmedCount(ctx)
		if err != nil {
			return fmt.Errorf("tx.ConfirmedCount -> %w", err)
		}

		p.JoinedAt = now
		p.WaitlistPosition = nil
		p.RequestExpiresAt = nil
		p.IsPaymentProcessing = false
		// paidAt blocks payments, so a new participation starts without it.
		p.PaidAt = nil
		p.PaymentStatus = domain.PaymentNotRequired
		if hunt.IsPaid {
			p.PaymentStatus = domain.PaymentPending
		}

		var status domain.ParticipantStatus
		switch {
		case !hunt.IsFull(confirmed) && !hunt.IsPrivate() && !hunt.IsPaid:
			status = domain.StatusConfirmed
			fx.confirm(userID)
		case !hunt.IsFull(confirmed):
			status = domain.StatusPending
			p.RequestExpiresAt = expiresAt(hunt, now)
		case hunt.AllowWaitlist:
			position, err := tx.NextWaitlistPosition(ctx)
			if err != nil {
				return fmt.Errorf("tx.NextWaitlistPosition -> %w", err)
			}
			status = domain.StatusWaitlisted
			p.WaitlistPosition = &position
			p.RequestExpiresAt = expiresAt(hunt, now)
		default:
			return ErrHuntFull
		}
		if err := moveTo(&p, status); err != nil {
			return err
		}

		if joined, err = tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return joined, nil
}

// Leave cancels the user's participation. A vacated slot goes to the head of
// the waitlist.
func (s *ParticipationService) Leave(ctx context.Context, huntID, userID uint) (domain.Participant, error) {
	var left domain.Participant

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if err := cancel(&p); err != nil {
			return err
		}
		if left, err = tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}

		_, err = s.promoteWaitlisted(ctx, tx, fx)

		return err
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return left, nil
}

// Approve confirms a pending or waitlisted participant. When the hunt is full
// the owner must accept going over capacity, in which case the capacity is
// raised to fit in the same transaction.
func (s *ParticipationService) Approve(ctx context.Context, huntID, ownerID, userID uint, opts ApproveOptions) (domain.Participant, error) {
	var approved domain.Participant

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		if !tx.Hunt().IsCreator(ownerID) {
			return ErrNotHuntOwner
		}

		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if !p.Status.InTransition() {
			return ErrInvalidTransition
		}

		if err := s.makeRoom(ctx, tx, opts); err != nil {
			return err
		}

		if err := moveTo(&p, domain.StatusConfirmed); err != nil {
			return err
		}
		p.WaitlistPosition = nil
		p.RequestExpiresAt = nil
		if approved, err = tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}
		fx.confirm(userID)

		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return approved, nil
}

// makeRoom raises the capacity to confirmed+1 when the hunt is full and the
// owner accepted going over capacity.
func (s *ParticipationService) makeRoom(ctx context.Context, tx HuntTx, opts ApproveOptions) error {
	confirmed, err := tx.ConfirmedCount(ctx)
	if err != nil {
		return fmt.Errorf("tx.ConfirmedCount -> %w", err)
	}

	hunt := tx.Hunt()
	if !hunt.IsFull(confirmed) {
		return nil
	}
	if !opts.AcceptOverCapacity {
		return ErrOverCapacity
	}

	capacity := confirmed + 1
	hunt.Capacity = &capacity
	if _, err := tx.SaveHunt(ctx, hunt); err != nil {
		return fmt.Errorf("tx.SaveHunt -> %w", err)
	}

	return nil
}

// Reject turns down a pending or waitlisted request. Three rejections block
// the user from requesting again.
func (s *ParticipationService) Reject(ctx context.Context, huntID, ownerID, userID uint) (domain.Participant, error) {
	var rejected domain.Participant

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		if !tx.Hunt().IsCreator(ownerID) {
			return ErrNotHuntOwner
		}

		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if !p.Status.InTransition() {
			return ErrInvalidTransition
		}

		now := s.clock.Now()
		if err := cancel(&p); err != nil {
			return err
		}
		p.RejectionCount++
		p.LastRejectedAt = &now
		if rejected, err = tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}

		_, err = s.promoteWaitlisted(ctx, tx, fx)

		return err
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return rejected, nil
}

// Expire cancels the participant if its request deadline passed. It reports
// false without writing when there is nothing to expire, so repeated sweeps
// are harmless.
func (s *ParticipationService) Expire(ctx context.Context, huntID, userID uint) (bool, error) {
	expired := false

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		p, err := tx.FindParticipant(ctx, userID)
		if err != nil {
			return err
		}
		if !p.IsExpired(s.clock.Now()) {
			return nil
		}

		if err := cancel(&p); err != nil {
			return err
		}
		if _, err := tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}
		expired = true

		_, err = s.promoteWaitlisted(ctx, tx, fx)

		return err
	})
	if err != nil {
		return false, err
	}

	return expired, nil
}

// PurgeWaitlist cancels every waitlisted participant without promoting
// anyone. It runs right before the hunt starts.
func (s *ParticipationService) PurgeWaitlist(ctx context.Context, huntID uint) (int, error) {
	purged := 0

	err := s.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		waitlisted, err := tx.Participants(ctx, domain.StatusWaitlisted)
		if err != nil {
			return fmt.Errorf("tx.Participants -> %w", err)
		}

		for _, p := range waitlisted {
			if err := cancel(&p); err != nil {
				return err
			}
			if _, err := tx.SaveParticipant(ctx, p); err != nil {
				return fmt.Errorf("tx.SaveParticipant -> %w", err)
			}
			purged++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return purged, nil
}

func (s *ParticipationService) GetParticipant(ctx context.Context, huntID, userID uint) (domain.Participant, error) {
	p, err := s.store.FindParticipant(ctx, huntID, userID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.FindParticipant -> %w", err)
	}

	return p, nil
}

// ListParticipants shows every row to the hunt creator and only confirmed
// participants to everyone else.
func (s *ParticipationService) ListParticipants(ctx context.Context, huntID, viewerID uint) ([]domain.Participant, error) {
	hunt, err := s.store.GetHunt(ctx, huntID)
	if err != nil {
		return nil, fmt.Errorf("s.store.GetHunt -> %w", err)
	}

	var statuses []domain.ParticipantStatus
	if !hunt.IsCreator(viewerID) {
		statuses = []domain.ParticipantStatus{domain.StatusConfirmed}
	}

	participants, err := s.store.ListParticipants(ctx, huntID, statuses...)
	if err != nil {
		return nil, fmt.Errorf("s.store.ListParticipants -> %w", err)
	}

	return participants, nil
}

// CanAccessContent gates albums, chat and completion statistics: only the
// creator and confirmed participants get in.
func (s *ParticipationService) CanAccessContent(ctx context.Context, huntID, userID uint) (bool, error) {
	hunt, err := s.store.GetHunt(ctx, huntID)
	if err != nil {
		return false, fmt.Errorf("s.store.GetHunt -> %w", err)
	}
	if hunt.IsCreator(userID) {
		return true, nil
	}

	p, err := s.store.FindParticipant(ctx, huntID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAParticipant) {
			return false, nil
		}

		return false, fmt.Errorf("s.store.FindParticipant -> %w", err)
	}

	return p.Status == domain.StatusConfirmed, nil
}

// moveTo changes the status of p if the transition table allows it. Rows
// that were never stored can take any status.
func moveTo(p *domain.Participant, to domain.ParticipantStatus) error {
	if p.ID != 0 && !domain.CanTransition(p.Status, to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, p.Status, to)
	}
	p.Status = to

	return nil
}

// cancel moves p to its terminal status. Payment progress is dropped with
// it, paidAt stays as a record of the past payment.
func cancel(p *domain.Participant) error {
	if err := moveTo(p, domain.StatusCancelled); err != nil {
		return err
	}
	p.WaitlistPosition = nil
	p.RequestExpiresAt = nil
	p.IsPaymentProcessing = false
	p.PaymentStatus = domain.PaymentNotRequired

	return nil
}

func expiresAt(hunt domain.Hunt, now time.Time) *time.Time {
	at := domain.CalculateExpirationDate(hunt.StartDate, now)

	return &at
}
