package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vietanh2810/hunt-api/internal/clock"
	"github.com/vietanh2810/hunt-api/internal/domain"
)

type HuntService struct {
	store         HuntStore
	users         UserDirectory
	participation *ParticipationService
	scheduler     PurgeScheduler
	cache         SummaryCache
	clock         clock.Clock
}

func NewHuntService(store HuntStore, users UserDirectory, participation *ParticipationService, scheduler PurgeScheduler, cache SummaryCache, clk clock.Clock) *HuntService {
	return &HuntService{
		store:         store,
		users:         users,
		participation: participation,
		scheduler:     scheduler,
		cache:         cache,
		clock:         clk,
	}
}

func validateHunt(h domain.Hunt) error {
	switch {
	case strings.TrimSpace(h.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidHunt)
	case !h.Visibility.Valid():
		return fmt.Errorf("%w: visibility must be public or private", ErrInvalidHunt)
	case !h.StartDate.Before(h.EndDate):
		return fmt.Errorf("%w: start date must be before end date", ErrInvalidHunt)
	case h.Capacity != nil && *h.Capacity < 1:
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidHunt)
	case h.MinimumPax != nil && *h.MinimumPax < 1:
		return fmt.Errorf("%w: minimum pax must be at least 1", ErrInvalidHunt)
	}

	return nil
}

// CreateHunt stores a new hunt owned by ownerID. Hosting a paid hunt needs a
// verified email and a payment account.
func (s *HuntService) CreateHunt(ctx context.Context, ownerID uint, hunt domain.Hunt) (domain.Hunt, error) {
	hunt.ID = 0
	hunt.OwnerID = ownerID
	hunt.HasParticipantsInTransition = false
	if hunt.Visibility == "" {
		hunt.Visibility = domain.VisibilityPublic
	}

	if err := validateHunt(hunt); err != nil {
		return domain.Hunt{}, err
	}
	if !hunt.EndDate.After(s.clock.Now()) {
		return domain.Hunt{}, fmt.Errorf("%w: end date is in the past", ErrInvalidHunt)
	}

	if hunt.IsPaid {
		capability, err := s.users.PaymentCapability(ctx, ownerID)
		if err != nil {
			return domain.Hunt{}, fmt.Errorf("s.users.PaymentCapability -> %w", err)
		}
		if !capability.CanHostPaidHunt() {
			return domain.Hunt{}, ErrPaymentAccountRequired
		}
	}

	created, err := s.store.CreateHunt(ctx, hunt)
	if err != nil {
		return domain.Hunt{}, fmt.Errorf("s.store.CreateHunt -> %w", err)
	}

	s.schedulePurge(ctx, created)

	return created, nil
}

func (s *HuntService) GetHunt(ctx context.Context, huntID uint) (domain.Hunt, error) {
	hunt, err := s.store.GetHunt(ctx, huntID)
	if err != nil {
		return domain.Hunt{}, fmt.Errorf("s.store.GetHunt -> %w", err)
	}

	return hunt, nil
}

// Summary returns the participation counts of a hunt, served from the cache
// when possible.
func (s *HuntService) Summary(ctx context.Context, huntID uint) (domain.HuntSummary, error) {
	if s.cache != nil {
		summary, ok, err := s.cache.Get(ctx, huntID)
		if err != nil {
			zap.L().Warn("failed to read hunt summary from cache", zap.Uint("hunt_id", huntID), zap.Error(err))
		}
		if ok {
			return summary, nil
		}
	}

	hunt, err := s.store.GetHunt(ctx, huntID)
	if err != nil {
		return domain.HuntSummary{}, fmt.Errorf("s.store.GetHunt -> %w", err)
	}

	participants, err := s.store.ListParticipants(ctx, huntID)
	if err != nil {
		return domain.HuntSummary{}, fmt.Errorf("s.store.ListParticipants -> %w", err)
	}

	summary := domain.Summarize(hunt, participants)
	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			zap.L().Warn("failed to cache hunt summary", zap.Uint("hunt_id", huntID), zap.Error(err))
		}
	}

	return summary, nil
}

// UpdateHunt applies the creator's changes in one hunt transaction. Admission
// settings go through the settings guard, a lower capacity must still fit
// the confirmed participants and a higher one promotes from the waitlist.
func (s *HuntService) UpdateHunt(ctx context.Context, ownerID, huntID uint, changes domain.HuntChanges) (domain.Hunt, error) {
	var (
		updated      domain.Hunt
		startChanged bool
	)

	err := s.participation.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		current := tx.Hunt()
		if !current.IsCreator(ownerID) {
			return ErrNotHuntOwner
		}

		if changes.TouchesSettings(current) {
			if err := canChangeHuntSettings(ctx, tx, changes); err != nil {
				return err
			}
		}
		if changes.IsPaid != nil && *changes.IsPaid && !current.IsPaid {
			capability, err := s.users.PaymentCapability(ctx, ownerID)
			if err != nil {
				return fmt.Errorf("s.users.PaymentCapability -> %w", err)
			}
			if !capability.CanHostPaidHunt() {
				return ErrPaymentAccountRequired
			}
		}

		next := changes.Apply(current)
		capacityChanged := changes.TouchesCapacity(current)
		var newCapacity *int
		if capacityChanged && !changes.ClearCapacity {
			c := *changes.Capacity
			newCapacity = &c
		}
		if capacityChanged {
			next.Capacity = newCapacity
		}
		if err := validateHunt(next); err != nil {
			return err
		}
		startChanged = !next.StartDate.Equal(current.StartDate)

		increase := capacityChanged && (newCapacity == nil || (current.Capacity != nil && *newCapacity > *current.Capacity))
		if capacityChanged && !increase {
			if err := canDecreaseCapacity(ctx, tx, *newCapacity); err != nil {
				return err
			}
		}

		// Store everything but a capacity increase first; the increase
		// promotes against the stored hunt.
		if increase {
			next.Capacity = current.Capacity
		}
		if _, err := tx.SaveHunt(ctx, next); err != nil {
			return fmt.Errorf("tx.SaveHunt -> %w", err)
		}
		if increase {
			if _, err := s.increaseCapacity(ctx, tx, fx, newCapacity); err != nil {
				return err
			}
		}

		if startChanged {
			if err := clampRequestDeadlines(ctx, tx); err != nil {
				return err
			}
		}

		updated = tx.Hunt()

		return nil
	})
	if err != nil {
		return domain.Hunt{}, err
	}

	if startChanged {
		s.schedulePurge(ctx, updated)
	}

	return updated, nil
}

// clampRequestDeadlines keeps every open request expiring before the start
// after the start moved earlier.
func clampRequestDeadlines(ctx context.Context, tx HuntTx) error {
	deadline := tx.Hunt().PurgeAt()

	open, err := tx.Participants(ctx, domain.StatusPending, domain.StatusWaitlisted)
	if err != nil {
		return fmt.Errorf("tx.Participants -> %w", err)
	}

	for _, p := range open {
		if p.RequestExpiresAt == nil || !p.RequestExpiresAt.After(deadline) {
			continue
		}
		at := deadline
		p.RequestExpiresAt = &at
		if _, err := tx.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("tx.SaveParticipant -> %w", err)
		}
	}

	return nil
}

// CancelHunt deletes the hunt unless someone already paid for it. Remaining
// participants are cancelled without promotion.
func (s *HuntService) CancelHunt(ctx context.Context, ownerID, huntID uint) error {
	return s.participation.inHunt(ctx, huntID, func(tx HuntTx, fx *effects) error {
		if !tx.Hunt().IsCreator(ownerID) {
			return ErrNotHuntOwner
		}
		if err := canCancelHunt(ctx, tx); err != nil {
			return err
		}

		active, err := tx.Participants(ctx, domain.StatusPending, domain.StatusWaitlisted, domain.StatusConfirmed)
		if err != nil {
			return fmt.Errorf("tx.Participants -> %w", err)
		}
		for _, p := range active {
			if err := cancel(&p); err != nil {
				return err
			}
			if _, err := tx.SaveParticipant(ctx, p); err != nil {
				return fmt.Errorf("tx.SaveParticipant -> %w", err)
			}
		}

		if err := refreshTransitionFlag(ctx, tx); err != nil {
			return err
		}
		if err := tx.DeleteHunt(ctx); err != nil {
			return fmt.Errorf("tx.DeleteHunt -> %w", err)
		}

		return nil
	})
}

func (s *HuntService) schedulePurge(ctx context.Context, hunt domain.Hunt) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.SchedulePurge(ctx, hunt); err != nil {
		zap.L().Error("failed to schedule waitlist purge", zap.Uint("hunt_id", hunt.ID), zap.Error(err))
	}
}
