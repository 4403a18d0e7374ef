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

type CleanupService struct {
	store         HuntStore
	participation *ParticipationService
	clock         clock.Clock
}

func NewCleanupService(store HuntStore, participation *ParticipationService, clk clock.Clock) *CleanupService {
	return &CleanupService{
		store:         store,
		participation: participation,
		clock:         clk,
	}
}

// SweepExpired cancels every pending or waitlisted request whose deadline
// passed and promotes into the slots they free. Each row is handled in its
// own transaction: a failing row is logged and skipped. Rows another writer
// already moved are left alone, so the sweep can run any time and as often
// as needed.
func (s *CleanupService) SweepExpired(ctx context.Context) (int, error) {
	refs, err := s.store.FindExpiredRequests(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("s.store.FindExpiredRequests -> %w", err)
	}

	cleaned, failed := 0, 0
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return cleaned, err
		}

		expired, err := s.participation.Expire(ctx, ref.HuntID, ref.UserID)
		if err != nil {
			failed++
			zap.L().Error("failed to expire participation request",
				zap.Uint("hunt_id", ref.HuntID), zap.Uint("user_id", ref.UserID), zap.Error(err))
			continue
		}
		if expired {
			cleaned++
		}
	}

	if cleaned > 0 || failed > 0 {
		zap.L().Info("expired participation requests swept",
			zap.Int("found", len(refs)), zap.Int("cleaned", cleaned), zap.Int("failed", failed))
	}

	return cleaned, nil
}

// PurgeBeforeStart clears the waitlist of a hunt about to start. The job is
// stale, and does nothing, when the hunt was cancelled or its start moved
// since it was scheduled.
func (s *CleanupService) PurgeBeforeStart(ctx context.Context, huntID uint, scheduledStart time.Time) (int, error) {
	hunt, err := s.store.GetHunt(ctx, huntID)
	if err != nil {
		if errors.Is(err, domain.ErrHuntNotFound) {
			return 0, nil
		}

		return 0, fmt.Errorf("s.store.GetHunt -> %w", err)
	}
	if !hunt.StartDate.Equal(scheduledStart) {
		zap.L().Debug("skipping stale waitlist purge",
			zap.Uint("hunt_id", huntID), zap.Time("scheduled_start", scheduledStart), zap.Time("start", hunt.StartDate))
		return 0, nil
	}

	purged, err := s.participation.PurgeWaitlist(ctx, huntID)
	if err != nil {
		return 0, fmt.Errorf("s.participation.PurgeWaitlist -> %w", err)
	}

	zap.L().Info("waitlist purged before start", zap.Uint("hunt_id", huntID), zap.Int("purged", purged))

	return purged, nil
}
