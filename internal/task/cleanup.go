package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/queue"
)

const (
	TypeSweepExpired  = "hunt:sweep_expired"
	TypePurgeWaitlist = "hunt:purge_waitlist"
)

// Cleaner runs the participation cleanup jobs.
type Cleaner interface {
	SweepExpired(ctx context.Context) (int, error)
	PurgeBeforeStart(ctx context.Context, huntID uint, scheduledStart time.Time) (int, error)
}

type PurgePayload struct {
	HuntID uint      `json:"hunt_id"`
	Start  time.Time `json:"start"`
}

// RegisterCleanupTasks binds the cleanup task types to cleaner.
func RegisterCleanupTasks(srv queue.Server, cleaner Cleaner) {
	srv.Register(TypeSweepExpired, func(ctx context.Context, _ queue.Task) error {
		if _, err := cleaner.SweepExpired(ctx); err != nil {
			return fmt.Errorf("cleaner.SweepExpired -> %w", err)
		}

		return nil
	})

	srv.Register(TypePurgeWaitlist, func(ctx context.Context, t queue.Task) error {
		var payload PurgePayload
		if err := json.Unmarshal(t.Payload, &payload); err != nil {
			// A malformed payload never gets better, so it is not retried.
			zap.L().Error("dropping malformed purge task", zap.ByteString("payload", t.Payload), zap.Error(err))
			return nil
		}

		if _, err := cleaner.PurgeBeforeStart(ctx, payload.HuntID, payload.Start); err != nil {
			return fmt.Errorf("cleaner.PurgeBeforeStart -> %w", err)
		}

		return nil
	})
}

// RegisterSweep enqueues the expiry sweep on spec, e.g. "@every 1m".
func RegisterSweep(s queue.Scheduler, spec string) error {
	return s.Every(spec, queue.Task{Type: TypeSweepExpired}, queue.EnqueueOption{
		Queue:    queue.DefaultQueue,
		MaxRetry: 1,
	})
}

// PurgeScheduler enqueues one waitlist purge per hunt start. Moving the start
// schedules a new job; the old one finds a different start and does nothing.
type PurgeScheduler struct {
	client queue.Client
}

func NewPurgeScheduler(client queue.Client) *PurgeScheduler {
	return &PurgeScheduler{
		client: client,
	}
}

func purgeTaskID(hunt domain.Hunt) string {
	return fmt.Sprintf("purge:%d:%d", hunt.ID, hunt.StartDate.Unix())
}

func (s *PurgeScheduler) SchedulePurge(ctx context.Context, hunt domain.Hunt) error {
	payload, err := json.Marshal(PurgePayload{HuntID: hunt.ID, Start: hunt.StartDate})
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	_, err = s.client.Enqueue(ctx, queue.Task{Type: TypePurgeWaitlist, Payload: payload}, queue.EnqueueOption{
		Queue:     queue.DefaultQueue,
		TaskID:    purgeTaskID(hunt),
		ProcessAt: hunt.PurgeAt(),
		Retention: 24 * time.Hour,
	})
	if err != nil && !errors.Is(err, queue.ErrDuplicateTask) {
		return fmt.Errorf("s.client.Enqueue -> %w", err)
	}

	return nil
}
