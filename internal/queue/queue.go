package queue

import (
	"context"
	"errors"
	"time"
)

// Task is a background job: a stable type name and an opaque payload.
type Task struct {
	Type    string
	Payload []byte
}

// Handler processes a Task. A non-nil error asks for a retry, so handlers
// must be idempotent.
type Handler func(ctx context.Context, task Task) error

// EnqueueOption tunes a single enqueue. Zero values mean unspecified.
type EnqueueOption struct {
	Queue     string
	TaskID    string // rejects a second task with the same ID while the first is kept
	ProcessIn time.Duration
	ProcessAt time.Time // wins over ProcessIn
	MaxRetry  int
	Retention time.Duration
}

// ErrDuplicateTask is returned by Enqueue when TaskID is already taken.
var ErrDuplicateTask = errors.New("queue: task already enqueued")

type Client interface {
	Enqueue(ctx context.Context, task Task, opts ...EnqueueOption) (id string, err error)
	Close() error
}

// Server runs handlers for registered task types until Run's context ends.
type Server interface {
	Register(taskType string, h Handler)
	Run(ctx context.Context) error
}

// Scheduler enqueues a task on a cron spec such as "@every 1m".
type Scheduler interface {
	Every(spec string, task Task, opts ...EnqueueOption) error
	Run(ctx context.Context) error
}
