package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const DefaultQueue = "default"

func redisOpt(redisURL string) (asynq.RedisConnOpt, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("asynq.ParseRedisURI -> %w", err)
	}

	return opt, nil
}

func asynqOptions(opts []EnqueueOption) []asynq.Option {
	var out []asynq.Option
	for _, op := range opts {
		if op.Queue != "" {
			out = append(out, asynq.Queue(op.Queue))
		}
		if op.TaskID != "" {
			out = append(out, asynq.TaskID(op.TaskID))
		}
		if !op.ProcessAt.IsZero() {
			out = append(out, asynq.ProcessAt(op.ProcessAt))
		} else if op.ProcessIn > 0 {
			out = append(out, asynq.ProcessIn(op.ProcessIn))
		}
		if op.MaxRetry > 0 {
			out = append(out, asynq.MaxRetry(op.MaxRetry))
		}
		if op.Retention > 0 {
			out = append(out, asynq.Retention(op.Retention))
		}
	}

	return out
}

// AsynqClient implements Client on a Redis-backed asynq client.
type AsynqClient struct {
	client *asynq.Client
}

var _ Client = (*AsynqClient)(nil)

func NewAsynqClient(redisURL string) (*AsynqClient, error) {
	opt, err := redisOpt(redisURL)
	if err != nil {
		return nil, err
	}

	return &AsynqClient{client: asynq.NewClient(opt)}, nil
}

func (a *AsynqClient) Enqueue(ctx context.Context, task Task, opts ...EnqueueOption) (string, error) {
	if task.Type == "" {
		return "", errors.New("queue: task type is required")
	}

	info, err := a.client.EnqueueContext(ctx, asynq.NewTask(task.Type, task.Payload), asynqOptions(opts)...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			return "", ErrDuplicateTask
		}

		return "", fmt.Errorf("a.client.EnqueueContext -> %w", err)
	}

	return info.ID, nil
}

func (a *AsynqClient) Close() error {
	return a.client.Close()
}

// AsynqServer implements Server with an asynq worker pool.
type AsynqServer struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

var _ Server = (*AsynqServer)(nil)

func NewAsynqServer(redisURL string, concurrency int) (*AsynqServer, error) {
	opt, err := redisOpt(redisURL)
	if err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{DefaultQueue: 1},
		Logger:      zap.S(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			zap.L().Error("task failed", zap.String("type", task.Type()), zap.Error(err))
		}),
	})

	return &AsynqServer{server: srv, mux: asynq.NewServeMux()}, nil
}

func (s *AsynqServer) Register(taskType string, h Handler) {
	s.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, Task{Type: t.Type(), Payload: t.Payload()})
	})
}

// Run starts the workers and blocks until ctx is done, then drains them.
func (s *AsynqServer) Run(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return fmt.Errorf("s.server.Start -> %w", err)
	}

	<-ctx.Done()
	s.server.Shutdown()

	return nil
}

// AsynqScheduler implements Scheduler with asynq's periodic task scheduler.
type AsynqScheduler struct {
	scheduler *asynq.Scheduler
}

var _ Scheduler = (*AsynqScheduler)(nil)

func NewAsynqScheduler(redisURL string) (*AsynqScheduler, error) {
	opt, err := redisOpt(redisURL)
	if err != nil {
		return nil, err
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Logger: zap.S(),
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				zap.L().Error("failed to enqueue periodic task", zap.Error(err))
			}
		},
	})

	return &AsynqScheduler{scheduler: scheduler}, nil
}

func (s *AsynqScheduler) Every(spec string, task Task, opts ...EnqueueOption) error {
	if _, err := s.scheduler.Register(spec, asynq.NewTask(task.Type, task.Payload), asynqOptions(opts)...); err != nil {
		return fmt.Errorf("s.scheduler.Register -> %w", err)
	}

	return nil
}

// Run starts the scheduler and blocks until ctx is done.
func (s *AsynqScheduler) Run(ctx context.Context) error {
	if err := s.scheduler.Start(); err != nil {
		return fmt.Errorf("s.scheduler.Start -> %w", err)
	}

	<-ctx.Done()
	s.scheduler.Shutdown()

	return nil
}
