package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/vietanh2810/hunt-api/internal/api"
	"github.com/vietanh2810/hunt-api/internal/cache"
	"github.com/vietanh2810/hunt-api/internal/clock"
	"github.com/vietanh2810/hunt-api/internal/config"
	"github.com/vietanh2810/hunt-api/internal/db"
	"github.com/vietanh2810/hunt-api/internal/logger"
	"github.com/vietanh2810/hunt-api/internal/queue"
	"github.com/vietanh2810/hunt-api/internal/repository"
	"github.com/vietanh2810/hunt-api/internal/repository/dao"
	"github.com/vietanh2810/hunt-api/internal/service"
	"github.com/vietanh2810/hunt-api/internal/task"
)

const shutdownTimeout = 10 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without redis the summary is computed on every read and purges only
	// happen through the sweep of a worker running elsewhere.
	var (
		summaries service.SummaryCache
		purges    service.PurgeScheduler
	)
	if conf.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(ctx, conf.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to initialize cache -> %w", err)
		}
		defer redisCache.Close()
		summaries = cache.NewSummaryCache(redisCache, conf.Redis.SummaryTTL)

		client, err := queue.NewAsynqClient(conf.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to initialize queue client -> %w", err)
		}
		defer client.Close()
		purges = task.NewPurgeScheduler(client)
	}

	clk := clock.New()
	hunts := repository.NewHuntRepository(dao.NewHuntDAO(postgresDB))
	users := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	participationSvc := service.NewParticipationService(hunts, users, summaries, clk)
	huntSvc := service.NewHuntService(hunts, users, participationSvc, purges, summaries, clk)

	g, ctx := errgroup.WithContext(ctx)

	if conf.Redis.URL != "" && conf.Worker.Enabled {
		cleanupSvc := service.NewCleanupService(hunts, participationSvc, clk)
		if err := startWorker(ctx, g, conf, cleanupSvc); err != nil {
			return fmt.Errorf("failed to initialize worker -> %w", err)
		}
	}

	s := api.NewServer(conf, huntSvc, participationSvc)
	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		zap.L().Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// startWorker runs the cleanup task handlers and the periodic expiry sweep
// next to the API.
func startWorker(ctx context.Context, g *errgroup.Group, conf *config.AppConfig, cleaner task.Cleaner) error {
	srv, err := queue.NewAsynqServer(conf.Redis.URL, conf.Worker.Concurrency)
	if err != nil {
		return err
	}
	task.RegisterCleanupTasks(srv, cleaner)

	scheduler, err := queue.NewAsynqScheduler(conf.Redis.URL)
	if err != nil {
		return err
	}
	if err := task.RegisterSweep(scheduler, conf.Worker.SweepCron); err != nil {
		return err
	}

	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return scheduler.Run(ctx) })

	zap.L().Info("cleanup worker started",
		zap.Int("concurrency", conf.Worker.Concurrency),
		zap.String("sweep", conf.Worker.SweepCron))

	return nil
}
