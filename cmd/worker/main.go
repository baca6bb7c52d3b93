package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/gotube/internal/config"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/infrastructure/cache"
	"github.com/hszk-dev/gotube/internal/infrastructure/postgres"
	"github.com/hszk-dev/gotube/internal/infrastructure/queue"
	"github.com/hszk-dev/gotube/internal/infrastructure/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	videoRepo := postgres.NewVideoRepository(pgClient.Pool())
	viewCounter := cache.NewRedisViewCounter(redisClient)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	errCh := make(chan error, 1)

	// Media cleanup consumer: removes storage objects for deleted videos.
	go func() {
		logger.Info("starting worker, consuming media cleanup tasks")
		err := queueClient.ConsumeCleanupTasks(ctx, func(task repository.CleanupTask) error {
			wg.Add(1)
			defer wg.Done()

			logger.Info("processing cleanup task",
				slog.String("video_id", task.VideoID.String()),
				slog.Int("keys", len(task.Keys)),
			)

			for _, key := range task.Keys {
				if err := storageClient.Remove(ctx, key); err != nil {
					logger.Error("failed to remove object",
						slog.String("video_id", task.VideoID.String()),
						slog.String("key", key),
						slog.String("error", err.Error()),
					)
					return err
				}
			}
			return nil
		})
		if err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("consumer error: %w", err)
		}
	}()

	// View flusher: drains accumulated view counts into the store.
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(cfg.Worker.ViewFlushInterval)
		defer ticker.Stop()

		logger.Info("starting view flusher",
			slog.Duration("interval", cfg.Worker.ViewFlushInterval),
		)

		for {
			select {
			case <-ctx.Done():
				// Final drain so counts recorded since the last tick survive.
				flushViews(context.Background(), logger, viewCounter, videoRepo)
				return
			case <-ticker.C:
				flushViews(ctx, logger, viewCounter, videoRepo)
			}
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("all in-flight tasks completed")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, some tasks may not have completed")
	}

	logger.Info("worker stopped")
	return nil
}

// flushViews drains the view counter and applies each delta to the
// videos table. A failed apply logs and moves on; the count was already
// consumed, so the loss is bounded to one flush window.
func flushViews(ctx context.Context, logger *slog.Logger, views cache.ViewCounter, repo repository.VideoRepository) {
	counts, err := views.Drain(ctx)
	if err != nil {
		logger.Error("failed to drain view counts", slog.String("error", err.Error()))
		return
	}
	if len(counts) == 0 {
		return
	}

	for videoID, delta := range counts {
		if err := repo.AddViews(ctx, videoID, delta); err != nil {
			logger.Error("failed to apply view count",
				slog.String("video_id", videoID.String()),
				slog.Int64("delta", delta),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Info("flushed view counts", slog.Int("videos", len(counts)))
}
