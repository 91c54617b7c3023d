package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/quizworks/capitalquiz/internal/config"
	"github.com/quizworks/capitalquiz/internal/database"
	"github.com/quizworks/capitalquiz/internal/dataset"
	"github.com/quizworks/capitalquiz/internal/migrations"
	"github.com/quizworks/capitalquiz/internal/server"
	"github.com/quizworks/capitalquiz/internal/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Dataset ---
	store := dataset.NewStore(db)
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting dataset records: %w", err)
	}
	if count == 0 {
		counts, err := store.ImportFile(ctx, cfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("importing dataset from %s: %w", cfg.DatasetPath, err)
		}
		logger.Info("dataset imported", "path", cfg.DatasetPath, "locales", counts)
	}

	// --- Sessions (Redis when configured, in-memory otherwise) ---
	var sessions session.Store
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		logger.Info("connected to redis")
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	// --- App + HTTP server ---
	app := server.NewApp(logger, server.AppConfig{
		DB:                db,
		Redis:             rdb,
		Sessions:          sessions,
		DatasetPath:       cfg.DatasetPath,
		AdminPasswordHash: cfg.AdminPasswordHash,
	})
	if err := app.LoadSelectors(ctx); err != nil {
		return fmt.Errorf("loading selectors: %w", err)
	}

	srv := server.New(cfg.HTTPAddr, logger, app)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
