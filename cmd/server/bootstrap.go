package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-trainer/internal/clients/osrsbox"
	"github.com/KirkDiggler/rpg-trainer/internal/config"
	"github.com/KirkDiggler/rpg-trainer/internal/engine/combat"
	"github.com/KirkDiggler/rpg-trainer/internal/engine/xptable"
	"github.com/KirkDiggler/rpg-trainer/internal/gear"
	"github.com/KirkDiggler/rpg-trainer/internal/logger"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
	"github.com/KirkDiggler/rpg-trainer/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-trainer/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-trainer/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-trainer/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-trainer/internal/services/catalog"
)

// setup loads the config file and initializes logging. The returned closer
// flushes the log file.
func setup() (*config.Config, io.Closer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	_, closer, err := logger.Initialize(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, closer, nil
}

// openCatalog wires the catalog service over redis when endpoints are
// configured and over an in-memory cache otherwise.
func openCatalog(ctx context.Context, cfg *config.Config) (catalog.Service, io.Closer, error) {
	client, err := osrsbox.New(&osrsbox.Config{
		BaseURL:     cfg.Catalog.BaseURL,
		Dir:         cfg.Catalog.Dir,
		HTTPTimeout: cfg.Catalog.HTTPTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	var (
		repo   catalogrepo.Repository
		closer io.Closer = nopCloser{}
	)
	if len(cfg.Redis.Endpoints) > 0 {
		redisClient, err := redis.Connect(ctx, cfg.Redis.Endpoints, &redis.Options{
			PoolSize: cfg.Redis.PoolSize,
			UseTLS:   cfg.Redis.UseTLS,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		repo, err = catalogrepo.NewRedisRepository(&catalogrepo.Config{
			Client: redisClient,
			Clock:  clock.New(),
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create catalog repository: %w", err)
		}
		closer = redisClient
		slog.Info("Caching catalog in redis", "endpoints", cfg.Redis.Endpoints)
	} else {
		repo = catalogrepo.NewInMemory(clock.New())
		slog.Info("Caching catalog in memory")
	}

	svc, err := catalog.New(&catalog.Config{
		Client:     client,
		Repository: repo,
		CacheTTL:   cfg.Catalog.CacheTTL,
	})
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	return svc, closer, nil
}

// buildTrainer loads the catalog and assembles the planner over it
func buildTrainer(ctx context.Context, cfg *config.Config, loader catalog.Service, refresh bool) (training.Service, error) {
	loaded, err := loader.Load(ctx, &catalog.LoadInput{Refresh: refresh})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, report := range loaded.Slots {
		slog.Debug("Loaded slot",
			"slot", report.Slot,
			"source", report.Source,
			"cached", report.Cached,
			"items", report.Items)
	}

	table, err := xptable.New(cfg.Training.MaxLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build experience table: %w", err)
	}

	cache, err := gear.New(&gear.Config{
		Items:   loaded.Items,
		XPTable: table,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build gear cache: %w", err)
	}

	trainer, err := training.NewOrchestrator(&training.Config{
		Gear:    cache,
		XPTable: table,
		Opponent: combat.Opponent{
			DefenceLevel: cfg.Training.OpponentDefenceLevel,
			DefenceBonus: cfg.Training.OpponentDefenceBonus,
		},
		MaxExpansions: cfg.Training.MaxExpansions,
		IDGenerator:   idgen.NewUUID("plan"),
		Clock:         clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create training orchestrator: %w", err)
	}

	return trainer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
