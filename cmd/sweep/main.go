// Command sweep runs a single slot-state sweep and exits, for hosts that
// schedule it externally instead of running the API's built-in ticker.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"courtbooking/internal/config"
	"courtbooking/internal/database"
	"courtbooking/internal/logger"
	"courtbooking/internal/modules/sweeper"
	"courtbooking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(config.IsProdLike(cfg.AppEnv), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("db connect failed", zap.Error(err))
	}

	sw := sweeper.New(repository.NewOccupancyRepository(db), sweeper.Config{
		Interval: cfg.SweepInterval,
		Location: cfg.Location,
	}, lg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SweepInterval)
	defer cancel()

	n, err := sw.Sweep(ctx)
	if err != nil {
		lg.Fatal("sweep failed", zap.Error(err))
	}
	lg.Info("sweep completed", zap.Int("released", n))
}
