package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tovald/bossraid/internal/arena"
	"github.com/tovald/bossraid/internal/bootstrap"
	"github.com/tovald/bossraid/internal/config"
	"github.com/tovald/bossraid/internal/content"
	"github.com/tovald/bossraid/internal/database"
	"github.com/tovald/bossraid/internal/database/postgres"
	"github.com/tovald/bossraid/internal/handler"
	"github.com/tovald/bossraid/internal/leaderboard"
	"github.com/tovald/bossraid/internal/reward"
	"github.com/tovald/bossraid/internal/scheduler"
	"github.com/tovald/bossraid/internal/server"
	"github.com/tovald/bossraid/internal/sse"
	"github.com/tovald/bossraid/internal/worker"
)

// Persistence pool sizing. The pool only carries reward writes and
// aggregate flushes, both small row-at-a-time statements.
const (
	persistWorkers   = 4
	persistQueueSize = 256

	persistMaxRetries = 3
	persistRetryDelay = 500 * time.Millisecond
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup logging (stdout + rotated session file)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Connect to database and run migrations
	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString())
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	// Repositories
	aggregatesRepo := postgres.NewAggregatesRepository(dbPool)
	rewardRepo := postgres.NewRewardRepository(dbPool)

	// Event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	// SSE hub and event handlers
	sseHub := sse.NewHub()
	sseHub.Start()
	if err := bootstrap.RegisterEventHandlers(eventBus, sseHub); err != nil {
		return err
	}

	// Boss roster content
	rosterLoader := content.NewRosterLoader()
	rosterCfg, err := rosterLoader.Load(cfg.BossRosterPath)
	if err != nil {
		return err
	}
	if err := rosterLoader.Validate(rosterCfg); err != nil {
		return err
	}
	slog.Info("Boss roster loaded", "bosses", len(rosterCfg.Bosses), "path", cfg.BossRosterPath)

	// Persistence worker pool
	pool := worker.NewPool(persistWorkers, persistQueueSize)
	pool.Start()

	flusher := worker.NewAggregateFlusher(aggregatesRepo, pool, persistMaxRetries, persistRetryDelay)
	rewardService := reward.NewService(rewardRepo, pool, resilientPublisher, persistMaxRetries, persistRetryDelay)

	// Arena combat loop
	arenaCfg := arena.Config{
		RespawnDelay:       cfg.RespawnDelay,
		MaxTapBatch:        cfg.MaxTapBatch,
		TapEnergyCost:      cfg.TapEnergyCost,
		EnergyMax:          cfg.EnergyMax,
		EnergyRegenPerTick: cfg.EnergyRegenPerTick,
	}
	raidArena := arena.New(arenaCfg, rosterCfg.Bosses, resilientPublisher, rewardService, flusher)

	arenaCtx, arenaCancel := context.WithCancel(ctx)
	go raidArena.Run(arenaCtx)

	leaderboardService := leaderboard.NewService(raidArena, aggregatesRepo)

	// Periodic jobs: boss state broadcast and energy regen
	sched := scheduler.New(pool)
	sched.Schedule(cfg.BroadcastInterval, worker.NewBroadcastJob(raidArena))
	sched.Schedule(cfg.EnergyRegenInterval, worker.NewRegenJob(raidArena))

	// HTTP server
	handler.InitValidator()
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, raidArena, rewardService, leaderboardService, sseHub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		arenaCancel()
		return err
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		ArenaCancel:        arenaCancel,
		WorkerPool:         pool,
		SSEHub:             sseHub,
		ResilientPublisher: resilientPublisher,
	})

	return nil
}
