package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"launchpad/internal/adapter/auth"
	"launchpad/internal/adapter/events"
	"launchpad/internal/adapter/http"
	"launchpad/internal/adapter/memory"
	"launchpad/internal/adapter/postgres"
	"launchpad/internal/adapter/usecase"
	"launchpad/internal/config"
	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
	"launchpad/internal/db"
)

// main is the entry point of the launchpad service. It loads configuration,
// selects the storage backend, optionally runs migrations and seeds demo
// balances, then serves the HTTP API until a termination signal arrives.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("launchpad stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var (
		repo   port.CampaignRepository
		ledger port.AssetLedger
		minter db.Minter
	)
	if cfg.Launchpad.InMemory() {
		mem := memory.NewAssetLedger()
		repo, ledger, minter = memory.NewCampaignRepository(), mem, mem
		logger.Warn("using in-memory storage; state is lost on exit")
	} else {
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		pgLedger := postgres.NewAssetLedger(pool)
		repo, ledger, minter = postgres.NewCampaignRepository(pool), pgLedger, pgLedger
	}

	if cfg.Psql.Seed {
		if err := db.Seed(ctx, minter); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo balances seeded")
	}

	svc := usecase.NewLaunchpadUseCase(repo, ledger,
		usecase.WithAuthorizer(auth.FromList(cfg.Launchpad.Operators)),
		usecase.WithPublisher(events.NewPublisher(logger)),
		usecase.WithLogger(logger),
		usecase.WithEscrowAccount(domain.Account(cfg.Launchpad.EscrowAccount)),
		usecase.WithLockTimeout(cfg.Launchpad.LockTimeout),
	)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("escrow", cfg.Launchpad.EscrowAccount))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
