package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hvac-estimator/config"
	"hvac-estimator/estimator"
	httpLayer "hvac-estimator/http"
	"hvac-estimator/logger"
	"hvac-estimator/observability"
	"hvac-estimator/repository"
	"hvac-estimator/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hvac-estimator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	log := logger.NewZapAdapter(zl)
	defer func() { _ = log.Sync() }()

	if err := estimator.VerifyTables(); err != nil {
		log.WithError(err).Error("reference tables are incomplete", nil)
		return err
	}

	obs, err := observability.New(cfg.Observability.ServiceName)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	defer func() {
		if err := obs.Shutdown(context.Background()); err != nil {
			log.WithError(err).Warn("error shutting down meter provider", nil)
		}
	}()

	estimates, closeStore, err := openEstimateRepository(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter, stopLimiter, err := newLimiter(cfg, log)
	if err != nil {
		return err
	}
	defer stopLimiter()

	handlers := httpLayer.Handlers{
		Load:    httpLayer.NewLoadHandler(service.NewLoadService(estimates, obs, log), log),
		Cost:    httpLayer.NewCostHandler(service.NewCostService(estimates, obs, log), log),
		Savings: httpLayer.NewSavingsHandler(service.NewSavingsService(estimates, obs, log), log),
		History: httpLayer.NewHistoryHandler(service.NewHistoryService(estimates), log),
	}

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      httpLayer.NewRouter(handlers, limiter, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(zl),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", map[string]interface{}{
			"address":       cfg.Server.Address,
			"tablesVersion": estimator.TablesVersion,
			"store":         cfg.Store.Driver,
			"rateLimiter":   cfg.RateLimit.Backend,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("error starting server", nil)
		return err
	case <-quit:
		log.Info("shutting down server", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during server shutdown", nil)
	}

	log.Info("server exited", nil)
	return nil
}

func openEstimateRepository(cfg config.StoreConfig) (repository.EstimateRepository, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		repo, err := repository.NewSQLiteEstimateRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open estimate store: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		return repository.NewEstimateRepositoryMemory(cfg.MemoryCapacity), func() {}, nil
	}
}

func newLimiter(cfg *config.Config, log logger.Logger) (httpLayer.Limiter, func(), error) {
	switch cfg.RateLimit.Backend {
	case "redis":
		client := repository.NewRedisClient(cfg.Redis)
		counter := repository.NewRedisCounter(client)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ReadTimeout)
		defer cancel()
		if err := counter.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Info("rate limiting through redis", map[string]interface{}{"address": cfg.Redis.Address})

		limiter := httpLayer.NewWindowLimiter(counter, cfg.RateLimit.Capacity, cfg.RateLimit.Window)
		return limiter, func() { _ = client.Close() }, nil
	default:
		limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
		return limiter, limiter.Stop, nil
	}
}
