package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mobile-money-ledger/config"
	httpHandler "mobile-money-ledger/internal/adapter/http/handler"
	pgStorage "mobile-money-ledger/internal/adapter/storage/postgres"
	redisStorage "mobile-money-ledger/internal/adapter/storage/redis"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/internal/service"
	"mobile-money-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Mobile Money Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	historyRepo := pgStorage.NewHistoryRepo(pool)
	pinRepo := pgStorage.NewPinRepo(pool)
	agentRepo := pgStorage.NewAgentRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	txCache := redisStorage.NewTransactionCache(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	pinSvc := service.NewPinService(pinRepo, hashSvc, cfg.Pin, log)
	feePolicy := service.NewScheduleFeePolicy(cfg.Fees)
	refGen := service.NewRandomReferenceGenerator(txRepo, cfg.Ledger.ReferenceRetries)
	limitTracker := service.NewAgentLimitTracker(agentRepo, log)

	// Initialize business services
	ledgerSvc := service.NewLedgerService(
		walletRepo,
		txRepo,
		historyRepo,
		agentRepo,
		pinSvc,
		feePolicy,
		refGen,
		limitTracker,
		txCache,
		transactor,
		cfg.Ledger,
		log,
	)
	walletSvc := service.NewWalletService(walletRepo, log)
	reconSvc := service.NewReconciliationService(walletRepo, historyRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		WalletSvc:      walletSvc,
		PinSvc:         pinSvc,
		ReconSvc:       reconSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AdminKey:       cfg.Server.AdminKey,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
