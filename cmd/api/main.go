package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexpay/nexpay-backend/internal/api"
	"github.com/nexpay/nexpay-backend/internal/auth"
	"github.com/nexpay/nexpay-backend/internal/config"
	"github.com/nexpay/nexpay-backend/internal/logger"
	"github.com/nexpay/nexpay-backend/internal/metrics"
	"github.com/nexpay/nexpay-backend/internal/middleware"
	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/repository/memory"
	"github.com/nexpay/nexpay-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store is transient: seeded at startup, gone at exit.
	var users []models.User
	var txs []models.Transaction
	if cfg.SeedDemo {
		hash, err := auth.HashPassword("password")
		if err != nil {
			log.Error("seed password hash", "err", err)
			os.Exit(1)
		}
		users, txs = memory.DemoSeed(hash)
		log.Info("demo data seeded", "users", len(users), "transactions", len(txs))
	}
	store := memory.New(users, txs)

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	userSvc := services.NewUserService(store.Directory(), tm)
	ledgerSvc := services.NewLedgerService(store.Ledger())
	statsSvc := services.NewStatsService(store.Directory(), store.Ledger())

	metrics.Init()
	am := middleware.NewAuthMiddleware(tm)
	r := api.NewRouter(cfg, userSvc, ledgerSvc, statsSvc, am)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
