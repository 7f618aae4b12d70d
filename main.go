package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/PunisherCE/Parqueaderos/internal/api"
	"github.com/PunisherCE/Parqueaderos/internal/api/handler"
	"github.com/PunisherCE/Parqueaderos/internal/api/middleware"
	"github.com/PunisherCE/Parqueaderos/internal/billing"
	"github.com/PunisherCE/Parqueaderos/internal/config"
	"github.com/PunisherCE/Parqueaderos/internal/repository"
	"github.com/PunisherCE/Parqueaderos/internal/repository/postgresql"
	"github.com/PunisherCE/Parqueaderos/internal/repository/redisstore"
	"github.com/PunisherCE/Parqueaderos/internal/service"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// 1. Load Configuration
	cfg := config.Load()
	logger.Info().Str("backend", cfg.StorageBackend).Msg("configuration loaded")

	// 2. Setup Storage Backend
	var ledgerRepo repository.LedgerRepository
	var priceRepo repository.PriceConfigRepository
	var userRepo repository.UserRepository

	switch cfg.StorageBackend {
	case "postgres":
		db, err := postgresql.NewDB(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not connect to database")
		}
		defer db.Close()
		store, err := postgresql.NewStore(db, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not prepare database schema")
		}
		ledgerRepo, priceRepo, userRepo = store, store, store
		logger.Info().Msg("connected to postgres")
	default:
		store, err := redisstore.New(cfg, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not connect to redis")
		}
		defer store.Close()
		ledgerRepo, priceRepo, userRepo = store, store, store
		logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	}

	// 3. Billing timezone for expiry display dates
	loc, err := time.LoadLocation(cfg.BillingTimezone)
	if err != nil {
		logger.Warn().Err(err).Str("tz", cfg.BillingTimezone).Msg("unknown timezone, using UTC")
		loc = time.UTC
	}
	calc := billing.NewCalculator(loc)

	// 4. Initialize Services
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	pricingService := service.NewPricingService(priceRepo, logger)
	pricingService.Load(startupCtx)

	ledgerService := service.NewLedgerService(ledgerRepo, pricingService, calc, logger)
	ledgerService.Load(startupCtx)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours, logger)
	if err := authService.EnsureAdmin(startupCtx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("could not bootstrap admin account")
	}

	// 5. WebSocket manager for live occupancy
	wsManager := handler.NewWebSocketManager()
	go wsManager.Start()
	ledgerService.SetBroadcaster(wsManager)

	// 6. Auth Middleware and Router
	authMiddleware := middleware.NewAuthMiddleware(authService)
	router := api.SetupRouter(authService, ledgerService, pricingService, authMiddleware, wsManager)

	// 7. Start HTTP Server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.ServerPort).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shut down")
	}

	logger.Info().Msg("server stopped")
}
