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
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pollamundial/backend/config"
	"github.com/pollamundial/backend/db"
	"github.com/pollamundial/backend/handlers"
	"github.com/pollamundial/backend/live"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/routes"
	"github.com/pollamundial/backend/services"
	"github.com/pollamundial/backend/storage"
)

const (
	dbConnectTimeout = 10 * time.Second
	shutdownTimeout  = 15 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application terminated", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.Connect(cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize receipt storage: %w", err)
	}

	hub := live.NewHub(logger)
	go hub.Run()

	userRepo := repositories.NewPostgresUserRepository(database)
	matchRepo := repositories.NewPostgresMatchRepository(database)
	predictionRepo := repositories.NewPostgresPredictionRepository(database)
	scoreRepo := repositories.NewPostgresScoreRepository(database)
	paymentRepo := repositories.NewPostgresPaymentRepository(database)

	authService := services.NewAuthService(userRepo)
	matchService := services.NewMatchService(matchRepo, hub)
	predictionService := services.NewPredictionService(predictionRepo, matchRepo, userRepo, cfg.PredictionsCloseAt)
	rankingService := services.NewRankingService(userRepo, matchRepo, predictionRepo, cfg.Points)
	bracketService := services.NewBracketService(matchRepo, predictionRepo)
	paymentService := services.NewPaymentService(database, paymentRepo, userRepo, uploader)
	adminService := services.NewAdminService(database, userRepo, matchRepo, predictionRepo, scoreRepo, cfg.Points, hub, logger)

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go runRecalcScheduler(schedulerCtx, adminService, cfg.RecalcInterval, logger)

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	matchHandler := handlers.NewMatchHandler(matchService, adminService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	bracketHandler := handlers.NewBracketHandler(bracketService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(adminService)
	webSocketHandler := handlers.NewWebSocketHandler(hub)

	router := chi.NewRouter()
	routes.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		matchHandler,
		predictionHandler,
		rankingHandler,
		bracketHandler,
		paymentHandler,
		adminHandler,
		webSocketHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.Int("port", cfg.ServerPort))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		stopScheduler()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}

// runRecalcScheduler rescores the pool on boot and then on a fixed interval,
// so rankings stay fresh even when no admin triggers a manual recalculation.
func runRecalcScheduler(ctx context.Context, adminService services.AdminService, interval time.Duration, logger *slog.Logger) {
	if err := adminService.RecalculateAll(ctx); err != nil {
		logger.Error("initial recalculation failed", slog.Any("error", err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := adminService.RecalculateAll(ctx); err != nil {
				logger.Error("scheduled recalculation failed", slog.Any("error", err))
			}
		}
	}
}
