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

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mmynk/billkeeper/internal/auth"
	"github.com/mmynk/billkeeper/internal/config"
	"github.com/mmynk/billkeeper/internal/middleware"
	"github.com/mmynk/billkeeper/internal/service"
	"github.com/mmynk/billkeeper/internal/storage/mongo"
	"github.com/mmynk/billkeeper/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize MongoDB storage
	store, err := mongo.New(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()
	slog.Info("Storage initialized", "database", cfg.DBName)

	jwtManager := auth.NewJWTManager(cfg.SecretKey, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())

	authSvc := service.NewAuthService(authenticator, jwtManager, store, slog.Default())
	billSvc := service.NewBillService(store, slog.Default())
	service.RegisterRoutes(e, authSvc, billSvc, jwtManager)

	go func() {
		addr := ":" + cfg.Port
		slog.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
