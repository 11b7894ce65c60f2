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

	"github.com/SscSPs/settlement_ledger/internal/adapters/ledger/memledger"
	"github.com/SscSPs/settlement_ledger/internal/adapters/ledger/tigerbeetle"
	"github.com/SscSPs/settlement_ledger/internal/core/ports/ledger"
	"github.com/SscSPs/settlement_ledger/internal/core/services"
	"github.com/SscSPs/settlement_ledger/internal/handlers"
	"github.com/SscSPs/settlement_ledger/internal/middleware"
	"github.com/SscSPs/settlement_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	container := services.NewServiceContainer(cfg, engineDialer(cfg), logger)
	defer container.Shutdown()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("ledger_mode", cfg.LedgerMode),
			slog.Bool("ledger_enabled", cfg.LedgerEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// engineDialer picks the engine behind the gateway. Mock mode needs none.
func engineDialer(cfg *config.Config) ledger.EngineDialer {
	switch cfg.LedgerMode {
	case config.LedgerModeMemory:
		return memledger.New().Dialer()
	case config.LedgerModeTigerBeetle:
		return tigerbeetle.Dialer{}
	}
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
