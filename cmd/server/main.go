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

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/r1zemon/patungan/internal/config"
	"github.com/r1zemon/patungan/internal/metrics"
	"github.com/r1zemon/patungan/internal/middleware"
	"github.com/r1zemon/patungan/internal/receipt"
	"github.com/r1zemon/patungan/internal/service"
	"github.com/r1zemon/patungan/internal/storage/sqlite"
	"github.com/r1zemon/patungan/pkg/api/apiconnect"
	"github.com/r1zemon/patungan/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New()
	opts := []service.Option{
		service.WithMetrics(m),
		service.WithDefaultCurrency(cfg.DefaultCurrency),
	}
	if cfg.ReceiptExtractorURL != "" {
		opts = append(opts, service.WithExtractor(
			receipt.NewHTTPExtractor(cfg.ReceiptExtractorURL, cfg.ReceiptExtractorTimeout),
		))
		slog.Info("Receipt extraction enabled", "url", cfg.ReceiptExtractorURL)
	}

	mux := http.NewServeMux()

	// Register Connect services
	interceptors := connect.WithInterceptors(
		middleware.RequestID(),
		middleware.LoggingInterceptor(),
		m.Interceptor(),
		middleware.ValidationInterceptor(),
	)
	billPath, billHandler := apiconnect.NewBillServiceHandler(service.NewBillService(store, opts...), interceptors)
	mux.Handle(billPath, billHandler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(middleware.CORS(cfg.CORSOrigin, mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
