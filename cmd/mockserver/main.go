// The mockserver binary runs the development fixture backend. The mobile app
// points at it instead of the production API while developing locally.
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

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/splitmacha/splitmacha/internal/mockapi"
	"github.com/splitmacha/splitmacha/pkg/logging"
)

type config struct {
	Addr            string        `env:"MOCK_ADDR" envDefault:":3000"`
	ShutdownTimeout time.Duration `env:"MOCK_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Mock            mockapi.Config
}

func main() {
	logging.Setup()

	// The .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("Failed to parse configuration", "error", err)
		os.Exit(1)
	}

	store := mockapi.NewRecordStore(mockapi.DefaultSeed())
	api := mockapi.New(cfg.Mock, store, slog.Default())

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", api.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	// h2c allows HTTP/2 without TLS for local development clients.
	handler := h2c.NewHandler(corsMiddleware(mux), &http2.Server{})

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	go func() {
		slog.Info("Mock API server starting",
			"address", cfg.Addr,
			"latency", cfg.Mock.Latency,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser and emulator access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
