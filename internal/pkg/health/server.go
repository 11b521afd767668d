// Package health runs the liveness/metrics HTTP server every service exposes.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Run(ctx context.Context, addr string, service string, readHeaderTimeout time.Duration) {
	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/ping", handlePing)
	mux.HandleFunc("/health", handleHealth)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	if readHeaderTimeout <= 0 {
		slog.Error("read_header_timeout must be specified in config")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		slog.Info("Health server listening", "service", service, "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Health server error", "service", service, "error", err)
		}
	}()
}

func AddrFor(port int) string {
	if port <= 0 {
		slog.Error("port must be greater than 0")
		os.Exit(1)
	}
	return fmt.Sprintf(":%d", port)
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong\n"))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
