package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx-драйвер для database/sql (goose)
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avoronova/go-fintrack/internal/config"
	apihttp "github.com/avoronova/go-fintrack/internal/http"
	"github.com/avoronova/go-fintrack/internal/service"
	"github.com/avoronova/go-fintrack/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath string
		migrate    bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.BoolVar(&migrate, "migrate", false, "apply database migrations before start")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting fintrack", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if migrate {
		if err := runMigrations(rootCtx, cfg.DB); err != nil {
			log.Error("migrations_failed", slog.String("err", err.Error()))
			rootCancel()
			os.Exit(1)
		}
		log.Info("migrations_applied", slog.String("dir", cfg.DB.MigrationsDir))
	}

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	log.Info("postgres_connected")

	svc := service.New(store, cfg.Auth)
	log.Info("service_initialized")

	router := apihttp.NewRouter(svc, apihttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: "/api/v1",
	})

	apiServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Технический сервер живёт отдельно от публичного API:
	// liveness/readiness и /metrics не ходят через auth-конвейер.
	var ready atomic.Bool
	opsServer := &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           opsHandler(&ready),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("ops_listen_start", slog.String("addr", opsServer.Addr))
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	addr := cfg.HTTP.Addr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("http_listen_failed",
			slog.String("addr", addr),
			slog.String("err", err.Error()),
		)
		rootCancel()
		store.Close()
		os.Exit(1)
	}
	log.Info("http_listen_start", slog.String("addr", addr))

	ready.Store(true)

	serveErrCh := make(chan error, 1)
	go func() {
		if err := apiServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = apiServer.Close()
	} else {
		log.Info("http_stopped")
	}

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		_ = opsServer.Close()
	}

	shutdownCancel()
	rootCancel()
	store.Close()

	log.Info("service_stopped")
	os.Exit(0)
}

// opsHandler — liveness, readiness и метрики Prometheus.
func opsHandler(ready *atomic.Bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if !ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// runMigrations накатывает goose-миграции через database/sql.
func runMigrations(ctx context.Context, cfg config.DBConfig) error {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
