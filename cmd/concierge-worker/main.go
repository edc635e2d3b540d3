package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"concierge-workers/internal/chatapi"
	"concierge-workers/internal/common/camunda"
	"concierge-workers/internal/common/config"
	"concierge-workers/internal/common/database"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/common/observability"
	"concierge-workers/internal/intent"
	"concierge-workers/internal/venue"

	bdl "concierge-workers/internal/workers/concierge/build-deep-link"
	pui "concierge-workers/internal/workers/concierge/parse-user-intent"
	rcm "concierge-workers/internal/workers/concierge/relay-chat-message"
)

const serviceName = "concierge-worker"

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": serviceName,
		"version": cfg.App.Version,
	})

	zapLog.Info("Starting concierge worker...",
		zap.String("profile", cfg.Concierge.Profile),
		zap.String("venueSource", cfg.Concierge.Venues.Source),
	)

	obs := observability.New(serviceName, log)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Zeebe ---
	zeebe, err := camunda.Connect(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
	}, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- PostgreSQL, only for the postgres venue source ---
	var db *sql.DB
	if cfg.Concierge.Venues.Source == config.VenueSourcePostgres {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.EnsureVenueTable(ctx); err != nil {
			zapLog.Fatal("venue table setup failed", zap.Error(err))
		}
		db = pg.DB
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Redis, only when the venue cache is on ---
	var rdb *redis.Client
	if cfg.Concierge.Venues.CacheTTL > 0 {
		var rc *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rc, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rc.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rc.Close()
		rdb = rc.Client
		zapLog.Info("Redis connected successfully")
	}

	// --- Venues ---
	venues, err := venue.NewStoreFromConfig(cfg.Concierge.Venues, db, rdb, log)
	if err != nil {
		zapLog.Fatal("venue store setup failed", zap.Error(err))
	}
	catalog, err := venue.LoadCatalog(ctx, venues)
	if err != nil {
		zapLog.Fatal("venue catalog failed to load", zap.Error(err))
	}
	if _, ok := catalog.ByID(cfg.Concierge.DefaultVenueID); !ok {
		zapLog.Warn("default venue not in catalog, first venue will be used",
			zap.String("defaultVenueId", cfg.Concierge.DefaultVenueID))
	}
	zapLog.Info("Venue catalog loaded", zap.Int("venues", catalog.Len()))

	// --- Workers ---
	classifier := intent.NewClassifier(nil)
	workers := camunda.NewWorkers(zeebe.GetClient(), log)

	if wcfg := config.GetWorkerConfig(cfg, pui.TaskType); wcfg.Enabled {
		handler := pui.NewHandler(pui.LoadConfig(cfg), classifier, obs, log)
		workers.Start(pui.TaskType, wcfg, handler.Handle)
	}

	if wcfg := config.GetWorkerConfig(cfg, bdl.TaskType); wcfg.Enabled {
		handler := bdl.NewHandler(bdl.LoadConfig(cfg), classifier, venues, obs, log)
		workers.Start(bdl.TaskType, wcfg, handler.Handle)
	}

	var chat *chatapi.Client
	if wcfg, ok := cfg.Workers[rcm.TaskType]; ok && wcfg.Enabled {
		rcfg := rcm.LoadConfig(cfg)
		chat = chatapi.NewClient(rcfg.Chat, log)
		if !chat.HealthCheck(ctx) {
			zapLog.Warn("chat backend not healthy at startup", zap.String("baseUrl", rcfg.Chat.BaseURL))
		}
		handler := rcm.NewHandler(rcfg, chat, obs, log)
		workers.Start(rcm.TaskType, wcfg, handler.Handle)
	}

	zapLog.Info("Workers registered", zap.Strings("taskTypes", workers.Running()))

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy", nil)
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{}
		status := http.StatusOK
		if err := zeebe.HealthCheck(r.Context()); err != nil {
			checks["zeebe"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if rdb != nil {
			if err := rdb.Ping(r.Context()).Err(); err != nil {
				checks["redis"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}
		if chat != nil && !chat.HealthCheck(r.Context()) {
			checks["chat"] = "unreachable"
		}
		label := "ready"
		if status != http.StatusOK {
			label = "not ready"
		}
		writeStatus(w, status, label, checks)
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: cfg.Concierge.MetricsAddress, Handler: mux}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	workers.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Concierge worker stopped gracefully")
}

func writeStatus(w http.ResponseWriter, code int, status string, checks map[string]string) {
	body := map[string]interface{}{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	}
	if len(checks) > 0 {
		body["checks"] = checks
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
