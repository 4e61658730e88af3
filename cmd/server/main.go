package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/infrastructure/config"
	"ferry-schedule-service/internal/infrastructure/gtfsfeed"
	"ferry-schedule-service/internal/infrastructure/messaging"
	"ferry-schedule-service/internal/infrastructure/persistence"
	"ferry-schedule-service/internal/infrastructure/router"
	"ferry-schedule-service/internal/infrastructure/seedfile"
	"ferry-schedule-service/internal/interface/handler"
	"ferry-schedule-service/internal/usecase"
	"ferry-schedule-service/pkg/logger"
	"ferry-schedule-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Ferry Schedule Service", "version", cfg.AppVersion, "store", cfg.StoreDriver)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up route store
	store, err := persistence.OpenRouteStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open route store", "error", err)
	}

	// Seed an empty store
	seeder := usecase.NewRouteSeeder(store.Routes, seedSource(cfg, log), log)
	seedCtx, seedCancel := context.WithTimeout(ctx, 2*time.Minute)
	if n, err := seeder.SeedIfEmpty(seedCtx); err != nil {
		log.Error("Failed to seed routes", "error", err)
	} else if n > 0 {
		log.Info("Seeded routes", "count", n)
	}
	seedCancel()

	// Set up schedule service
	m := metrics.NewMetrics("ferry")
	schedules := usecase.NewScheduleService(store.Routes, cfg.Location, m, log)

	// Start status broadcaster in a goroutine
	var publisher *messaging.NATSStatusPublisher
	if cfg.NATSURL != "" {
		publisher, err = messaging.NewNATSStatusPublisher(cfg.NATSURL, cfg.StatusSubjectPrefix, log)
		if err != nil {
			log.Error("Status broadcasting disabled", "error", err)
		} else {
			broadcaster := usecase.NewStatusBroadcaster(schedules, publisher, m, log)
			go broadcaster.Run(ctx, cfg.StatusBroadcastInterval)
			log.Info("Status broadcaster started",
				"subjectPrefix", cfg.StatusSubjectPrefix,
				"interval", cfg.StatusBroadcastInterval.String())
		}
	}

	// Set up HTTP server
	h := handler.NewHandler(schedules, log)
	appRouter := router.NewHTTPRouter(h, staticDir(cfg.StaticDir, log), log, m)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.RequestTimeout(cfg.StoreTimeout, appRouter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the broadcaster

	if publisher != nil {
		publisher.Close()
	}

	if err := store.Close(shutdownCtx); err != nil {
		log.Error("Route store close error", "error", err)
	}

	log.Info("Ferry Schedule Service stopped")
}

// seedSource picks the routes used to seed an empty store: the seed file,
// then the GTFS feed, then the built-in routes.
func seedSource(cfg *config.Config, log logger.Logger) usecase.RouteSource {
	switch {
	case cfg.SeedFile != "":
		return func(context.Context) ([]*entity.Route, error) {
			log.Info("Loading seed routes from file", "path", cfg.SeedFile)
			return seedfile.Load(cfg.SeedFile)
		}
	case cfg.GTFSFeed != "":
		return func(ctx context.Context) ([]*entity.Route, error) {
			log.Info("Importing ferry routes from GTFS feed", "source", cfg.GTFSFeed)
			feed, err := gtfsfeed.Load(ctx, cfg.GTFSFeed)
			if err != nil {
				return nil, err
			}
			return usecase.FerryRoutesFromGTFS(feed), nil
		}
	default:
		return nil
	}
}

func staticDir(dir string, log logger.Logger) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn("Static directory not found, frontend disabled", "dir", dir)
		return ""
	}
	return dir
}
