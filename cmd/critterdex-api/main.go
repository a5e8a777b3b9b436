package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/config"
	"github.com/dimitrije/critterdex-api/internal/handlers"
	"github.com/dimitrije/critterdex-api/internal/identifyclient"
	"github.com/dimitrije/critterdex-api/internal/logging"
	"github.com/dimitrije/critterdex-api/internal/metrics"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/internal/sse"
	"github.com/dimitrije/critterdex-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFromJSON(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}
	logger.Info("catalog ready", "species", cat.Len())

	owner, err := storage.AcquireOwner(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to take ownership of the collection: %v", err)
	}
	defer owner.Release()

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer backend.Close()

	hub := sse.NewHub(logger)
	go hub.Run(ctx)

	notifiers := services.MultiNotifier{hub}
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m, err = metrics.New()
		if err != nil {
			log.Fatalf("Failed to register metrics: %v", err)
		}
		if err := m.TrackGauge("sse_clients", "Connected event stream clients", func() float64 {
			return float64(hub.ClientCount())
		}); err != nil {
			log.Fatalf("Failed to register metrics: %v", err)
		}
		notifiers = append(notifiers, m)
	}

	collection := services.NewCollectionStore(backend, cfg.Storage.CollectionKey, notifiers, logger)
	if _, err := collection.Load(ctx); err != nil {
		// the store is usable and empty; the next write replaces the bad record
		logger.Warn("collection unavailable at startup", "error", err)
	}

	identifier := newIdentifier(cfg, cat, logger)
	if m != nil {
		identifier = m.InstrumentIdentifier(identifier)
	}

	session := services.NewCaptureSession(identifier, collection, services.SessionOptions{
		Timeout:  cfg.Identify.Timeout,
		Notifier: notifiers,
		Logger:   logger,
	})

	routerCfg := handlers.RouterConfig{
		Production: cfg.IsProduction(),
		Logger:     logger,
		Identifier: identifier,
		Session:    session,
		Collection: collection,
		Catalog:    cat,
		Hub:        hub,
	}
	var handler http.Handler
	if m != nil {
		routerCfg.MetricsHandler = m.Handler(logger)
		handler = m.InstrumentHandler(handlers.NewRouter(routerCfg))
	} else {
		handler = handlers.NewRouter(routerCfg)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := session.Cancel(); err != nil && !errors.Is(err, services.ErrNoActiveSession) {
		logger.Warn("failed to cancel capture session", "error", err)
	}
}

// newIdentifier prefers a remote inference endpoint and falls back to the
// local catalog-backed service.
func newIdentifier(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) services.Identifier {
	if cfg.Identify.Endpoint != "" {
		logger.Info("using remote identifier", "endpoint", cfg.Identify.Endpoint)
		return identifyclient.New(cfg.Identify.Endpoint, nil, cfg.Identify.Timeout)
	}

	var picker services.Picker
	switch cfg.Identify.Strategy {
	case config.StrategyWeighted:
		picker = services.NewWeightedPicker(nil)
	default:
		picker = services.NewUniformPicker(nil)
	}
	return services.NewIdentificationService(cat, picker, logger)
}
