package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dimitrije/critterdex-api/internal/middleware"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
)

type RouterConfig struct {
	Production bool
	Logger     *slog.Logger

	Identifier services.Identifier
	NewID      services.IDFunc
	Session    SessionServiceInterface
	Collection CollectionServiceInterface
	Catalog    CatalogInterface
	Hub        SSEHubInterface

	// MetricsHandler is mounted at /api/v1/metrics when set.
	MetricsHandler http.Handler
}

// NewRouter wires every route under /api/v1.
func NewRouter(cfg RouterConfig) http.Handler {
	identifyHandler := NewIdentifyHandler(cfg.Identifier, cfg.NewID, cfg.Logger)
	sessionHandler := NewSessionHandler(cfg.Session)
	collectionHandler := NewCollectionHandler(cfg.Collection)
	catalogHandler := NewCatalogHandler(cfg.Catalog)
	sseHandler := NewSSEHandler(cfg.Hub)
	healthHandler := NewHealthHandler(cfg.Collection)

	app := drift.New()

	if cfg.Production {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(driftmw.Recovery())
	app.Use(driftmw.CORSWithConfig(driftmw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		MaxAge:       86400,
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(cfg.Logger))
	app.Use(driftmw.BodyParser())

	api := app.Group("/api/v1")

	api.Post("/identify", identifyHandler.Identify)

	api.Get("/sessions/current", sessionHandler.Get)
	api.Post("/sessions", sessionHandler.Begin)
	api.Post("/sessions/current/image", sessionHandler.SubmitImage)
	api.Post("/sessions/current/complete", sessionHandler.Complete)
	api.Delete("/sessions/current", sessionHandler.Cancel)

	api.Get("/collection", collectionHandler.List)
	api.Get("/collection/stats", collectionHandler.Stats)
	api.Get("/collection/:id", collectionHandler.Get)
	api.Delete("/collection/:id", collectionHandler.Remove)
	api.Delete("/collection", collectionHandler.Clear)

	api.Get("/catalog", catalogHandler.List)
	api.Get("/catalog/:key", catalogHandler.Get)

	api.Get("/events", sseHandler.Connect)
	api.Get("/health", healthHandler.Health)

	if cfg.MetricsHandler != nil {
		api.Get("/metrics", Metrics(cfg.MetricsHandler))
	}

	return app
}
