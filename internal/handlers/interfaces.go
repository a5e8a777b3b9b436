package handlers

import (
	"context"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/internal/sse"
)

// SessionServiceInterface defines the methods used by handlers from CaptureSession
type SessionServiceInterface interface {
	Begin(source services.ImageSource) (models.SessionStatus, error)
	Identify(ctx context.Context, payload services.ImagePayload) (models.SessionStatus, error)
	Complete(ctx context.Context) (services.Outcome, error)
	Cancel() error
	Status() models.SessionStatus
}

// CollectionServiceInterface defines the methods used by handlers from CollectionStore
type CollectionServiceInterface interface {
	Snapshot() []models.CapturedAnimal
	Get(id string) (models.CapturedAnimal, error)
	Stats() models.CollectionStats
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Loaded() bool
}

// CatalogInterface defines the methods used by handlers from Catalog
type CatalogInterface interface {
	ListAll() []models.AnimalTemplate
	Lookup(key string) (models.AnimalTemplate, error)
}

// SSEHubInterface defines the methods used by handlers from Hub
type SSEHubInterface interface {
	Register(client *sse.Client) bool
	Unregister(client *sse.Client)
}
