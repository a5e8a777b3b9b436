package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/storage"
)

const DefaultCollectionKey = "animal-pokedex-collection"

// CollectionStore owns the newest-first collection. Every mutation writes the
// full sequence to the backend before the in-memory state changes, so memory
// and durable state never diverge.
type CollectionStore struct {
	mu       sync.Mutex
	backend  storage.Backend
	key      string
	notifier Notifier
	logger   *slog.Logger

	animals []models.CapturedAnimal
	loaded  bool
}

func NewCollectionStore(backend storage.Backend, key string, notifier Notifier, logger *slog.Logger) *CollectionStore {
	if key == "" {
		key = DefaultCollectionKey
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionStore{
		backend:  backend,
		key:      key,
		notifier: notifier,
		logger:   logger.With("component", "collection"),
		animals:  []models.CapturedAnimal{},
	}
}

// Load reads the persisted collection. A missing record is an empty
// collection. An unreadable or corrupt record also leaves the store empty and
// usable; the returned error is a warning wrapping ErrStorage or
// ErrCorruptCollection. The returned slice is never nil.
func (s *CollectionStore) Load(ctx context.Context) ([]models.CapturedAnimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	animals, warning := s.read(ctx)
	if warning != nil {
		s.logger.Warn("failed to load collection, starting empty", "key", s.key, "error", warning)
	} else {
		s.logger.Info("collection loaded", "key", s.key, "count", len(animals))
	}

	s.animals = animals
	s.loaded = true
	s.notifier.CollectionChanged(models.CloneAll(s.animals))
	return models.CloneAll(s.animals), warning
}

func (s *CollectionStore) read(ctx context.Context) ([]models.CapturedAnimal, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.CapturedAnimal{}, nil
		}
		return []models.CapturedAnimal{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	var animals []models.CapturedAnimal
	if err := json.Unmarshal(raw, &animals); err != nil {
		return []models.CapturedAnimal{}, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}
	if animals == nil {
		animals = []models.CapturedAnimal{}
	}

	seen := make(map[string]struct{}, len(animals))
	for i, a := range animals {
		if err := a.Validate(); err != nil {
			return []models.CapturedAnimal{}, fmt.Errorf("%w: entry %d: %v", ErrCorruptCollection, i, err)
		}
		if _, dup := seen[a.ID]; dup {
			return []models.CapturedAnimal{}, fmt.Errorf("%w: duplicate id %s", ErrCorruptCollection, a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	return animals, nil
}

// Add prepends animal and persists.
func (s *CollectionStore) Add(ctx context.Context, animal models.CapturedAnimal) error {
	if err := animal.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAnimal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}
	for _, a := range s.animals {
		if a.ID == animal.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, animal.ID)
		}
	}

	next := make([]models.CapturedAnimal, 0, len(s.animals)+1)
	next = append(next, animal.Clone())
	next = append(next, s.animals...)

	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("animal added", "id", animal.ID, "key", animal.Key, "count", len(next))
	return nil
}

// Remove deletes the entry with id. An absent id is a no-op.
func (s *CollectionStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}

	next := make([]models.CapturedAnimal, 0, len(s.animals))
	for _, a := range s.animals {
		if a.ID != id {
			next = append(next, a)
		}
	}
	if len(next) == len(s.animals) {
		return nil
	}

	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("animal removed", "id", id, "count", len(next))
	return nil
}

func (s *CollectionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}
	if err := s.commit(ctx, []models.CapturedAnimal{}); err != nil {
		return err
	}
	s.logger.Info("collection cleared")
	return nil
}

// commit persists next and, only on success, makes it the current state.
// Callers hold s.mu.
func (s *CollectionStore) commit(ctx context.Context, next []models.CapturedAnimal) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: encode collection: %v", ErrStorage, err)
	}
	if err := s.backend.Put(ctx, s.key, raw); err != nil {
		s.logger.Error("failed to persist collection", "key", s.key, "error", err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.animals = next
	s.notifier.CollectionChanged(models.CloneAll(next))
	return nil
}

// Snapshot returns a deep copy of the current collection, newest first.
func (s *CollectionStore) Snapshot() []models.CapturedAnimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneAll(s.animals)
}

func (s *CollectionStore) Get(id string) (models.CapturedAnimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.animals {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return models.CapturedAnimal{}, fmt.Errorf("%w: %s", ErrAnimalNotFound, id)
}

func (s *CollectionStore) Stats() models.CollectionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Summarize(s.animals)
}

func (s *CollectionStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
