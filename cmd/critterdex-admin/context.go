package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/config"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/internal/storage"
)

type commandContext struct {
	driverFlag *string
	keyFlag    *string

	cfg *config.Config
}

func newCommandContext(driverFlag, keyFlag *string) *commandContext {
	return &commandContext{driverFlag: driverFlag, keyFlag: keyFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.driverFlag != nil && *c.driverFlag != "" {
		cfg.Storage.Driver = *c.driverFlag
	}
	if c.keyFlag != nil && *c.keyFlag != "" {
		cfg.Storage.CollectionKey = *c.keyFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) catalog() (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFromJSON(cfg.CatalogPath)
}

// openCollection loads the persisted collection. Unlike the server, a record
// that cannot be read is an error here so maintenance never overwrites it.
// Writers must own the collection; a running server keeps its own view in
// memory and would overwrite a change made behind its back.
func (c *commandContext) openCollection(ctx context.Context, write bool) (*services.CollectionStore, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	var owner *storage.OwnerLock
	if write {
		owner, err = storage.AcquireOwner(ctx, cfg.Storage)
		if err != nil {
			if errors.Is(err, storage.ErrOwned) {
				return nil, nil, fmt.Errorf("collection is in use by a running server; stop it or use the HTTP API: %w", err)
			}
			return nil, nil, err
		}
	}

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		_ = owner.Release()
		return nil, nil, err
	}
	closeFn := func() {
		_ = backend.Close()
		_ = owner.Release()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := services.NewCollectionStore(backend, cfg.Storage.CollectionKey, nil, logger)
	if _, err := store.Load(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}
