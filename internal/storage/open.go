package storage

import (
	"context"
	"fmt"

	"github.com/dimitrije/critterdex-api/internal/config"
	"github.com/dimitrije/critterdex-api/internal/database"
)

// Open builds the backend selected by cfg.Driver. Postgres databases are
// migrated before use.
func Open(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Driver {
	case DriverPostgres:
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewPostgres(db), nil
	case DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case DriverFile:
		return OpenFile(cfg.CollectionDir)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
