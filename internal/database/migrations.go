package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	// Single named records holding serialized aggregates (the collection is
	// stored under one key as a JSON array).
	`CREATE TABLE IF NOT EXISTS kv_records (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
