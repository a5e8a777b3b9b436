package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dimitrije/critterdex-api/internal/config"
	"github.com/gofrs/flock"
	"github.com/jackc/pgx/v5"
)

var ErrOwned = errors.New("collection is owned by another process")

// OwnerLock marks a single process as the writer of a collection. The server
// keeps its in-memory view in sync with the backend only while nobody else
// writes the same record, so it holds the lock for its lifetime.
type OwnerLock struct {
	release func() error
}

func (l *OwnerLock) Release() error {
	if l == nil || l.release == nil {
		return nil
	}
	release := l.release
	l.release = nil
	return release()
}

// AcquireOwner takes the owner lock for the collection described by cfg
// without blocking. ErrOwned means another process already holds it.
func AcquireOwner(ctx context.Context, cfg config.StorageConfig) (*OwnerLock, error) {
	switch cfg.Driver {
	case DriverFile:
		return acquireFileOwner(filepath.Join(cfg.CollectionDir, ".critterdex.owner"))
	case DriverSQLite:
		return acquireFileOwner(cfg.SQLitePath + ".owner")
	case DriverPostgres:
		conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect for owner lock: %w", err)
		}
		return acquireAdvisory(ctx, conn, "critterdex:"+cfg.CollectionKey)
	case DriverMemory:
		// nothing outside this process can see a memory backend
		return &OwnerLock{}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func acquireFileOwner(path string) (*OwnerLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock dir: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOwned, path)
	}
	return &OwnerLock{release: lock.Unlock}, nil
}

type advisoryConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// acquireAdvisory holds a session-level advisory lock, which postgres drops
// when conn closes.
func acquireAdvisory(ctx context.Context, conn advisoryConn, name string) (*OwnerLock, error) {
	var ok bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock(hashtext($1))`, name).Scan(&ok); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("acquire owner lock: %w", err)
	}
	if !ok {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("%w: %s", ErrOwned, name)
	}
	return &OwnerLock{release: func() error {
		return conn.Close(context.Background())
	}}, nil
}
