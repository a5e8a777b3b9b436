package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// File stores each record as <dir>/<key>.json. Writes go to a temp file that
// is renamed over the target, so readers see the old or the new record and
// never a partial one. A lock file makes each Get and Put atomic across
// processes; it does not make a second writer safe, see AcquireOwner.
type File struct {
	mu   sync.Mutex
	dir  string
	lock *flock.Flock
}

func OpenFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create collection dir: %w", err)
	}
	return &File{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, ".critterdex.lock")),
	}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", f.dir, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read record %q: %w", key, err)
	}
	return raw, nil
}

func (f *File) Put(ctx context.Context, key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", f.dir, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write record %q: %w", key, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write record %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync record %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close record %q: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		cleanup()
		return fmt.Errorf("replace record %q: %w", key, err)
	}
	return nil
}

func (f *File) Close() error {
	return f.lock.Close()
}
