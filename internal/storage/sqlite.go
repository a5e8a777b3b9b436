package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLite struct {
	db      *sql.DB
	getStmt *sql.Stmt
	putStmt *sql.Stmt
}

func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// busy_timeout waits on locks instead of failing, WAL lets readers run
	// during a write, synchronous(NORMAL) is the recommended pairing with WAL.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSQLiteSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	get, err := db.Prepare(`SELECT value FROM kv_records WHERE key = ?`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	put, err := db.Prepare(`
		INSERT INTO kv_records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if err != nil {
		_ = get.Close()
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, getStmt: get, putStmt: put}, nil
}

func initSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_records (
			key         TEXT    PRIMARY KEY,
			value       BLOB    NOT NULL,
			updated_at  INTEGER NOT NULL
		);
	`)
	return err
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	var value []byte
	err := s.getStmt.QueryRowContext(ctx, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read record %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}
	if err := ValidateKey(key); err != nil {
		return err
	}

	if value == nil {
		value = []byte{}
	}
	if _, err := s.putStmt.ExecContext(ctx, key, value, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("write record %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.getStmt != nil {
		_ = s.getStmt.Close()
	}
	if s.putStmt != nil {
		_ = s.putStmt.Close()
	}
	return s.db.Close()
}
