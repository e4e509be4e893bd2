// Package sqlitekv stores key-value entries in a local SQLite database,
// the on-device persistence backend.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leporo/sqlf"

	"github.com/vitalog/vitalog/internal/adapter/storage"
	"github.com/vitalog/vitalog/internal/adapter/storage/sqlitekv/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type Store struct {
	db *sql.DB
}

var _ storage.KV = (*Store)(nil)

// Open opens the database at path (or ":memory:") and applies pending
// schema migrations.
func Open(path string) (*Store, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// New wraps an existing connection. The caller remains responsible for
// closing it.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// OpenConnection opens and configures a SQLite connection. Exported for
// tests that need a raw handle.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return db, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	q := sqlf.From("kv_entries").
		Select("value").To(&value).
		Where("key = ?", key)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, storage.InternalError(err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC()

	q := sqlf.InsertInto("kv_entries").
		Set("key", key).
		Set("value", value).
		Set("updated_at", now).
		Clause("ON CONFLICT (key) DO UPDATE SET value = ?, updated_at = ?", value, now)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	q := sqlf.DeleteFrom("kv_entries").Where("key = ?", key)

	res, err := q.ExecAndClose(ctx, s.db)
	if err != nil {
		return storage.InternalError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storage.InternalError(err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
