package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KV is the key-value collaborator the repositories persist through. Each
// value is one whole serialized collection; there are no partial reads or
// writes within a key.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// SQLKV stores keys in the kv table of the encrypted database.
type SQLKV struct {
	db *DB
}

// NewKV creates a KV backed by the given database.
func NewKV(database *DB) *SQLKV {
	return &SQLKV{db: database}
}

// Get returns the stored value for key, with ok=false when the key has
// never been written.
func (s *SQLKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set replaces the stored value for key.
func (s *SQLKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
