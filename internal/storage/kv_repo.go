package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the stored value for key, or nil when the key was never written.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)

	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return []byte(v), nil
}

// SetMany upserts all entries in one transaction.
func (r *KVRepo) SetMany(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().UTC()
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
			`, e.Key, string(e.Value), now)
			if err != nil {
				return fmt.Errorf("kv set %s: %w", e.Key, err)
			}
		}
		return nil
	})
}
