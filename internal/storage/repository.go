package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const mediaListKey = "mediaList"

// Repository persists app state in a single-table key-value layout. The media
// list lives as one JSON-serialized array of reference strings under a fixed
// key, replaced wholesale on every save.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *Repository) CheckWritable(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO kv (key, value, updated_at) VALUES ('__write_probe', '', ?)
ON CONFLICT(key) DO UPDATE SET updated_at=excluded.updated_at
`, now); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = '__write_probe'`); err != nil {
		return fmt.Errorf("delete write probe: %w", err)
	}
	return nil
}

// MediaList returns the persisted media references in posting order. An absent
// record yields an empty list; a malformed record yields an error and is left
// in place for the caller's fail-soft policy to deal with.
func (r *Repository) MediaList(ctx context.Context) ([]string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, mediaListKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query media list: %w", err)
	}

	var refs []string
	if err := json.Unmarshal([]byte(value), &refs); err != nil {
		return nil, fmt.Errorf("parse media list: %w", err)
	}
	return refs, nil
}

func (r *Repository) SaveMediaList(ctx context.Context, refs []string) error {
	if refs == nil {
		refs = []string{}
	}
	value, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("serialize media list: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.db.ExecContext(ctx, `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at
`, mediaListKey, string(value), now)
	if err != nil {
		return fmt.Errorf("save media list: %w", err)
	}
	return nil
}
