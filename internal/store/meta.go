package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion is the dashboard schema revision this build writes.
// Bumped whenever an event or roster table changes shape.
const SchemaVersion = "v1.2.0"

// ensureMeta creates the schema_meta table and records the schema
// version on first open. Raw SQL outside ent: a one-row key/value table
// doesn't warrant a generated entity.
func (s *Store) ensureMeta(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create schema_meta: %w", err)
	}

	existing, err := s.MetaValue(ctx, "version")
	if err != nil {
		return err
	}
	if existing != "" {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO schema_meta (key, value) VALUES (%s, %s)`,
			s.placeholder(1), s.placeholder(2)),
		"version", SchemaVersion)
	if err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// MetaValue returns the schema_meta value for key, or "" when absent.
func (s *Store) MetaValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT value FROM schema_meta WHERE key = %s`, s.placeholder(1)),
		key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read schema_meta %q: %w", key, err)
	}
	return value, nil
}
