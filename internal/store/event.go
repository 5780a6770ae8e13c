package store

// Global event sequencing.
//
// Each activity event type lives in its own ent-managed table, so
// per-table auto-increment IDs can't establish cross-type ordering. A
// shared counter assigns a single increasing sequence to every event
// regardless of type so the dashboard can interleave them (did the
// mastery check land before or after the point award?).
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

type sequenceCounter struct {
	mu          sync.Mutex
	db          *sql.DB
	placeholder func(int) string
}

// newSequenceCounter creates a counter and ensures the tracking table
// exists, seeding it with 1 if empty. The seed insert is written per
// dialect: SQLite wants INSERT OR IGNORE, Postgres ON CONFLICT.
func newSequenceCounter(db *sql.DB, placeholder func(int) string) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val BIGINT NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	seed := `INSERT INTO global_sequence (id, next_val) VALUES (1, 1) ON CONFLICT (id) DO NOTHING`
	if placeholder(1) == "?" { // SQLite
		seed = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	}
	if _, err := db.Exec(seed); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db, placeholder: placeholder}, nil
}

// Next atomically returns the next sequence number and increments the
// counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
