package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/paceseed/ent"

	// Postgres driver for the dashboard database.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO) for local demo files and tests.
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db          *sql.DB
	client      *ent.Client
	placeholder func(int) string
}

// Open connects to the database at dsn and runs auto-migration.
// Postgres DSNs (postgres:// or postgresql://) open the dashboard
// database through pgx; anything else is treated as a SQLite path.
func Open(dsn string) (*Store, error) {
	var (
		db  *sql.DB
		drv dialect.Driver
		err error
	)

	s := &Store{}

	if IsPostgresDSN(dsn) {
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		drv = entsql.OpenDB(dialect.Postgres, db)
		s.placeholder = func(n int) string { return fmt.Sprintf("$%d", n) }
	} else {
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
		drv = entsql.OpenDB(dialect.SQLite, db)
		s.placeholder = func(int) string { return "?" }
	}

	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s.db = db
	s.client = client

	if err := s.ensureMeta(context.Background()); err != nil {
		client.Close()
		return nil, err
	}

	return s, nil
}

// IsPostgresDSN reports whether dsn addresses a Postgres server rather
// than a SQLite file.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() (EventRepo, error) {
	seq, err := newSequenceCounter(s.db, s.placeholder)
	if err != nil {
		return nil, err
	}
	return &eventRepo{client: s.client, db: s.db, seq: seq, placeholder: s.placeholder}, nil
}

// RosterRepo returns a RosterRepo backed by this store.
func (s *Store) RosterRepo() RosterRepo {
	return &rosterRepo{client: s.client}
}

// applyPragmas configures SQLite for single-writer batch use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
