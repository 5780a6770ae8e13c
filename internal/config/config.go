// Package config loads seeder configuration from the environment and
// enforces the safety checks a tool that deletes and rewrites dashboard
// data needs before touching a database.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"golang.org/x/mod/semver"
)

// Defaults for a sandbox run.
const (
	DefaultLookbackDays = 30
	DefaultStudents     = 12
	DefaultGroupID      = "sandbox-group-1"
)

// MinSchemaVersion is the oldest dashboard schema this build can seed.
const MinSchemaVersion = "v1.0.0"

// Config holds everything a seeding run needs.
type Config struct {
	// DatabaseDSN is a postgres:// URL for the dashboard database or a
	// SQLite file path for local demos.
	DatabaseDSN string

	// LookbackDays is the length of the simulated history window.
	LookbackDays int

	// Students is the synthetic roster size.
	Students int

	// GroupID is the sandbox group's public ID; all seeded rows hang off
	// it and the cleanup pass keys on it.
	GroupID string

	// PaceAPIBaseURL is the external pacing-configuration API. Empty
	// disables the pacing push.
	PaceAPIBaseURL string

	// PaceAPIToken authenticates against the pacing API.
	PaceAPIToken string

	// AllowRemote disables the non-local database guard.
	AllowRemote bool
}

// FromEnv builds a Config from PACESEED_* environment variables,
// falling back to defaults. Flags override individual fields afterwards.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseDSN:    os.Getenv("PACESEED_DB"),
		LookbackDays:   DefaultLookbackDays,
		Students:       DefaultStudents,
		GroupID:        DefaultGroupID,
		PaceAPIBaseURL: os.Getenv("PACESEED_PACE_API_URL"),
		PaceAPIToken:   os.Getenv("PACESEED_PACE_API_TOKEN"),
	}

	if v := os.Getenv("PACESEED_GROUP"); v != "" {
		cfg.GroupID = v
	}
	if v := os.Getenv("PACESEED_LOOKBACK_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid PACESEED_LOOKBACK_DAYS %q", v)
		}
		cfg.LookbackDays = n
	}
	if v := os.Getenv("PACESEED_STUDENTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid PACESEED_STUDENTS %q", v)
		}
		cfg.Students = n
	}

	return cfg, nil
}

// Validate checks the fields a run cannot proceed without.
func (c Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database DSN is required (PACESEED_DB or --db)")
	}
	if c.LookbackDays < 1 {
		return fmt.Errorf("lookback window must be at least 1 day")
	}
	if c.Students < 1 {
		return fmt.Errorf("at least 1 student is required")
	}
	return c.GuardLocal()
}

// GuardLocal refuses Postgres DSNs pointing at a non-loopback host
// unless AllowRemote is set. Seeding destroys and rewrites group data;
// pointing it at a shared environment by accident must be hard.
func (c Config) GuardLocal() error {
	if c.AllowRemote {
		return nil
	}
	host, err := DSNHost(c.DatabaseDSN)
	if err != nil {
		return err
	}
	if host == "" || isLoopback(host) {
		return nil
	}
	return fmt.Errorf("database host %q is not local; pass --allow-remote to override", host)
}

// DSNHost extracts the host from a postgres DSN; SQLite paths yield "".
func DSNHost(dsn string) (string, error) {
	if dsn == "" {
		return "", nil
	}
	u, err := url.Parse(dsn)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return "", nil // SQLite path
	}
	return u.Hostname(), nil
}

func isLoopback(host string) bool {
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

// CheckSchemaVersion verifies the database's recorded schema version is
// one this build understands: same major version, and not older than
// MinSchemaVersion.
func CheckSchemaVersion(current, supported string) error {
	if !semver.IsValid(current) {
		return fmt.Errorf("database reports invalid schema version %q", current)
	}
	if semver.Major(current) != semver.Major(supported) {
		return fmt.Errorf("schema version %s is incompatible with supported %s", current, supported)
	}
	if semver.Compare(current, MinSchemaVersion) < 0 {
		return fmt.Errorf("schema version %s is older than minimum %s", current, MinSchemaVersion)
	}
	return nil
}
