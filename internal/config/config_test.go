package config

import "testing"

func TestGuardLocal(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		remote  bool
		wantErr bool
	}{
		{"sqlite path", "sandbox.db", false, false},
		{"sqlite memory", "file::memory:?cache=shared", false, false},
		{"localhost postgres", "postgres://dev@localhost:5432/dash", false, false},
		{"loopback postgres", "postgresql://dev@127.0.0.1/dash", false, false},
		{"remote postgres blocked", "postgres://dev@db.prod.internal:5432/dash", false, true},
		{"remote postgres allowed", "postgres://dev@db.prod.internal:5432/dash", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{DatabaseDSN: tt.dsn, AllowRemote: tt.remote}
			err := cfg.GuardLocal()
			if (err != nil) != tt.wantErr {
				t.Errorf("GuardLocal() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequiresDSN(t *testing.T) {
	cfg := Config{LookbackDays: 10, Students: 5}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DSN")
	}
}

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		current string
		wantErr bool
	}{
		{"v1.2.0", false},
		{"v1.0.0", false},
		{"v1.9.3", false},
		{"v2.0.0", true},  // major mismatch
		{"v0.9.0", true},  // below minimum (and major mismatch)
		{"1.2.0", true},   // missing v prefix
		{"garbage", true},
	}
	for _, tt := range tests {
		err := CheckSchemaVersion(tt.current, "v1.2.0")
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckSchemaVersion(%q) err = %v, wantErr %v", tt.current, err, tt.wantErr)
		}
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PACESEED_DB", "sandbox.db")
	t.Setenv("PACESEED_LOOKBACK_DAYS", "")
	t.Setenv("PACESEED_STUDENTS", "")
	t.Setenv("PACESEED_GROUP", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.LookbackDays != DefaultLookbackDays || cfg.Students != DefaultStudents {
		t.Errorf("defaults = %d days / %d students", cfg.LookbackDays, cfg.Students)
	}
	if cfg.GroupID != DefaultGroupID {
		t.Errorf("group = %q, want %q", cfg.GroupID, DefaultGroupID)
	}
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv("PACESEED_LOOKBACK_DAYS", "zero")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-numeric lookback")
	}
}
