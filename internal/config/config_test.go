package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STORE_BACKEND", "REDIS_URL", "DATABASE_URL", "LEDGER_TTL", "NOTATION_MODE",
		"REPLAY_DELAY", "MESSAGES_DIR", "EVENT_NAME", "LOG_LEVEL", "LOG_TO_CONSOLE",
		"LOG_TO_FILE", "LOG_CALLER", "LOG_FILE", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != "file" || cfg.NotationMode != "length" || cfg.ReplayDelay != time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Log.ToConsole || !cfg.Log.ToFile || cfg.Log.Format != "legacy" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.LedgerTTL() != 30*24*time.Hour {
		t.Fatalf("ttl = %v", cfg.LedgerTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("REPLAY_DELAY", "250")
	t.Setenv("NOTATION_MODE", "LEGAL")
	t.Setenv("LOG_TO_CONSOLE", "true")
	t.Setenv("LOG_FORMAT", "bogus")
	t.Setenv("LEDGER_TTL", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != "redis" || cfg.NotationMode != "legal" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ReplayDelay != 250*time.Millisecond {
		t.Fatalf("delay = %v", cfg.ReplayDelay)
	}
	if !cfg.Log.ToConsole || cfg.Log.Format != "legacy" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if cfg.LedgerTTLSec != 30*24*3600 {
		t.Fatalf("negative ttl applied: %d", cfg.LedgerTTLSec)
	}
}

func TestLoadDurationDelay(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPLAY_DELAY", "1.5s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReplayDelay != 1500*time.Millisecond {
		t.Fatalf("delay = %v", cfg.ReplayDelay)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := map[string]map[string]string{
		"redis without url":    {"STORE_BACKEND": "redis"},
		"postgres without url": {"STORE_BACKEND": "postgres"},
		"unknown backend":      {"STORE_BACKEND": "s3"},
		"bad delay":            {"REPLAY_DELAY": "soon"},
		"negative delay":       {"REPLAY_DELAY": "-2s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
