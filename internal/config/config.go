package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig is read once at startup from the environment.
type AppConfig struct {
	StoreBackend string
	RedisURL     string
	DatabaseURL  string
	LedgerTTLSec int

	NotationMode string
	ReplayDelay  time.Duration
	MessagesDir  string
	EventName    string

	Log LogConfig
}

// LogConfig controls the zap logger built by obslog.
type LogConfig struct {
	Level     string
	ToConsole bool
	ToFile    bool
	File      string
	Format    string
	Caller    bool
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		StoreBackend: "file",
		LedgerTTLSec: 30 * 24 * 3600,
		NotationMode: "length",
		ReplayDelay:  time.Second,
		EventName:    "Casual Game",
		Log: LogConfig{
			Level:     "info",
			ToConsole: false,
			ToFile:    true,
			File:      "logs/recorder.log",
			Format:    "legacy",
		},
	}

	if v := strings.TrimSpace(os.Getenv("STORE_BACKEND")); v != "" {
		cfg.StoreBackend = strings.ToLower(v)
	}
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if v := strings.TrimSpace(os.Getenv("LEDGER_TTL")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LedgerTTLSec = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("NOTATION_MODE")); v != "" {
		cfg.NotationMode = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("REPLAY_DELAY")); v != "" {
		d, err := parseDelay(v)
		if err != nil {
			return nil, fmt.Errorf("REPLAY_DELAY: %w", err)
		}
		cfg.ReplayDelay = d
	}
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("MESSAGES_DIR"))
	if v := strings.TrimSpace(os.Getenv("EVENT_NAME")); v != "" {
		cfg.EventName = v
	}

	// Logging
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	cfg.Log.ToConsole = envBool("LOG_TO_CONSOLE", cfg.Log.ToConsole)
	cfg.Log.ToFile = envBool("LOG_TO_FILE", cfg.Log.ToFile)
	cfg.Log.Caller = envBool("LOG_CALLER", cfg.Log.Caller)
	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT"))); v == "json" || v == "console" || v == "legacy" {
		cfg.Log.Format = v
	}

	switch cfg.StoreBackend {
	case "file", "memory":
	case "redis":
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL is required when STORE_BACKEND=redis")
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("STORE_BACKEND %q is not one of file, memory, redis, postgres", cfg.StoreBackend)
	}

	return cfg, nil
}

// LedgerTTL is the redis expiry for saved ledgers.
func (c *AppConfig) LedgerTTL() time.Duration {
	return time.Duration(c.LedgerTTLSec) * time.Second
}

// parseDelay accepts a Go duration ("500ms", "2s") or a bare number of milliseconds.
func parseDelay(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative delay %d", n)
		}
		return time.Duration(n) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative delay %s", v)
	}
	return d, nil
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
