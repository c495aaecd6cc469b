// Package store persists ledgers to named destinations: plain files, an
// in-process map, Redis keys or Postgres rows.
package store

import (
	"context"
	"strings"

	"github.com/park285/chess-notation-recorder/internal/ledger"
)

// Store saves and loads ledgers by name. Every backend uses the same
// line-oriented text produced by ledger.Serialize.
type Store interface {
	// Save overwrites whatever was stored under name.
	Save(ctx context.Context, name string, l *ledger.Ledger) error
	// Load clears l and fills it from name. ledger.ErrNotFound is returned
	// when nothing is stored there; l stays empty in that case.
	Load(ctx context.Context, name string, l *ledger.Ledger) error
	Close() error
}

// Backend names accepted by New.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ErrEmptyName is returned when a destination name is blank.
var ErrEmptyName = staticErr("destination name is empty")

type staticErr string

func (e staticErr) Error() string { return string(e) }

func checkName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ErrEmptyName
	}
	return n, nil
}
