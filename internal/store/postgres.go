package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/park285/chess-notation-recorder/internal/ledger"
	"github.com/park285/chess-notation-recorder/internal/notation"
)

const createRecordedGames = `
	CREATE TABLE IF NOT EXISTS recorded_games (
		name         TEXT PRIMARY KEY,
		session_uuid TEXT NOT NULL,
		moves        TEXT NOT NULL,
		move_count   INTEGER NOT NULL,
		pgn          TEXT NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`

// PostgresStore keeps one row per saved name in recorded_games.
type PostgresStore struct {
	db        *sql.DB
	sessionID string
	event     string
}

// OpenPostgres connects to databaseURL and creates the table if needed.
// sessionID is stamped on every saved row; event becomes the PGN Event tag.
func OpenPostgres(ctx context.Context, databaseURL, sessionID, event string) (*PostgresStore, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for postgres store")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, createRecordedGames); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create recorded_games: %w", err)
	}
	return NewPostgresStore(db, sessionID, event), nil
}

func NewPostgresStore(db *sql.DB, sessionID, event string) *PostgresStore {
	return &PostgresStore{db: db, sessionID: sessionID, event: event}
}

func (s *PostgresStore) Save(ctx context.Context, name string, l *ledger.Ledger) error {
	n, err := checkName(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := l.Serialize(&buf); err != nil {
		return err
	}
	now := time.Now()
	pgn := notation.PGN(l.Moves(), notation.Tags{Event: s.event, Date: now})

	const query = `
		INSERT INTO recorded_games (name, session_uuid, moves, move_count, pgn, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			session_uuid = EXCLUDED.session_uuid,
			moves = EXCLUDED.moves,
			move_count = EXCLUDED.move_count,
			pgn = EXCLUDED.pgn,
			updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, n, s.sessionID, buf.String(), l.Len(), pgn, now); err != nil {
		return &ledger.IOError{Op: "upsert recorded game", Name: n, Err: err}
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, name string, l *ledger.Ledger) error {
	l.Reset()
	n, err := checkName(name)
	if err != nil {
		return err
	}
	const query = `SELECT moves FROM recorded_games WHERE name = $1`

	var moves string
	err = s.db.QueryRowContext(ctx, query, n).Scan(&moves)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.ErrNotFound
	}
	if err != nil {
		return &ledger.IOError{Op: "select recorded game", Name: n, Err: err}
	}
	return l.Deserialize(strings.NewReader(moves))
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
