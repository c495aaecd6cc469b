package builder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/park285/chess-notation-recorder/internal/config"
	"github.com/park285/chess-notation-recorder/internal/console"
	"github.com/park285/chess-notation-recorder/internal/msgcat"
	"github.com/park285/chess-notation-recorder/internal/notation"
	"github.com/park285/chess-notation-recorder/internal/replay"
	"github.com/park285/chess-notation-recorder/internal/session"
	"github.com/park285/chess-notation-recorder/internal/store"
	"go.uber.org/zap"
)

// Deps is the wired recorder. Close releases the store.
type Deps struct {
	SessionID  string
	Store      store.Store
	Presenter  *console.Presenter
	Dispatcher *session.Dispatcher
}

func New(ctx context.Context, cfg *config.AppConfig, out io.Writer, logger *zap.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := uuid.NewString()

	validator, err := notation.ForMode(cfg.NotationMode)
	if err != nil {
		return nil, err
	}
	catalog, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	st, err := openStore(ctx, cfg, sessionID)
	if err != nil {
		return nil, err
	}

	presenter := console.NewPresenter(out, catalog)
	dispatcher, err := session.NewDispatcher(
		st,
		validator,
		replay.New(cfg.ReplayDelay),
		presenter,
		session.Config{SessionID: sessionID, EventName: cfg.EventName},
		logger,
	)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	logger.Info("recorder_ready",
		zap.String("session_id", sessionID),
		zap.String("store", cfg.StoreBackend),
		zap.String("notation_mode", cfg.NotationMode),
		zap.Duration("replay_delay", cfg.ReplayDelay),
	)
	return &Deps{SessionID: sessionID, Store: st, Presenter: presenter, Dispatcher: dispatcher}, nil
}

func (d *Deps) Close() error {
	if d == nil || d.Store == nil {
		return nil
	}
	return d.Store.Close()
}

func openStore(ctx context.Context, cfg *config.AppConfig, sessionID string) (store.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StoreBackend)) {
	case "", store.BackendFile:
		return store.NewFileStore(), nil
	case store.BackendMemory:
		return store.NewMemoryStore(), nil
	case store.BackendRedis:
		s, err := store.DialRedis(ctx, cfg.RedisURL, cfg.LedgerTTL())
		if err != nil {
			return nil, fmt.Errorf("init redis store: %w", err)
		}
		return s, nil
	case store.BackendPostgres:
		s, err := store.OpenPostgres(ctx, cfg.DatabaseURL, sessionID, cfg.EventName)
		if err != nil {
			return nil, fmt.Errorf("init postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
