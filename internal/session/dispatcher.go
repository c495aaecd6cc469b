package session

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/park285/chess-notation-recorder/internal/ledger"
	"github.com/park285/chess-notation-recorder/internal/notation"
	"github.com/park285/chess-notation-recorder/internal/replay"
	"github.com/park285/chess-notation-recorder/internal/store"
	"go.uber.org/zap"
)

// View renders dispatcher output.
type View interface {
	Notice(key string, data map[string]any)
	History(moves iter.Seq2[int, ledger.Move])
	ReplayEvent(e replay.Event) error
}

type Config struct {
	SessionID string
	EventName string
}

// Dispatcher applies commands to a State. Errors from saving and loading are
// turned into notices; Handle itself never fails.
type Dispatcher struct {
	store     store.Store
	validator notation.Validator
	replayer  *replay.Replayer
	view      View
	cfg       Config
	logger    *zap.Logger
	now       func() time.Time
}

func NewDispatcher(st store.Store, v notation.Validator, r *replay.Replayer, view View, cfg Config, logger *zap.Logger) (*Dispatcher, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if view == nil {
		return nil, fmt.Errorf("view is required")
	}
	if v == nil {
		v = notation.LengthValidator{}
	}
	if r == nil {
		r = replay.New(replay.DefaultDelay)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SessionID != "" {
		logger = logger.With(zap.String("session_id", cfg.SessionID))
	}
	return &Dispatcher{
		store:     st,
		validator: v,
		replayer:  r,
		view:      view,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (d *Dispatcher) Handle(ctx context.Context, st State, cmd Command) (State, Outcome) {
	if st.Ledger == nil {
		st = NewState()
	}
	switch c := cmd.(type) {
	case InputMove:
		return d.inputMove(st, c.Text)
	case ShowHistory:
		if st.Ledger.Len() == 0 {
			return st, d.notice("history.empty", nil)
		}
		d.view.History(st.Ledger.All())
		return st, Outcome{}
	case Replay:
		return st, d.replay(ctx, st)
	case Save:
		return st, d.save(ctx, st, c.Name)
	case Load:
		return d.load(ctx, c.Name)
	case Export:
		return st, d.export(st, c.Name)
	case Exit:
		out := d.notice("exit", nil)
		out.Exit = true
		return st, out
	default:
		return st, d.notice("option.invalid", nil)
	}
}

func (d *Dispatcher) inputMove(st State, text string) (State, Outcome) {
	text = strings.TrimSpace(text)
	if err := d.validator.Validate(st.Ledger.Moves(), st.Turn, text); err != nil {
		d.logger.Debug("move_rejected", zap.String("player", st.Turn.String()), zap.String("notation", text), zap.Error(err))
		if errors.Is(err, ledger.ErrInvalidNotation) {
			return st, d.notice("move.invalid", nil)
		}
		return st, d.notice("move.rejected", map[string]any{"Reason": err.Error()})
	}
	m, err := ledger.NewMove(st.Turn, text)
	if err != nil {
		return st, d.notice("move.invalid", nil)
	}
	next := st.Ledger.Clone()
	next.Append(m)
	d.logger.Info("move_recorded",
		zap.Int("index", next.Len()),
		zap.String("player", st.Turn.String()),
		zap.String("notation", text),
	)
	return State{Ledger: next, Turn: st.Turn.Other()}, Outcome{}
}

func (d *Dispatcher) replay(ctx context.Context, st State) Outcome {
	err := d.replayer.Run(ctx, st.Ledger.Moves(), d.view.ReplayEvent)
	if err == nil {
		return Outcome{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		d.logger.Info("replay_interrupted", zap.Error(err))
		return d.notice("replay.interrupted", nil)
	}
	d.logger.Warn("replay_failed", zap.Error(err))
	return d.notice("replay.interrupted", nil)
}

func (d *Dispatcher) save(ctx context.Context, st State, name string) Outcome {
	name = strings.TrimSpace(name)
	if name == "" {
		return d.notice("option.blank_name", nil)
	}
	if err := d.store.Save(ctx, name, st.Ledger); err != nil {
		d.logger.Warn("ledger_save_failed", zap.String("name", name), zap.Error(err))
		return d.notice("save.failed", map[string]any{"Name": name, "Reason": reason(err)})
	}
	d.logger.Info("ledger_saved", zap.String("name", name), zap.Int("moves", st.Ledger.Len()))
	return d.notice("save.ok", map[string]any{"Name": name})
}

// load always starts from an empty ledger; on failure the session continues
// with that empty ledger and White to move.
func (d *Dispatcher) load(ctx context.Context, name string) (State, Outcome) {
	fresh := ledger.New()
	name = strings.TrimSpace(name)
	if name == "" {
		return afterLoad(fresh), d.notice("option.blank_name", nil)
	}
	err := d.store.Load(ctx, name, fresh)
	switch {
	case err == nil:
		d.logger.Info("ledger_loaded", zap.String("name", name), zap.Int("moves", fresh.Len()))
		return afterLoad(fresh), d.notice("load.ok", map[string]any{"Name": name})
	case errors.Is(err, ledger.ErrNotFound):
		d.logger.Info("ledger_not_found", zap.String("name", name))
		return afterLoad(ledger.New()), d.notice("load.not_found", nil)
	case errors.Is(err, ledger.ErrFormat):
		d.logger.Warn("ledger_malformed", zap.String("name", name), zap.Error(err))
		return afterLoad(ledger.New()), d.notice("load.malformed", map[string]any{"Name": name, "Reason": reason(err)})
	default:
		d.logger.Warn("ledger_load_failed", zap.String("name", name), zap.Error(err))
		return afterLoad(ledger.New()), d.notice("load.failed", map[string]any{"Name": name, "Reason": reason(err)})
	}
}

func (d *Dispatcher) export(st State, name string) Outcome {
	name = strings.TrimSpace(name)
	if name == "" {
		return d.notice("option.blank_name", nil)
	}
	pgn := notation.PGN(st.Ledger.Moves(), notation.Tags{Event: d.cfg.EventName, Date: d.now()})
	if err := os.WriteFile(name, []byte(pgn), 0o644); err != nil {
		d.logger.Warn("pgn_export_failed", zap.String("name", name), zap.Error(err))
		return d.notice("export.failed", map[string]any{"Name": name, "Reason": reason(err)})
	}
	d.logger.Info("pgn_exported", zap.String("name", name), zap.Int("moves", st.Ledger.Len()))
	return d.notice("export.ok", map[string]any{"Name": name})
}

func (d *Dispatcher) notice(key string, data map[string]any) Outcome {
	d.view.Notice(key, data)
	return Outcome{Notice: key}
}

// reason strips wrapping noise so the user sees the underlying cause.
func reason(err error) string {
	var ioErr *ledger.IOError
	if errors.As(err, &ioErr) && ioErr.Err != nil {
		return ioErr.Err.Error()
	}
	return err.Error()
}
