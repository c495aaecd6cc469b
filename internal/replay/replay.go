// Package replay walks a recorded game as a paced stream of display events.
package replay

import (
	"context"
	"time"

	"github.com/park285/chess-notation-recorder/internal/ledger"
)

const DefaultDelay = time.Second

// Kind tags a replay Event.
type Kind int

const (
	KindStart Kind = iota
	KindMove
	KindFinish
)

// Event is one step of a replay. Index and Move are set only for KindMove.
type Event struct {
	Kind  Kind
	Index int
	Move  ledger.Move
}

// Ticker produces the pause between events.
type Ticker interface {
	After(d time.Duration) <-chan time.Time
}

type realTicker struct{}

func (realTicker) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealTicker waits on the wall clock.
var RealTicker Ticker = realTicker{}

// Replayer emits Start, one event per move separated by Delay, then Finish.
type Replayer struct {
	Delay  time.Duration
	Ticker Ticker
}

func New(delay time.Duration) *Replayer {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Replayer{Delay: delay, Ticker: RealTicker}
}

// Run delivers events to emit in order. It stops at the first emit error or
// when ctx is done, returning that error or ctx.Err().
func (r *Replayer) Run(ctx context.Context, moves []ledger.Move, emit func(Event) error) error {
	ticker := r.Ticker
	if ticker == nil {
		ticker = RealTicker
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := emit(Event{Kind: KindStart}); err != nil {
		return err
	}
	for i, m := range moves {
		if err := emit(Event{Kind: KindMove, Index: i + 1, Move: m}); err != nil {
			return err
		}
		if r.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.After(r.Delay):
			}
		}
	}
	return emit(Event{Kind: KindFinish})
}
