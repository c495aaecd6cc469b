// Package ledger holds the ordered record of moves for one recording session
// and its line-oriented text form.
package ledger

import "iter"

// Ledger is an ordered, append-only list of moves. It is owned by a single
// session and is not safe for concurrent mutation.
type Ledger struct {
	moves []Move
}

func New() *Ledger { return &Ledger{} }

// Append adds m after the last recorded move.
func (l *Ledger) Append(m Move) {
	l.moves = append(l.moves, m)
}

func (l *Ledger) Len() int { return len(l.moves) }

// All yields (1-based index, move) pairs in chronological order. The sequence
// can be ranged over repeatedly.
func (l *Ledger) All() iter.Seq2[int, Move] {
	return func(yield func(int, Move) bool) {
		for i, m := range l.moves {
			if !yield(i+1, m) {
				return
			}
		}
	}
}

// Moves returns a copy of the recorded moves.
func (l *Ledger) Moves() []Move {
	return append([]Move(nil), l.moves...)
}

// Last returns the most recent move, if any.
func (l *Ledger) Last() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	return l.moves[len(l.moves)-1], true
}

// Reset drops every recorded move.
func (l *Ledger) Reset() {
	l.moves = nil
}

// Clone returns an independent copy.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{moves: l.Moves()}
}
