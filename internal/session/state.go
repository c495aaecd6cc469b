// Package session drives one recording session: an explicit State value and
// the commands that move it forward.
package session

import "github.com/park285/chess-notation-recorder/internal/ledger"

// State is everything the menu loop carries between commands. Handle never
// mutates a State it was given; it returns a new one.
type State struct {
	Ledger *ledger.Ledger
	Turn   ledger.Player
}

// NewState is an empty game with White to move.
func NewState() State {
	return State{Ledger: ledger.New(), Turn: ledger.White}
}

// afterLoad derives the side to move from the last recorded move.
func afterLoad(l *ledger.Ledger) State {
	turn := ledger.White
	if last, ok := l.Last(); ok {
		turn = last.Player.Other()
	}
	return State{Ledger: l, Turn: turn}
}

// Command is one menu action.
type Command interface{ command() }

type (
	InputMove   struct{ Text string }
	ShowHistory struct{}
	Replay      struct{}
	Save        struct{ Name string }
	Load        struct{ Name string }
	Export      struct{ Name string }
	Exit        struct{}
)

func (InputMove) command()   {}
func (ShowHistory) command() {}
func (Replay) command()      {}
func (Save) command()        {}
func (Load) command()        {}
func (Export) command()      {}
func (Exit) command()        {}

// Outcome reports what a command did. Notice is the message key shown to the
// user, empty when the command printed its own output.
type Outcome struct {
	Notice string
	Exit   bool
}
