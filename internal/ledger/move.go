package ledger

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Player identifies the side that made a move.
type Player string

const (
	White Player = "White"
	Black Player = "Black"
)

// MaxNotationLen is the longest notation accepted, counted in characters.
const MaxNotationLen = 6

// ParsePlayer maps the textual token used in ledger files to a Player.
func ParsePlayer(s string) (Player, error) {
	switch Player(s) {
	case White:
		return White, nil
	case Black:
		return Black, nil
	default:
		return "", fmt.Errorf("unknown player %q", s)
	}
}

// Other returns the opposing side.
func (p Player) Other() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) Valid() bool { return p == White || p == Black }

func (p Player) String() string { return string(p) }

// Move is one recorded annotation. Values are never mutated after construction.
type Move struct {
	Notation string
	Player   Player
}

// NewMove builds a Move after checking the length invariant on notation.
func NewMove(player Player, notation string) (Move, error) {
	if !player.Valid() {
		return Move{}, fmt.Errorf("unknown player %q", string(player))
	}
	if err := CheckNotation(notation); err != nil {
		return Move{}, err
	}
	return Move{Notation: notation, Player: player}, nil
}

// CheckNotation reports ErrInvalidNotation when s is not UTF-8, is empty or
// longer than MaxNotationLen characters, or spans more than one line.
func CheckNotation(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidNotation, s)
	}
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxNotationLen {
		return fmt.Errorf("%w: %q must be 1-%d characters", ErrInvalidNotation, s, MaxNotationLen)
	}
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidNotation, s)
	}
	return nil
}

func (m Move) String() string {
	return m.Player.String() + separator + m.Notation
}
