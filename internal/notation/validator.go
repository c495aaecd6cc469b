// Package notation decides whether a typed move annotation may be recorded.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chess-notation-recorder/internal/ledger"
)

var (
	ErrNotSAN               = errors.New("not standard algebraic notation")
	ErrIllegalMove          = errors.New("illegal move")
	ErrWrongSide            = errors.New("side to move does not match")
	ErrHistoryNotReplayable = errors.New("recorded moves cannot be replayed on a board")
)

// Modes accepted by ForMode.
const (
	ModeLength = "length"
	ModeSAN    = "san"
	ModeLegal  = "legal"
)

// Validator checks text before it is appended for player after history.
type Validator interface {
	Validate(history []ledger.Move, player ledger.Player, text string) error
}

// ForMode returns the validator registered under mode. An empty mode means
// ModeLength.
func ForMode(mode string) (Validator, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeLength:
		return LengthValidator{}, nil
	case ModeSAN:
		return SANValidator{}, nil
	case ModeLegal:
		return LegalValidator{}, nil
	default:
		return nil, fmt.Errorf("unknown notation mode %q", mode)
	}
}

// LengthValidator accepts any 1..6 character token.
type LengthValidator struct{}

func (LengthValidator) Validate(_ []ledger.Move, _ ledger.Player, text string) error {
	return ledger.CheckNotation(text)
}

var sanPattern = regexp.MustCompile(`^(O-O(-O)?|[KQRBN][a-h]?[1-8]?x?[a-h][1-8]|[a-h](x[a-h])?[1-8](=[QRBN])?)[+#]?$`)

// SANValidator adds a grammar check on top of the length rule. It does not
// look at a board, so "Ke8" is accepted on move one.
type SANValidator struct{}

func (SANValidator) Validate(_ []ledger.Move, _ ledger.Player, text string) error {
	if err := ledger.CheckNotation(text); err != nil {
		return err
	}
	if !sanPattern.MatchString(text) {
		return fmt.Errorf("%w: %q", ErrNotSAN, text)
	}
	return nil
}

// LegalValidator replays history from the initial position and requires text
// to be a legal SAN move for player.
type LegalValidator struct{}

func (LegalValidator) Validate(history []ledger.Move, player ledger.Player, text string) error {
	if err := ledger.CheckNotation(text); err != nil {
		return err
	}
	game, err := replay(history)
	if err != nil {
		return err
	}
	if colorOf(player) != game.Position().Turn() {
		return fmt.Errorf("%w: %s recorded but %s is to move", ErrWrongSide, player, playerOf(game.Position().Turn()))
	}
	if err := game.PushNotationMove(text, nchess.AlgebraicNotation{}, nil); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIllegalMove, text, err)
	}
	return nil
}

func replay(history []ledger.Move) (*nchess.Game, error) {
	game := nchess.NewGame()
	for i, m := range history {
		if colorOf(m.Player) != game.Position().Turn() {
			return nil, fmt.Errorf("%w: move %d played out of turn", ErrHistoryNotReplayable, i+1)
		}
		if err := game.PushNotationMove(m.Notation, nchess.AlgebraicNotation{}, nil); err != nil {
			return nil, fmt.Errorf("%w: move %d %q: %v", ErrHistoryNotReplayable, i+1, m.Notation, err)
		}
	}
	return game, nil
}

func colorOf(p ledger.Player) nchess.Color {
	if p == ledger.Black {
		return nchess.Black
	}
	return nchess.White
}

func playerOf(c nchess.Color) ledger.Player {
	if c == nchess.Black {
		return ledger.Black
	}
	return ledger.White
}
