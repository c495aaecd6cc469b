package notation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/park285/chess-notation-recorder/internal/ledger"
)

func moves(pairs ...string) []ledger.Move {
	out := make([]ledger.Move, 0, len(pairs))
	for i, n := range pairs {
		p := ledger.White
		if i%2 == 1 {
			p = ledger.Black
		}
		out = append(out, ledger.Move{Player: p, Notation: n})
	}
	return out
}

func TestForMode(t *testing.T) {
	for mode, want := range map[string]Validator{
		"":       LengthValidator{},
		"length": LengthValidator{},
		" SAN ":  SANValidator{},
		"legal":  LegalValidator{},
	} {
		v, err := ForMode(mode)
		if err != nil {
			t.Fatalf("ForMode(%q): %v", mode, err)
		}
		if v != want {
			t.Fatalf("ForMode(%q) = %T, want %T", mode, v, want)
		}
	}
	if _, err := ForMode("strict"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLengthValidatorIsPermissive(t *testing.T) {
	v := LengthValidator{}
	if err := v.Validate(nil, ledger.White, "zz9999"); err != nil {
		t.Fatalf("zz9999 rejected: %v", err)
	}
	if err := v.Validate(nil, ledger.White, ""); !errors.Is(err, ledger.ErrInvalidNotation) {
		t.Fatalf("empty accepted: %v", err)
	}
	if err := v.Validate(nil, ledger.White, "Nbd7xe5"); !errors.Is(err, ledger.ErrInvalidNotation) {
		t.Fatalf("7 chars accepted: %v", err)
	}
}

func TestSANValidator(t *testing.T) {
	v := SANValidator{}
	for _, ok := range []string{"e4", "exd5", "Nf3", "Nbd7", "R1e2", "Qxh7#", "O-O", "O-O-O", "e8=Q", "Bb5+"} {
		if err := v.Validate(nil, ledger.White, ok); err != nil {
			t.Fatalf("%q rejected: %v", ok, err)
		}
	}
	for _, bad := range []string{"zz9999", "e9", "Kx", "0-0", "nf3"} {
		if err := v.Validate(nil, ledger.White, bad); !errors.Is(err, ErrNotSAN) {
			t.Fatalf("%q err = %v, want ErrNotSAN", bad, err)
		}
	}
}

func TestLegalValidator(t *testing.T) {
	v := LegalValidator{}
	history := moves("e4", "e5")
	if err := v.Validate(history, ledger.White, "Nf3"); err != nil {
		t.Fatalf("Nf3 rejected: %v", err)
	}
	if err := v.Validate(history, ledger.White, "Ke3"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Ke3 err = %v, want ErrIllegalMove", err)
	}
	if err := v.Validate(history, ledger.Black, "Nc6"); !errors.Is(err, ErrWrongSide) {
		t.Fatalf("black on white's turn err = %v", err)
	}
	if err := v.Validate(moves("e4", "zz9999"), ledger.White, "Nf3"); !errors.Is(err, ErrHistoryNotReplayable) {
		t.Fatalf("garbage history err = %v", err)
	}
}

func TestMovetextNumbering(t *testing.T) {
	got := Movetext(moves("e4", "e5", "Nf3"))
	if got != "1. e4 e5 2. Nf3 *" {
		t.Fatalf("movetext = %q", got)
	}
	irregular := []ledger.Move{
		{Player: ledger.Black, Notation: "e5"},
		{Player: ledger.White, Notation: "d4"},
		{Player: ledger.White, Notation: "c4"},
	}
	if got := Movetext(irregular); got != "1... e5 2. d4 3. c4 *" {
		t.Fatalf("irregular movetext = %q", got)
	}
}

func TestPGNHeaders(t *testing.T) {
	pgn := PGN(moves("e4"), Tags{Event: `Club "night"`, Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)})
	for _, want := range []string{
		"[Event \"Club 'night'\"]\n",
		"[Site \"?\"]\n",
		"[Date \"2024.03.09\"]\n",
		"[Result \"*\"]\n\n1. e4 *\n",
	} {
		if !strings.Contains(pgn, want) {
			t.Fatalf("pgn missing %q:\n%s", want, pgn)
		}
	}
}
