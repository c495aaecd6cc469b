package notation

import (
	"fmt"
	"strings"
	"time"

	"github.com/park285/chess-notation-recorder/internal/ledger"
)

// Tags are the PGN header values written by PGN. Empty fields become "?".
type Tags struct {
	Event string
	Site  string
	Date  time.Time
	White string
	Black string
}

// PGN renders moves as PGN movetext under the seven tag roster. Tokens are
// written as recorded; nothing is checked against a board. The result is
// always "*" because the recorder never knows how a game ended.
func PGN(moves []ledger.Move, tags Tags) string {
	var b strings.Builder
	date := "????.??.??"
	if !tags.Date.IsZero() {
		date = fmt.Sprintf("%04d.%02d.%02d", tags.Date.Year(), int(tags.Date.Month()), tags.Date.Day())
	}
	b.WriteString(fmt.Sprintf("[Event \"%s\"]\n", tagValue(tags.Event)))
	b.WriteString(fmt.Sprintf("[Site \"%s\"]\n", tagValue(tags.Site)))
	b.WriteString(fmt.Sprintf("[Date \"%s\"]\n", date))
	b.WriteString("[Round \"?\"]\n")
	b.WriteString(fmt.Sprintf("[White \"%s\"]\n", tagValue(tags.White)))
	b.WriteString(fmt.Sprintf("[Black \"%s\"]\n", tagValue(tags.Black)))
	b.WriteString("[Result \"*\"]\n\n")
	b.WriteString(Movetext(moves))
	b.WriteString("\n")
	return b.String()
}

// Movetext numbers moves by full move. A Black move that does not follow a
// White move of the same number is written as "N... x".
func Movetext(moves []ledger.Move) string {
	var parts []string
	number := 1
	whitePending := false
	for _, m := range moves {
		switch m.Player {
		case ledger.White:
			if whitePending {
				number++
			}
			parts = append(parts, fmt.Sprintf("%d. %s", number, m.Notation))
			whitePending = true
		default:
			if whitePending {
				parts = append(parts, m.Notation)
			} else {
				parts = append(parts, fmt.Sprintf("%d... %s", number, m.Notation))
			}
			number++
			whitePending = false
		}
	}
	parts = append(parts, "*")
	return strings.Join(parts, " ")
}

func tagValue(s string) string {
	s = strings.ReplaceAll(s, "\\", " ")
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.TrimSpace(s)
	if s == "" {
		return "?"
	}
	return s
}
