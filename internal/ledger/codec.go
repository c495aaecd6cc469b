package ledger

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const separator = ": "

// Serialize writes one "<Player>: <notation>" line per move in order. Every
// line, including the last, ends with a newline.
func (l *Ledger) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, m := range l.moves {
		if _, err := bw.WriteString(m.String() + "\n"); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Deserialize clears the ledger and reloads it from r. A malformed line
// rejects the whole source with a *FormatError and leaves the ledger empty.
func (l *Ledger) Deserialize(r io.Reader) error {
	l.Reset()

	var parsed []Move
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			if fe, ok := err.(*FormatError); ok {
				fe.Line = lineNo
			}
			return err
		}
		parsed = append(parsed, m)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &FormatError{Line: lineNo + 1, Reason: "line too long"}
		}
		return &IOError{Op: "read", Err: err}
	}
	l.moves = parsed
	return nil
}

// ParseLine decodes a single ledger line. The returned error is always a
// *FormatError with Line left at zero.
func ParseLine(line string) (Move, error) {
	token, notation, ok := strings.Cut(line, separator)
	if !ok {
		return Move{}, &FormatError{Text: line, Reason: "missing \": \" separator"}
	}
	player, err := ParsePlayer(token)
	if err != nil {
		return Move{}, &FormatError{Text: line, Reason: err.Error()}
	}
	if err := CheckNotation(notation); err != nil {
		return Move{}, &FormatError{Text: line, Reason: "notation must be 1-6 characters"}
	}
	return Move{Notation: notation, Player: player}, nil
}
