package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/park285/chess-notation-recorder/internal/session"
)

// Handler applies one command to the session state.
type Handler interface {
	Handle(ctx context.Context, st session.State, cmd session.Command) (session.State, session.Outcome)
}

// Prompter reads one trimmed line of input at a time. Lines have no length
// limit; an oversized answer is just an invalid option or move.
type Prompter struct {
	reader *bufio.Reader
}

func NewPrompter(in io.Reader) *Prompter {
	return &Prompter{reader: bufio.NewReader(in)}
}

// ReadLine returns io.EOF once input is exhausted. A last line without a
// trailing newline is still returned.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Run shows the menu and dispatches options until Exit is chosen, input ends
// or ctx is cancelled. It returns the final state.
func Run(ctx context.Context, h Handler, in *Prompter, view *Presenter, st session.State) (session.State, error) {
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		view.Menu()
		view.Prompt("prompt.option", nil)
		option, err := in.ReadLine()
		if err != nil {
			return st, endOfInput(err)
		}

		cmd, err := readCommand(option, st, in, view)
		if err != nil {
			return st, endOfInput(err)
		}
		if cmd == nil {
			view.Notice("option.invalid", nil)
			continue
		}

		var out session.Outcome
		st, out = h.Handle(ctx, st, cmd)
		if out.Exit {
			return st, nil
		}
	}
}

// readCommand maps a menu option to a command, prompting for its argument.
// A nil command means the option was not recognised.
func readCommand(option string, st session.State, in *Prompter, view *Presenter) (session.Command, error) {
	ask := func(key string, data map[string]any) (string, error) {
		view.Prompt(key, data)
		return in.ReadLine()
	}
	switch option {
	case "1":
		text, err := ask("prompt.move", map[string]any{"Player": st.Turn.String()})
		return session.InputMove{Text: text}, err
	case "2":
		return session.ShowHistory{}, nil
	case "3":
		return session.Replay{}, nil
	case "4":
		name, err := ask("prompt.save", nil)
		return session.Save{Name: name}, err
	case "5":
		name, err := ask("prompt.load", nil)
		return session.Load{Name: name}, err
	case "6":
		return session.Exit{}, nil
	case "7":
		name, err := ask("prompt.export", nil)
		return session.Export{Name: name}, err
	default:
		return nil, nil
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
