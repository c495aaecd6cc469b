// Package console is the terminal face of the recorder: the menu loop, the
// prompts, and rendering of notices, history and replay events.
package console

import (
	"fmt"
	"io"
	"iter"

	"github.com/park285/chess-notation-recorder/internal/ledger"
	"github.com/park285/chess-notation-recorder/internal/msgcat"
	"github.com/park285/chess-notation-recorder/internal/replay"
)

// Presenter writes catalog messages to an output stream.
type Presenter struct {
	out     io.Writer
	catalog *msgcat.Catalog
}

func NewPresenter(out io.Writer, catalog *msgcat.Catalog) *Presenter {
	return &Presenter{out: out, catalog: catalog}
}

func (p *Presenter) Menu() {
	fmt.Fprint(p.out, p.catalog.Text("menu", nil))
}

// Prompt prints without a trailing newline so input follows on the same line.
func (p *Presenter) Prompt(key string, data map[string]any) {
	fmt.Fprint(p.out, p.catalog.Text(key, data))
}

func (p *Presenter) Notice(key string, data map[string]any) {
	fmt.Fprintln(p.out, p.catalog.Text(key, data))
}

func (p *Presenter) History(moves iter.Seq2[int, ledger.Move]) {
	for i, m := range moves {
		fmt.Fprintln(p.out, p.catalog.Text("history.line", map[string]any{"Index": i, "Move": m.String()}))
	}
}

func (p *Presenter) ReplayEvent(e replay.Event) error {
	var err error
	switch e.Kind {
	case replay.KindStart:
		_, err = fmt.Fprintln(p.out, p.catalog.Text("replay.start", nil))
	case replay.KindMove:
		_, err = fmt.Fprintln(p.out, p.catalog.Text("replay.move", map[string]any{"Index": e.Index, "Move": e.Move.String()}))
	case replay.KindFinish:
		_, err = fmt.Fprintln(p.out, p.catalog.Text("replay.finish", nil))
	}
	return err
}
