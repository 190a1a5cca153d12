package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"macropad/internal/console"
	"macropad/internal/hid"
)

type closerFunc func()

func (f closerFunc) Close() error { f(); return nil }

// openConsole starts the terminal simulator, which plays every hardware
// role at once. Output goes to a null sink so simulated macros do not feed
// back into the terminal's own input.
func openConsole() (*hardware, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("the terminal simulator needs an interactive terminal")
	}
	con, err := console.New()
	if err != nil {
		return nil, fmt.Errorf("start simulator: %w", err)
	}
	return &hardware{
		sink:    hid.NullSink{},
		pixels:  con,
		surface: con,
		blitter: con,
		source:  con,
		done:    con.Done(),
		closers: []io.Closer{closerFunc(con.Close)},
	}, nil
}
