// Package termio wraps the output terminal: width queries, cursor control
// and colour detection.
package termio

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal is the output the animation writes to.
type Terminal struct {
	w        io.Writer
	fd       int
	fallback int
	out      *termenv.Output
	log      *slog.Logger
}

// New wraps w. Width and TTY queries need a file descriptor; any other
// writer reports fallbackColumns and is never treated as a terminal.
func New(w io.Writer, fallbackColumns int, log *slog.Logger) *Terminal {
	if log == nil {
		log = slog.Default()
	}
	fd := -1
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd = int(f.Fd())
	}
	return &Terminal{
		w:        w,
		fd:       fd,
		fallback: fallbackColumns,
		out:      termenv.NewOutput(w),
		log:      log,
	}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Columns returns the live column count, or the fallback when the output is
// not a terminal or the query fails.
func (t *Terminal) Columns() int {
	w, _, err := term.GetSize(t.fd)
	if err != nil {
		t.log.Debug("terminal width unavailable", "error", err, "fallback", t.fallback)
		return t.fallback
	}
	if w <= 0 {
		t.log.Debug("terminal reported no columns", "fallback", t.fallback)
		return t.fallback
	}
	return w
}

func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

func (t *Terminal) HideCursor() {
	if t.IsTerminal() {
		t.out.HideCursor()
	}
}

func (t *Terminal) ShowCursor() {
	if t.IsTerminal() {
		t.out.ShowCursor()
	}
}

// ColorEnabled reports whether the output supports any colour.
func (t *Terminal) ColorEnabled() bool {
	return t.out.Profile != termenv.Ascii
}
