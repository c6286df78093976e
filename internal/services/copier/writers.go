package copier

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"
)

// ErrUnavailable the clipboard mechanism cannot be used on this host.
var ErrUnavailable = errors.New("clipboard unavailable")

// SystemClipboard writes through the platform clipboard utilities.
type SystemClipboard struct{}

// WriteText implements Writer.
func (SystemClipboard) WriteText(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return errors.Wrap(clipboard.WriteAll(text), "failed to write system clipboard")
}

// TerminalSelection asks the terminal emulator to set its selection with an
// OSC 52 escape sequence.
type TerminalSelection struct {
	out  io.Writer
	tmux bool
}

// NewTerminalSelection writes sequences to out, wrapped for tmux when running
// inside it.
func NewTerminalSelection(out io.Writer) *TerminalSelection {
	return &TerminalSelection{out: out, tmux: os.Getenv("TMUX") != ""}
}

// WriteText implements Writer.
func (t *TerminalSelection) WriteText(_ context.Context, text string) error {
	if t == nil || t.out == nil {
		return ErrUnavailable
	}

	seq := osc52.New(text)
	if t.tmux {
		seq = seq.Tmux()
	}
	// one write, so a shared terminal handle never splits the sequence
	if _, err := io.WriteString(t.out, seq.String()); err != nil {
		return errors.Wrap(err, "failed to write selection sequence")
	}
	return nil
}
