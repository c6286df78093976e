package tui

import (
	"os"
	"sync"
)

// Output terminal handle shared by the renderer and out-of-band writers such
// as the OSC 52 copy. Each Write lands whole, so escape sequences never
// interleave with a frame.
type Output struct {
	mu   sync.Mutex
	file *os.File
}

// NewOutput wraps f, usually os.Stdout.
func NewOutput(f *os.File) *Output {
	return &Output{file: f}
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.file.Write(p)
}

// Read implements io.Reader.
func (o *Output) Read(p []byte) (int, error) {
	return o.file.Read(p)
}

// Close implements io.Closer.
func (o *Output) Close() error {
	return o.file.Close()
}

// Fd exposes the descriptor so the program can query the terminal size.
func (o *Output) Fd() uintptr {
	return o.file.Fd()
}
