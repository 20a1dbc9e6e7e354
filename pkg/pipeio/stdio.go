package pipeio

import (
	"os"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Stdio provides a ReadWriteCloser over the process's standard streams.
// Stdin reads go through a cancelable reader when the platform supports
// one, so a Close from the other pipe direction can interrupt a blocked
// read.
type Stdio struct {
	stdin            *os.File
	cancellableStdin cancelreader.CancelReader

	stdout *os.File
}

// NewStdio creates a Stdio with cancelable stdin reading if supported.
func NewStdio() *Stdio {
	out := Stdio{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	cancellableStdin, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return &out
	}

	out.cancellableStdin = cancellableStdin
	return &out
}

// InteractiveInput reports whether stdin is attached to a terminal, so
// callers can tell users how to signal end of input.
func (s *Stdio) InteractiveInput() bool {
	return term.IsTerminal(int(s.stdin.Fd()))
}

// Read reads from stdin, using the cancelable reader if available.
func (s *Stdio) Read(p []byte) (n int, err error) {
	if s.cancellableStdin != nil {
		return s.cancellableStdin.Read(p)
	}
	return s.stdin.Read(p)
}

// Write writes to stdout.
func (s *Stdio) Write(p []byte) (n int, err error) {
	return s.stdout.Write(p)
}

// Close cancels any pending stdin read. The process streams themselves
// stay open.
func (s *Stdio) Close() error {
	if s.cancellableStdin != nil {
		s.cancellableStdin.Cancel()
	}
	return nil
}
