// Package log provides logging utilities including colored console output.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// Logger wraps the package-level output functions with a verbosity switch.
// The zero value is a quiet logger.
type Logger struct {
	Verbose bool
}

// NewLogger creates a logger with the given verbosity.
func NewLogger(verbose bool) *Logger {
	return &Logger{Verbose: verbose}
}

// ErrorMsg prints an error message to stderr in red color.
func (l *Logger) ErrorMsg(format string, a ...interface{}) {
	ErrorMsg(format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func (l *Logger) InfoMsg(format string, a ...interface{}) {
	InfoMsg(format, a...)
}

// VerboseMsg prints a message to stderr in yellow color, but only if the
// logger is verbose.
func (l *Logger) VerboseMsg(format string, a ...interface{}) {
	if l == nil || !l.Verbose {
		return
	}
	yellow(os.Stderr, "[*] "+format, a...)
}
