// Package logger is a small leveled logging facade over the standard log
// package. Verbosity is set once at startup; call sites pick a level and
// pass a format string, nothing else.
//
// Levels, in increasing verbosity: Error < Info < Debug < Trace.
package logger

import (
	"log"
	"os"
)

// Level is a logging verbosity level. Higher means chattier.
type Level int

const (
	Error Level = iota // critical failures only
	Info               // high-level progress
	Debug              // diagnostic detail, e.g. per-sweep prices
	Trace              // very fine-grained execution detail
)

// current holds the active verbosity; only messages at or below it are
// emitted.
var current Level = Info

func init() {
	// Logs go to stderr so sweep output piped to a file stays clean.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetVerbosity sets the global verbosity. Typically called once during
// startup.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs an info-level message.
func Infof(format string, args ...any) {
	logf(Info, "[INFO] ", format, args...)
}

// Debugf logs a debug-level message.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs a trace-level message.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
