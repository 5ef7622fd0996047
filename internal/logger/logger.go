// Package logger is a small leveled facade over the standard log package.
//
// Verbosity levels, in increasing order: Error < Info < Debug < Trace.
// Call SetVerbosity once during startup (after the config is loaded),
// then use Errorf/Infof/Debugf/Tracef at call sites.
package logger

import (
	"log"
	"os"
)

// Level is a logging verbosity level. Higher values log more.
type Level int

const (
	Error Level = iota // critical failures only
	Info               // high-level progress
	Debug              // diagnostic detail
	Trace              // fine-grained execution traces
)

// current holds the active verbosity; messages with level <= current are logged.
var current Level = Info

func init() {
	// Logs go to stderr so chart HTML and reports on stdout stay clean.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetVerbosity sets the global verbosity, typically from the loaded config.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs a failure that requires attention.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs a major lifecycle event.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs diagnostic detail.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs very detailed traces; use sparingly.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
