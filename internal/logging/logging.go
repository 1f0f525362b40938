// Package logging provides structured logging for aiswe built on zerolog.
// Output goes to stderr so command output on stdout stays pipeable.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	global   zerolog.Logger
	globalMu sync.RWMutex
)

func init() {
	global = newLogger(false)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Setup configures the global logger. Verbose enables debug-level output;
// otherwise only warnings and errors are shown.
func Setup(verbose bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = newLogger(verbose)
}

// Get returns the global logger.
func Get() zerolog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Component returns the global logger with the component field set.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}
