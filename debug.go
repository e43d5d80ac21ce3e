package vimcat

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// debugMu guards debugLogger against concurrent SetDebug/DebugOn/DebugOff
// calls racing with in-flight debugf calls from the terminal and editor
// driver. The teacher has no logging of its own to imitate here; this
// follows the process-wide swappable-sink convention the original C
// implementation's debug.c establishes with its single global FILE*.
var debugMu sync.Mutex

// debugLogger is nil when debugging is off, matching the original's
// vimcat_debug == NULL convention.
var debugLogger *zerolog.Logger

// SetDebug redirects debug output to w and returns the previously
// configured writer (nil if debugging was off). Passing nil disables
// debugging, equivalent to calling DebugOff.
func SetDebug(w io.Writer) io.Writer {
	debugMu.Lock()
	defer debugMu.Unlock()

	var previous io.Writer
	if debugLogger != nil {
		previous = debugLoggerWriter
	}

	if w == nil {
		debugLogger = nil
		debugLoggerWriter = nil
		return previous
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	debugLogger = &logger
	debugLoggerWriter = w
	return previous
}

// debugLoggerWriter remembers the raw writer passed to SetDebug so it can be
// handed back out verbatim, since zerolog.Logger doesn't expose its sink.
var debugLoggerWriter io.Writer

// DebugOn enables debug output to stderr, mirroring vimcat_debug_on().
func DebugOn() {
	SetDebug(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	}))
}

// DebugOff disables debug output, mirroring vimcat_debug_off().
func DebugOff() {
	SetDebug(nil)
}

// debugf logs a formatted debug message if debugging is currently enabled.
// Named after, and serving the same purpose as, the original's DEBUG macro.
func debugf(format string, args ...interface{}) {
	debugMu.Lock()
	logger := debugLogger
	debugMu.Unlock()

	if logger == nil {
		return
	}
	logger.Debug().Msgf(format, args...)
}
