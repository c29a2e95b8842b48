// Package logger provides levelled diagnostic logging for convert-code-refs.
// Messages go to stderr so they never mix with the conversion report on
// stdout. The level is chosen once from the --verbose and --quiet flags.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls which messages are printed.
type Level int

const (
	// LevelQuiet prints nothing.
	LevelQuiet Level = iota
	// LevelNormal prints warnings only.
	LevelNormal
	// LevelVerbose prints everything, including per-block decisions.
	LevelVerbose
)

var (
	mu     sync.RWMutex
	level  Level     = LevelNormal
	output io.Writer = os.Stderr
)

// SetLevel sets the active level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput sets the output writer for log lines.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(at Level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if level >= at {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	logf(LevelVerbose, "[DEBUG] ", format, args...)
}

// Info prints an informational message in verbose mode.
func Info(format string, args ...any) {
	logf(LevelVerbose, "[INFO] ", format, args...)
}

// Warn prints a warning unless quiet.
func Warn(format string, args ...any) {
	logf(LevelNormal, "[WARN] ", format, args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if level >= LevelVerbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
