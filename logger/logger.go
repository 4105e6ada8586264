// Package logger provides the module-wide zerolog logger used by the
// DAG builders to report build summaries.
//
// The default logger writes human-readable output to stderr at the Info
// level, so builder debug summaries are silent unless a caller opts in:
//
//	logger.Set(logger.Logger().Level(zerolog.DebugLevel))
//
// Libraries embedding xmcs can redirect or silence all output with Set
// and Disable.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Logger returns the current module logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the module logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable turns all module logging off.
func Disable() {
	logger = zerolog.Nop()
}
