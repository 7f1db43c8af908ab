// Package logging configures leveled console logging.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger with the given prefix. Quiet by default;
// TICK_DEBUG=1 lowers the level to debug so swallowed persistence
// errors become visible.
func New(prefix string) *log.Logger {
	level := log.WarnLevel
	if os.Getenv("TICK_DEBUG") == "1" {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}
