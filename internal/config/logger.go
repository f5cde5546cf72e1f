package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w. LOG_LEVEL selects the
// level (debug, info, warn, error); info is used when unset or invalid.
func NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "destroyds",
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	if raw := GetEnv("LOG_LEVEL", ""); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			logger.Warn("ignoring invalid setting", "key", "LOG_LEVEL", "value", raw)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}
