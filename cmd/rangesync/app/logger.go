package app

import (
	"github.com/rs/zerolog"

	"github.com/craig5/range/pkg/logging"
)

// NewLogger creates a configured logger from the global flags and installs
// it as the package default so library code logs at the same level.
func NewLogger(flags *Flags) zerolog.Logger {
	cfg := &logging.Config{
		Level:   flags.LogLevelName(),
		Format:  "auto",
		Output:  "stderr",
		NoColor: flags.NoColor,
	}

	logger := logging.NewLoggerFromConfig(cfg)
	logging.SetDefault(logger)
	return logger
}
