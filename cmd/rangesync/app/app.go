// Package app provides the application context for the range-sync CLI:
// flag handling, logger setup, and the command tree.
package app

import (
	"github.com/rs/zerolog"

	"github.com/craig5/range/internal/config"
)

// App represents the range-sync application with its configuration and
// logger.
type App struct {
	version string
	commit  string
	date    string

	flags  *Flags
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		flags:   LoadFlags(),
	}

	logger := NewLogger(app.flags)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Flags returns the global flag values.
func (a *App) Flags() *Flags {
	return a.flags
}

// LoadConfig loads the run configuration from the configured path.
func (a *App) LoadConfig() (*config.Config, error) {
	return config.Load(a.flags.ConfigFile)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFlags sets custom flag values (useful for testing).
func WithFlags(flags *Flags) Option {
	return func(a *App) error {
		a.flags = flags
		return nil
	}
}
