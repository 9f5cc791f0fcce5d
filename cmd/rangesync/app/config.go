package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/craig5/range/internal/config"
)

// Flags holds the global CLI flag values. The run configuration itself
// (module lists, output section) lives in the config file; these only
// control where that file is and how loud the tool is.
type Flags struct {
	// ConfigFile is the run configuration path.
	ConfigFile string

	// Debug, Verbose, and Quiet are mutually exclusive verbosity
	// shortcuts. Default level is warn.
	Debug   bool
	Verbose bool
	Quiet   bool

	// LogLevel overrides the verbosity shortcuts when set.
	LogLevel string

	// NoColor disables colored console output.
	NoColor bool
}

// LoadFlags returns flag defaults from the environment, honoring .env
// files first. Cobra applies command-line values on top of these.
func LoadFlags() *Flags {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.SetDefault("range-sync-config", config.DefaultPath)

	return &Flags{
		ConfigFile: v.GetString("range-sync-config"),
		LogLevel:   v.GetString("log-level"),
		NoColor:    v.GetString("no-color") != "",
	}
}

// LogLevelName resolves the effective log level from the flag set.
// Precedence: --log-level, then the verbosity shortcuts, then warn.
func (f *Flags) LogLevelName() string {
	if f.LogLevel != "" {
		return f.LogLevel
	}
	switch {
	case f.Debug:
		return "debug"
	case f.Verbose:
		return "info"
	case f.Quiet:
		return "error"
	}
	return "warn"
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
