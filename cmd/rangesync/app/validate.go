package app

import (
	"github.com/spf13/cobra"

	"github.com/craig5/range/pkg/plugins"
)

// NewValidateCommand creates the validate command: load the run
// configuration, run the same structural checks sync would, and report
// module sections whose plugins cannot resolve. Exits non-zero only on
// structural errors, matching sync's fatality rules.
func (a *App) NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the run configuration without syncing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.LoadConfig()
			if err != nil {
				return err
			}

			for _, name := range cfg.ModuleNames() {
				moduleCfg := cfg.Module(name)
				if moduleCfg.Disabled() {
					continue
				}
				if !plugins.Has(moduleCfg.PluginName()) {
					a.logger.Error().
						Str("module", name).
						Str("plugin", moduleCfg.PluginName()).
						Msg("module references an unknown plugin")
				}
			}

			cmd.Printf("%s: configuration is valid (%d modules, %d immutables, %d post)\n",
				a.flags.ConfigFile, len(cfg.Modules), len(cfg.Immutables), len(cfg.Post))
			return nil
		},
	}
}
