package app

import (
	"github.com/spf13/cobra"

	"github.com/craig5/range/pkg/plugins"
)

// NewPluginsCommand creates the plugins command listing the available
// collector plugins.
func (a *App) NewPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List available collector plugins",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range plugins.Names() {
				cmd.Println(name)
			}
		},
	}
}
