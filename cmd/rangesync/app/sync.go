package app

import (
	"github.com/spf13/cobra"

	"github.com/craig5/range/pkg/pipeline"
)

// NewSyncCommand creates the sync command, the main operation: run every
// configured module through the pipeline and write the merged range data.
func (a *App) NewSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run all modules and write merged range data",
		Long: `Sync runs the three pipeline stages in order: regular modules merge
additively, immutable modules override, and post modules enhance the
already-written output. Individual module failures degrade to empty
contributions; only configuration errors abort the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.LoadConfig()
			if err != nil {
				return err
			}

			p, err := pipeline.New(cfg, pipeline.WithLogger(a.logger))
			if err != nil {
				return err
			}

			result, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			for _, module := range result.Failed() {
				a.logger.Warn().Str("module", module).Msg("module contributed nothing this run")
			}
			cmd.Println(result.Summary())
			return nil
		},
	}
}
