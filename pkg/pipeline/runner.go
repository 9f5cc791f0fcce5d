package pipeline

import (
	"context"
	"time"

	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/rangedata"
)

// runModule executes one module and returns its contribution. Every
// failure path returns an empty tree; nothing a module does can abort the
// run. Background garbage collection stays paused for the duration of the
// plugin call.
func (p *Pipeline) runModule(ctx context.Context, name string, stage Stage) (rangedata.Tree, ModuleStats) {
	start := time.Now()
	cfg := p.config.Module(name)
	stats := ModuleStats{
		Module: name,
		Plugin: cfg.PluginName(),
		Stage:  stage,
	}
	log := p.logger.With().
		Str("module", name).
		Str("plugin", stats.Plugin).
		Str("stage", stage.String()).
		Logger()

	if cfg.Disabled() {
		log.Info().Msg("module disabled, skipping")
		stats.Disabled = true
		stats.Duration = time.Since(start)
		return rangedata.New(), stats
	}

	plugin, err := p.resolve(stats.Plugin)
	if err != nil {
		log.Error().Err(err).Msg("cannot resolve plugin, module contributes nothing")
		stats.Failed = true
		stats.Duration = time.Since(start)
		return rangedata.New(), stats
	}

	restore := pauseGC()
	defer restore()

	tree, err := plugin.Sync(ctx, cfg)
	if err != nil {
		log.Error().Err(errors.WrapPlugin(stats.Plugin, name, err)).Msg("plugin sync failed, module contributes nothing")
		stats.Failed = true
		stats.Duration = time.Since(start)
		return rangedata.New(), stats
	}

	tree = rangedata.NormalizeTree(tree)
	stats.Keys = len(tree)
	stats.Duration = time.Since(start)
	log.Debug().Int("keys", stats.Keys).Dur("took", stats.Duration).Msg("module synced")
	return tree, stats
}
