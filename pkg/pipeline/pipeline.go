// Package pipeline sequences module execution through the three sync
// stages and applies the matching merge strategy at each boundary:
// regular modules merge additively, immutables override, and post modules
// layer onto already-written output. The accumulated tree is owned
// exclusively by the pipeline; plugins never see or retain it.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/craig5/range/internal/config"
	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/logging"
	"github.com/craig5/range/pkg/output"
	"github.com/craig5/range/pkg/plugins"
	"github.com/craig5/range/pkg/rangedata"
)

// Resolver resolves a plugin name to an implementation.
type Resolver func(name string) (plugins.Plugin, error)

// Pipeline runs the configured modules in stage order and hands the merged
// tree to the sink.
type Pipeline struct {
	config  *config.Config
	sink    output.Sink
	logger  *zerolog.Logger
	resolve Resolver
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.NewConfigError("", "pipeline requires a configuration", nil)
	}
	p := &Pipeline{
		config:  cfg,
		sink:    output.NewDirSink(),
		logger:  logging.Default(),
		resolve: plugins.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSink sets a custom output sink.
func WithSink(sink output.Sink) Option {
	return func(p *Pipeline) {
		p.sink = sink
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithResolver sets a custom plugin resolver.
func WithResolver(resolve Resolver) Option {
	return func(p *Pipeline) {
		p.resolve = resolve
	}
}

// Run executes the full pipeline: modules, immutables, output write, then
// each post module with its own write. The returned error is non-nil only
// for sink failures; module failures are contained and reported in the
// Result.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{ExecutedAt: start}
	defer func() {
		result.Duration = time.Since(start)
	}()
	acc := rangedata.New()

	for _, name := range p.config.Modules {
		tree, stats := p.runModule(ctx, name, StageModules)
		result.Stats = append(result.Stats, stats)

		var conflicts []rangedata.Conflict
		acc, conflicts = rangedata.Merge(acc, tree)
		for _, conflict := range conflicts {
			p.logger.Warn().
				Str("module", name).
				Str("path", conflict.Path).
				Msg("merge conflict, incoming value wins")
		}
	}

	for _, name := range p.config.Immutables {
		tree, stats := p.runModule(ctx, name, StageImmutables)
		result.Stats = append(result.Stats, stats)
		acc = rangedata.Override(acc, tree)
	}

	if err := p.write(acc, true); err != nil {
		return result, err
	}
	result.Writes++

	for _, name := range p.config.Post {
		tree, stats := p.runModule(ctx, name, StagePost)
		result.Stats = append(result.Stats, stats)
		acc = rangedata.NoMerge(acc, tree)

		if err := p.write(acc, false); err != nil {
			return result, err
		}
		result.Writes++
	}

	p.logger.Info().
		Str("dir", p.config.Output.Dir).
		Msg(result.Summary())
	return result, nil
}

// write hands the accumulated tree to the sink. Protection only applies to
// clean writes; post-stage writes never delete anything.
func (p *Pipeline) write(acc rangedata.Tree, clean bool) error {
	err := p.sink.Write(acc, p.config.Output.Dir, p.config.Output.Protected, clean)
	if err != nil {
		return errors.WrapIO("write", p.config.Output.Dir, err)
	}
	p.logger.Debug().
		Str("dir", p.config.Output.Dir).
		Bool("clean", clean).
		Int("keys", len(acc)).
		Msg("output written")
	return nil
}
