// Package config loads and validates the range-sync run configuration.
// The config file declares the ordered module lists for each pipeline
// stage, the output section, and one section per module. Structural
// problems here are the only fatal errors in a run.
//
// The file is decoded with goccy/go-yaml rather than viper so module
// section keys keep their case; range data keys are case-sensitive.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"

	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/plugins"
)

// DefaultPath is the well-known config location used when no --config flag
// is given.
const DefaultPath = "/etc/range-sync.yaml"

// Reserved top-level config sections. Everything else is a module section.
const (
	sectionModules    = "modules"
	sectionImmutables = "immutables"
	sectionPost       = "post"
	sectionOutput     = "output"
)

// Output is the output section of the run configuration.
type Output struct {
	// Dir is the destination directory for the sink.
	Dir string

	// Protected lists top-level keys the sink must preserve across clean
	// writes even when absent from the merged tree.
	Protected []string
}

// Config is the full run configuration.
type Config struct {
	// Modules, Immutables, and Post are the ordered module lists for the
	// three pipeline stages. Post may be empty.
	Modules    []string
	Immutables []string
	Post       []string

	Output Output

	// moduleConfigs holds the per-module sections keyed by module name.
	moduleConfigs map[string]plugins.ModuleConfig
}

// New creates a Config programmatically. Load is the normal path; New
// exists for tests and embedding callers.
func New(modules, immutables, post []string, out Output, moduleConfigs map[string]plugins.ModuleConfig) *Config {
	if moduleConfigs == nil {
		moduleConfigs = make(map[string]plugins.ModuleConfig)
	}
	return &Config{
		Modules:       modules,
		Immutables:    immutables,
		Post:          post,
		Output:        out,
		moduleConfigs: moduleConfigs,
	}
}

// Module returns the named module's config section. Missing sections yield
// an empty config; the runner reports the unresolvable plugin.
func (c *Config) Module(name string) plugins.ModuleConfig {
	if cfg, ok := c.moduleConfigs[name]; ok {
		return cfg
	}
	return plugins.ModuleConfig{}
}

// ModuleNames returns every module name declared in any stage, in stage
// order (modules, immutables, post).
func (c *Config) ModuleNames() []string {
	names := make([]string, 0, len(c.Modules)+len(c.Immutables)+len(c.Post))
	names = append(names, c.Modules...)
	names = append(names, c.Immutables...)
	names = append(names, c.Post...)
	return names
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("", "cannot read config file "+path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewConfigError("", "cannot parse config file "+path, err)
	}

	return build(raw)
}

// build extracts and validates the configuration from the decoded file.
func build(raw map[string]any) (*Config, error) {
	for _, section := range []string{sectionModules, sectionImmutables, sectionOutput} {
		if _, ok := raw[section]; !ok {
			return nil, errors.NewConfigError(section, "required section is missing", nil)
		}
	}

	modules, err := stringList(raw[sectionModules], sectionModules)
	if err != nil {
		return nil, err
	}
	immutables, err := stringList(raw[sectionImmutables], sectionImmutables)
	if err != nil {
		return nil, err
	}
	post, err := stringList(raw[sectionPost], sectionPost)
	if err != nil {
		return nil, err
	}

	out, err := outputSection(raw[sectionOutput])
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Modules:       modules,
		Immutables:    immutables,
		Post:          post,
		Output:        out,
		moduleConfigs: make(map[string]plugins.ModuleConfig),
	}

	for _, name := range cfg.ModuleNames() {
		if isReserved(name) {
			return nil, errors.NewConfigError(name, "module name collides with a reserved section", nil)
		}
		if section, ok := raw[name].(map[string]any); ok {
			cfg.moduleConfigs[name] = plugins.ModuleConfig(section)
		}
	}

	return cfg, nil
}

// outputSection validates the output section and extracts dir/protected.
func outputSection(v any) (Output, error) {
	section, ok := v.(map[string]any)
	if !ok {
		return Output{}, errors.NewConfigError(sectionOutput, "must be a mapping with a dir key", nil)
	}

	out := Output{Dir: cast.ToString(section["dir"])}
	if out.Dir == "" {
		return Output{}, errors.NewConfigError(sectionOutput, "output.dir is required", nil)
	}

	protected, err := cast.ToStringSliceE(section["protected"])
	if err != nil && section["protected"] != nil {
		return Output{}, errors.NewConfigError(sectionOutput, "protected must be a list of keys", err)
	}
	out.Protected = protected
	return out, nil
}

// stringList converts a declared module list. A present-but-empty section
// is fine; a non-list value is a structural error.
func stringList(v any, section string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errors.NewConfigError(section, "must be a list of module names", err)
	}
	return list, nil
}

func isReserved(name string) bool {
	switch name {
	case sectionModules, sectionImmutables, sectionPost, sectionOutput:
		return true
	}
	return false
}
