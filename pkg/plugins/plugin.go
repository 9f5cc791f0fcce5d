// Package plugins defines the collector plugin interface and the registry
// that resolves configured plugin names to implementations. Plugins are a
// closed, statically known set; a module is one configured invocation of a
// plugin, and its config section travels to the plugin unchanged apart from
// the reserved keys recognized here.
package plugins

import (
	"context"
	"time"

	"github.com/spf13/cast"

	"github.com/craig5/range/pkg/rangedata"
)

// Reserved module config keys.
const (
	// KeyPlugin names the plugin a module invokes.
	KeyPlugin = "plugin"

	// KeyDisable skips the module entirely when true.
	KeyDisable = "disable"
)

// ModuleConfig is one module's section of the run configuration. Beyond the
// reserved keys every entry is plugin-specific and read-only during a run.
type ModuleConfig map[string]any

// PluginName returns the configured plugin name, or "" when absent.
func (c ModuleConfig) PluginName() string {
	return cast.ToString(c[KeyPlugin])
}

// Disabled reports whether the module is disabled.
func (c ModuleConfig) Disabled() bool {
	return cast.ToBool(c[KeyDisable])
}

// String returns the value at key as a string, or "" when absent.
func (c ModuleConfig) String(key string) string {
	return cast.ToString(c[key])
}

// Duration returns the value at key as a duration, or the fallback when
// absent or unparseable.
func (c ModuleConfig) Duration(key string, fallback time.Duration) time.Duration {
	v, ok := c[key]
	if !ok {
		return fallback
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return fallback
	}
	return d
}

// Value returns the raw value at key.
func (c ModuleConfig) Value(key string) any {
	return c[key]
}

// Plugin is the capability a module invokes to collect a range data
// fragment. Sync failures are caught at the module runner boundary and
// degrade to an empty contribution; they never abort the run.
type Plugin interface {
	// Name returns the registry name of this plugin.
	Name() string

	// Sync collects this plugin's range data fragment using the module's
	// configuration. The returned tree must be Normalized.
	Sync(ctx context.Context, cfg ModuleConfig) (rangedata.Tree, error)
}
