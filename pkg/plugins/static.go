package plugins

import (
	"context"

	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/rangedata"
)

// StaticPluginName is the registry name of the static plugin.
const StaticPluginName = "static"

// StaticPlugin returns the data subtree embedded in its module config.
// Useful for small hand-maintained fragments and as the usual vehicle for
// immutable modules.
type StaticPlugin struct{}

// Name returns the registry name of this plugin.
func (p *StaticPlugin) Name() string {
	return StaticPluginName
}

// Sync returns the normalized contents of the module's data key.
func (p *StaticPlugin) Sync(_ context.Context, cfg ModuleConfig) (rangedata.Tree, error) {
	data := cfg.Value("data")
	if data == nil {
		return nil, &errors.ValidationError{Field: "data", Message: "static plugin requires a data mapping"}
	}

	if tree, ok := rangedata.Normalize(data).(rangedata.Tree); ok {
		return tree, nil
	}
	return nil, &errors.ValidationError{Field: "data", Value: data, Message: "data must be a mapping"}
}
