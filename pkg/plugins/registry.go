package plugins

import (
	"sort"

	"github.com/craig5/range/pkg/errors"
)

// registry maps plugin names to their constructors. The set is fixed at
// compile time; resolution is a pure lookup.
var registry = map[string]func() Plugin{
	FilePluginName:   func() Plugin { return &FilePlugin{} },
	StaticPluginName: func() Plugin { return &StaticPlugin{} },
	HTTPPluginName:   func() Plugin { return NewHTTPPlugin() },
}

// New creates a fresh instance of the named plugin. Each call returns a new
// instance so plugins never share state between modules.
func New(name string) (Plugin, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, errors.NewNotFoundError("plugin", name)
	}
	return constructor(), nil
}

// Has checks if a plugin name has an implementation.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered plugin names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
