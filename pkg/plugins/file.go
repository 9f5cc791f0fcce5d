package plugins

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/rangedata"
)

// FilePluginName is the registry name of the file plugin.
const FilePluginName = "file"

// FilePlugin collects range data fragments from YAML files in a directory.
// Each file contributes one top-level key named after the file (without
// extension) whose value is the decoded document.
type FilePlugin struct{}

// Name returns the registry name of this plugin.
func (p *FilePlugin) Name() string {
	return FilePluginName
}

// Sync reads every .yaml/.yml file under the configured path.
func (p *FilePlugin) Sync(ctx context.Context, cfg ModuleConfig) (rangedata.Tree, error) {
	path := cfg.String("path")
	if path == "" {
		return nil, &errors.ValidationError{Field: "path", Message: "file plugin requires a path"}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	tree := rangedata.New()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		file := filepath.Join(path, entry.Name())
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.WrapIO("read", file, err)
		}

		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("yaml", file, err)
		}

		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tree[key] = rangedata.Normalize(doc)
	}

	return tree, nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
