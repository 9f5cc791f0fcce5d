package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/logging"
	"github.com/craig5/range/pkg/rangedata"
)

// File and directory permissions for written range data.
const (
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// DirSink writes each top-level key of the tree as <key>.yaml inside the
// destination directory.
type DirSink struct{}

// NewDirSink creates a directory sink.
func NewDirSink() *DirSink {
	return &DirSink{}
}

// Write implements Sink.
func (s *DirSink) Write(tree rangedata.Tree, dir string, protected []string, clean bool) error {
	if dir == "" {
		return &errors.ValidationError{Field: "dir", Message: "output directory is required"}
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	for _, key := range tree.Keys() {
		if !safeKey(key) {
			return &errors.ValidationError{Field: "key", Value: key, Message: "top-level key is not a valid file name"}
		}
		data, err := yaml.Marshal(tree[key])
		if err != nil {
			return errors.WrapParse("yaml", key, err)
		}
		file := filepath.Join(dir, key+".yaml")
		if err := os.WriteFile(file, data, filePermissions); err != nil {
			return errors.WrapIO("write", file, err)
		}
	}

	if clean {
		return s.clean(tree, dir, protected)
	}
	return nil
}

// safeKey reports whether a top-level key can name a file inside the output
// directory. Keys with path separators or dot traversal would escape the
// directory and be unreachable for the clean pass.
func safeKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`)
}

// clean removes stale .yaml files: entries on disk that are neither in the
// tree nor protected.
func (s *DirSink) clean(tree rangedata.Tree, dir string, protected []string) error {
	keep := make(map[string]bool, len(tree)+len(protected))
	for key := range tree {
		keep[key] = true
	}
	for _, key := range protected {
		keep[key] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.WrapIO("read", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		key := strings.TrimSuffix(name, ".yaml")
		if keep[key] {
			continue
		}
		file := filepath.Join(dir, name)
		logging.Debug().Str("file", file).Msg("removing stale range data file")
		if err := os.Remove(file); err != nil {
			return errors.WrapIO("delete", file, err)
		}
	}
	return nil
}
