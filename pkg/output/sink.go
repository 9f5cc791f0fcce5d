// Package output persists merged range data. The pipeline talks to the
// Sink interface; DirSink is the file-backed implementation writing one
// YAML file per top-level key.
package output

import "github.com/craig5/range/pkg/rangedata"

// Sink persists a merged range data tree to a destination.
type Sink interface {
	// Write persists tree under dir. With clean set, destination entries
	// that are neither present in tree nor named in protected are removed;
	// without it the write only adds or overwrites, never deletes.
	Write(tree rangedata.Tree, dir string, protected []string, clean bool) error
}
