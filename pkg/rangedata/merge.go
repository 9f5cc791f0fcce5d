package rangedata

import (
	"fmt"
	"reflect"
)

// Conflict records a key where additive merging could not combine the two
// values and the incoming value won. The pipeline reports conflicts at warn
// level; they are never fatal.
type Conflict struct {
	// Path is the slash-joined key path from the tree root.
	Path string

	// Accumulated is the value that was replaced.
	Accumulated any

	// Incoming is the value that won.
	Incoming any
}

// String returns a log-friendly description of the conflict.
func (c Conflict) String() string {
	return fmt.Sprintf("merge conflict at %q: %T replaced by %T", c.Path, c.Accumulated, c.Incoming)
}

// Merge additively merges incoming into acc and returns acc. Keys absent
// from acc are inserted, nested trees are merged recursively, and leaf
// lists present in both are concatenated (accumulated elements first) so
// multiple modules can contribute members to the same group.
//
// When the two values are incompatible at a key — tree versus leaf, or two
// unequal scalars — the incoming value replaces the accumulated one and a
// Conflict is recorded. Incoming data is assumed Normalized; acc may be nil.
func Merge(acc, incoming Tree) (Tree, []Conflict) {
	if acc == nil {
		acc = New()
	}
	var conflicts []Conflict
	mergeInto(acc, incoming, "", &conflicts)
	return acc, conflicts
}

func mergeInto(acc, incoming Tree, path string, conflicts *[]Conflict) {
	for key, inVal := range incoming {
		accVal, exists := acc[key]
		if !exists {
			acc[key] = inVal
			continue
		}

		accTree, accIsTree := asTree(accVal)
		inTree, inIsTree := asTree(inVal)
		if accIsTree && inIsTree {
			mergeInto(accTree, inTree, joinPath(path, key), conflicts)
			continue
		}

		accList, accIsList := asList(accVal)
		inList, inIsList := asList(inVal)
		if accIsList && inIsList {
			acc[key] = append(accList, inList...)
			continue
		}

		// Same scalar from both sides, nothing to do.
		if !accIsTree && !accIsList && !inIsTree && !inIsList && scalarEqual(accVal, inVal) {
			continue
		}

		*conflicts = append(*conflicts, Conflict{
			Path:        joinPath(path, key),
			Accumulated: accVal,
			Incoming:    inVal,
		})
		acc[key] = inVal
	}
}

// Override layers incoming onto acc with authoritative precedence and
// returns acc. Nested trees present on both sides are merged key by key so
// an immutable module can replace one leaf deep inside a tree without
// destroying siblings it did not mention; any other incoming value replaces
// whatever acc held at that key, including whole lists.
func Override(acc, incoming Tree) Tree {
	if acc == nil {
		acc = New()
	}
	overrideInto(acc, incoming)
	return acc
}

func overrideInto(acc, incoming Tree) {
	for key, inVal := range incoming {
		if accTree, ok := asTree(acc[key]); ok {
			if inTree, ok := asTree(inVal); ok {
				overrideInto(accTree, inTree)
				continue
			}
		}
		acc[key] = inVal
	}
}

// NoMerge layers incoming onto acc without additive semantics, for post
// modules that enhance data already handed to the output sink. The
// precedence rules match Override; the operation is kept distinct because
// post modules act after persistence, not before.
func NoMerge(acc, incoming Tree) Tree {
	return Override(acc, incoming)
}

// scalarEqual compares two leaf values without panicking on uncomparable
// types. Un-normalized input can carry values like []byte, which == would
// refuse at runtime.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}
