// Package rangedata defines the range data tree and the merge strategies
// used to combine fragments produced by collector modules. A tree is an
// arbitrary-depth string-keyed mapping whose leaves are scalars or lists;
// the three merge strategies (additive, override, no-merge) implement the
// precedence rules of the sync pipeline stages.
package rangedata

import (
	"sort"
)

// Tree is one level of range data: string keys mapping to nested Trees,
// leaf lists ([]any), or scalar values.
type Tree map[string]any

// New returns an empty tree.
func New() Tree {
	return Tree{}
}

// Normalize returns a canonical copy of v: mappings become Tree, lists
// become []any with normalized elements, scalars pass through. Plugin
// output and YAML-decoded data go through Normalize before merging so the
// merge strategies only ever see the closed set of Tree, []any, and scalar.
func Normalize(v any) any {
	switch val := v.(type) {
	case Tree:
		return normalizeTree(val)
	case map[string]any:
		return normalizeTree(val)
	case map[any]any:
		out := Tree{}
		for k, elem := range val {
			if key, ok := k.(string); ok {
				out[key] = Normalize(elem)
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, elem := range val {
			out = append(out, Normalize(elem))
		}
		return out
	case []string:
		out := make([]any, 0, len(val))
		for _, elem := range val {
			out = append(out, elem)
		}
		return out
	case []byte:
		// YAML !!binary leaves decode to []byte; canonicalize to string so
		// leaves stay comparable.
		return string(val)
	default:
		return v
	}
}

func normalizeTree(m map[string]any) Tree {
	out := Tree{}
	for k, elem := range m {
		out[k] = Normalize(elem)
	}
	return out
}

// NormalizeTree normalizes v and returns it as a Tree. Non-mapping input
// yields an empty tree.
func NormalizeTree(v any) Tree {
	if t, ok := Normalize(v).(Tree); ok {
		return t
	}
	return Tree{}
}

// Copy returns a deep copy of the tree.
func (t Tree) Copy() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case Tree:
		return val.Copy()
	case map[string]any:
		return Tree(val).Copy()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = copyValue(elem)
		}
		return out
	default:
		return v
	}
}

// Keys returns the top-level keys in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether the tree has no keys.
func (t Tree) IsEmpty() bool {
	return len(t) == 0
}

// asTree reports whether v is a nested mapping, returning it as a Tree.
func asTree(v any) (Tree, bool) {
	switch val := v.(type) {
	case Tree:
		return val, true
	case map[string]any:
		return Tree(val), true
	default:
		return nil, false
	}
}

// asList reports whether v is a leaf sequence, returning it as []any.
func asList(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []string:
		out := make([]any, 0, len(val))
		for _, elem := range val {
			out = append(out, elem)
		}
		return out, true
	default:
		return nil, false
	}
}
