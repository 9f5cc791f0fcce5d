package rangedata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjointKeys(t *testing.T) {
	left := Tree{"a": []any{1}}
	right := Tree{"b": []any{2}}

	got, conflicts := Merge(New(), left)
	require.Empty(t, conflicts)
	got, conflicts = Merge(got, right)
	require.Empty(t, conflicts)

	want := Tree{"a": []any{1}, "b": []any{2}}
	assert.Empty(t, cmp.Diff(want, got))

	// Order must not matter for disjoint keys.
	reversed, _ := Merge(New(), right)
	reversed, _ = Merge(reversed, left)
	assert.Empty(t, cmp.Diff(want, reversed))
}

func TestMergeConcatenatesLists(t *testing.T) {
	got, conflicts := Merge(Tree{"g": []any{"x"}}, Tree{"g": []any{"y"}})
	require.Empty(t, conflicts)
	assert.Empty(t, cmp.Diff(Tree{"g": []any{"x", "y"}}, got))
}

func TestMergeNestedTrees(t *testing.T) {
	acc := Tree{"cluster": Tree{"hosts": []any{"h1"}, "owner": "ops"}}
	incoming := Tree{"cluster": Tree{"hosts": []any{"h2"}, "env": "prod"}}

	got, conflicts := Merge(acc, incoming)
	require.Empty(t, conflicts)

	want := Tree{"cluster": Tree{
		"hosts": []any{"h1", "h2"},
		"owner": "ops",
		"env":   "prod",
	}}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestMergeEqualScalarsNoConflict(t *testing.T) {
	got, conflicts := Merge(Tree{"k": "v"}, Tree{"k": "v"})
	assert.Empty(t, conflicts)
	assert.Equal(t, Tree{"k": "v"}, got)
}

func TestMergeBinaryLeaves(t *testing.T) {
	// YAML !!binary leaves decode to []byte, which == refuses to compare.
	// Equal values merge silently; unequal values conflict, never panic.
	_, conflicts := Merge(Tree{"k": []byte("a")}, Tree{"k": []byte("a")})
	assert.Empty(t, conflicts)

	got, conflicts := Merge(Tree{"k": []byte("a")}, Tree{"k": []byte("b")})
	require.Len(t, conflicts, 1)
	assert.Equal(t, "k", conflicts[0].Path)
	assert.Equal(t, Tree{"k": []byte("b")}, got)
}

func TestMergeConflicts(t *testing.T) {
	tests := []struct {
		name     string
		acc      Tree
		incoming Tree
		wantPath string
		want     Tree
	}{
		{
			name:     "tree replaced by leaf",
			acc:      Tree{"g": Tree{"a": 1}},
			incoming: Tree{"g": "leaf"},
			wantPath: "g",
			want:     Tree{"g": "leaf"},
		},
		{
			name:     "leaf replaced by tree",
			acc:      Tree{"g": "leaf"},
			incoming: Tree{"g": Tree{"a": 1}},
			wantPath: "g",
			want:     Tree{"g": Tree{"a": 1}},
		},
		{
			name:     "list replaced by scalar",
			acc:      Tree{"g": []any{"x"}},
			incoming: Tree{"g": 7},
			wantPath: "g",
			want:     Tree{"g": 7},
		},
		{
			name:     "differing scalars",
			acc:      Tree{"g": "old"},
			incoming: Tree{"g": "new"},
			wantPath: "g",
			want:     Tree{"g": "new"},
		},
		{
			name:     "nested conflict has full path",
			acc:      Tree{"a": Tree{"b": Tree{"c": 1}}},
			incoming: Tree{"a": Tree{"b": Tree{"c": 2}}},
			wantPath: "a/b/c",
			want:     Tree{"a": Tree{"b": Tree{"c": 2}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conflicts := Merge(tt.acc, tt.incoming)
			require.Len(t, conflicts, 1)
			assert.Equal(t, tt.wantPath, conflicts[0].Path)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestMergeNilAccumulator(t *testing.T) {
	got, conflicts := Merge(nil, Tree{"a": 1})
	require.Empty(t, conflicts)
	assert.Equal(t, Tree{"a": 1}, got)
}

func TestOverrideReplacesLeavesKeepsSiblings(t *testing.T) {
	acc := Tree{"g": Tree{"a": 1, "b": 2}}
	got := Override(acc, Tree{"g": Tree{"a": 9}})
	assert.Empty(t, cmp.Diff(Tree{"g": Tree{"a": 9, "b": 2}}, got))
}

func TestOverrideReplacesListsWholesale(t *testing.T) {
	// Immutables win entirely, not elementwise: accumulated list members
	// must not survive.
	acc, _ := Merge(Tree{"x": []any{1}}, Tree{"x": []any{2}})
	got := Override(acc, Tree{"x": []any{99}})
	assert.Empty(t, cmp.Diff(Tree{"x": []any{99}}, got))
}

func TestOverrideTypeMismatch(t *testing.T) {
	got := Override(Tree{"g": Tree{"a": 1}}, Tree{"g": "authoritative"})
	assert.Equal(t, Tree{"g": "authoritative"}, got)
}

func TestNoMergeMatchesOverrideSemantics(t *testing.T) {
	acc := Tree{"x": []any{99}, "g": Tree{"a": 1}}
	got := NoMerge(acc, Tree{"y": 1, "g": Tree{"b": 2}})

	want := Tree{
		"x": []any{99},
		"y": 1,
		"g": Tree{"a": 1, "b": 2},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestConflictString(t *testing.T) {
	c := Conflict{Path: "a/b", Accumulated: Tree{}, Incoming: "x"}
	assert.Contains(t, c.String(), `"a/b"`)
}
