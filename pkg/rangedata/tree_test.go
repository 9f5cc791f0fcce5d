package rangedata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "string map becomes tree",
			in:   map[string]any{"a": 1},
			want: Tree{"a": 1},
		},
		{
			name: "any-keyed map becomes tree",
			in:   map[any]any{"a": map[any]any{"b": 2}},
			want: Tree{"a": Tree{"b": 2}},
		},
		{
			name: "string slice becomes any slice",
			in:   []string{"x", "y"},
			want: []any{"x", "y"},
		},
		{
			name: "nested lists normalized",
			in:   map[string]any{"hosts": []string{"h1"}},
			want: Tree{"hosts": []any{"h1"}},
		},
		{
			name: "non-string keys dropped",
			in:   map[any]any{1: "a", "b": "c"},
			want: Tree{"b": "c"},
		},
		{
			name: "scalar passes through",
			in:   42,
			want: 42,
		},
		{
			name: "binary leaf becomes string",
			in:   map[string]any{"secret": []byte("s3cr3t")},
			want: Tree{"secret": "s3cr3t"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, cmp.Diff(tt.want, Normalize(tt.in)))
		})
	}
}

func TestNormalizeTree(t *testing.T) {
	assert.Equal(t, Tree{"a": 1}, NormalizeTree(map[string]any{"a": 1}))
	assert.Equal(t, Tree{}, NormalizeTree("not a mapping"))
	assert.Equal(t, Tree{}, NormalizeTree(nil))
}

func TestCopyIsDeep(t *testing.T) {
	orig := Tree{
		"cluster": Tree{"hosts": []any{"h1"}},
	}
	dup := orig.Copy()

	dup["cluster"].(Tree)["hosts"] = append(dup["cluster"].(Tree)["hosts"].([]any), "h2")
	dup["new"] = 1

	assert.Empty(t, cmp.Diff(Tree{"cluster": Tree{"hosts": []any{"h1"}}}, orig))
}

func TestKeysSorted(t *testing.T) {
	tree := Tree{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, tree.Keys())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, New().IsEmpty())
	assert.False(t, Tree{"a": 1}.IsEmpty())
}
