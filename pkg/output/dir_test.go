package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craig5/range/pkg/rangedata"
)

func readTreeFile(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	return rangedata.Normalize(doc)
}

func TestDirSinkWrite(t *testing.T) {
	dir := t.TempDir()
	tree := rangedata.Tree{
		"web": rangedata.Tree{"hosts": []any{"web01", "web02"}},
		"db":  rangedata.Tree{"hosts": []any{"db01"}},
	}

	sink := NewDirSink()
	require.NoError(t, sink.Write(tree, dir, nil, true))

	got := readTreeFile(t, filepath.Join(dir, "web.yaml"))
	assert.Empty(t, cmp.Diff(rangedata.Tree{"hosts": []any{"web01", "web02"}}, got))

	got = readTreeFile(t, filepath.Join(dir, "db.yaml"))
	assert.Empty(t, cmp.Diff(rangedata.Tree{"hosts": []any{"db01"}}, got))
}

func TestDirSinkCreatesDestination(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := NewDirSink()
	require.NoError(t, sink.Write(rangedata.Tree{"a": 1}, dir, nil, true))
	assert.FileExists(t, filepath.Join(dir, "a.yaml"))
}

func TestDirSinkCleanRemovesStale(t *testing.T) {
	dir := t.TempDir()
	sink := NewDirSink()

	// Seed with a previous run's output.
	require.NoError(t, sink.Write(rangedata.Tree{"old": 1, "keepme": 2, "web": 3}, dir, nil, true))

	// Re-sync without "old" and "keepme"; "keepme" is protected.
	require.NoError(t, sink.Write(rangedata.Tree{"web": 4}, dir, []string{"keepme"}, true))

	assert.NoFileExists(t, filepath.Join(dir, "old.yaml"))
	assert.FileExists(t, filepath.Join(dir, "keepme.yaml"))
	assert.FileExists(t, filepath.Join(dir, "web.yaml"))
}

func TestDirSinkNoCleanNeverDeletes(t *testing.T) {
	dir := t.TempDir()
	sink := NewDirSink()

	require.NoError(t, sink.Write(rangedata.Tree{"old": 1}, dir, nil, true))
	require.NoError(t, sink.Write(rangedata.Tree{"new": 2}, dir, nil, false))

	assert.FileExists(t, filepath.Join(dir, "old.yaml"))
	assert.FileExists(t, filepath.Join(dir, "new.yaml"))
}

func TestDirSinkCleanIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

	sink := NewDirSink()
	require.NoError(t, sink.Write(rangedata.Tree{"a": 1}, dir, nil, true))

	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestDirSinkRejectsUnsafeKeys(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "out")
	sink := NewDirSink()

	for _, key := range []string{"../escape", "a/b", `a\b`, "..", ".", ""} {
		require.Error(t, sink.Write(rangedata.Tree{key: 1}, dir, nil, false), key)
	}
	assert.NoFileExists(t, filepath.Join(parent, "escape.yaml"))
}

func TestDirSinkEmptyDirRejected(t *testing.T) {
	sink := NewDirSink()
	require.Error(t, sink.Write(rangedata.Tree{"a": 1}, "", nil, true))
}
