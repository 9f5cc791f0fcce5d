package plugins

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craig5/range/pkg/rangedata"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFilePluginSync(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "web.yaml", "hosts:\n  - web01\n  - web02\nowner: ops\n")
	writeFile(t, dir, "db.yml", "hosts:\n  - db01\n")
	writeFile(t, dir, "README.md", "ignored")

	plugin := &FilePlugin{}
	got, err := plugin.Sync(context.Background(), ModuleConfig{"path": dir})
	require.NoError(t, err)

	want := rangedata.Tree{
		"web": rangedata.Tree{
			"hosts": []any{"web01", "web02"},
			"owner": "ops",
		},
		"db": rangedata.Tree{
			"hosts": []any{"db01"},
		},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestFilePluginEmptyDir(t *testing.T) {
	plugin := &FilePlugin{}
	got, err := plugin.Sync(context.Background(), ModuleConfig{"path": t.TempDir()})
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestFilePluginMissingPath(t *testing.T) {
	plugin := &FilePlugin{}
	_, err := plugin.Sync(context.Background(), ModuleConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path")
}

func TestFilePluginUnreadableDir(t *testing.T) {
	plugin := &FilePlugin{}
	_, err := plugin.Sync(context.Background(), ModuleConfig{"path": filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

func TestFilePluginInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "hosts: [unclosed\n")

	plugin := &FilePlugin{}
	_, err := plugin.Sync(context.Background(), ModuleConfig{"path": dir})
	require.Error(t, err)
}

func TestFilePluginCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "web.yaml", "hosts: [web01]\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plugin := &FilePlugin{}
	_, err := plugin.Sync(ctx, ModuleConfig{"path": dir})
	require.ErrorIs(t, err, context.Canceled)
}
