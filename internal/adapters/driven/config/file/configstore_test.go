package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_EmptyWhenNoFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("dataset.backend")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("dataset.path"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("dataset.backend", "sqlite"))
	require.NoError(t, store.Set("report.max_tags", int64(3)))

	assert.Equal(t, "sqlite", store.GetString("dataset.backend"))
	v, ok := store.Get("report.max_tags")
	require.True(t, ok)
	assert.Equal(t, int64(3), v)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("report.prefix", "lava"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "lava", reopened.GetString("report.prefix"))
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	cfg := "[dataset]\nbackend = \"json\"\npath = \"/tmp/sets.json\"\n\n[report]\nmax_tags = 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "json", store.GetString("dataset.backend"))
	assert.Equal(t, "/tmp/sets.json", store.GetString("dataset.path"))

	// TOML integers decode as int64.
	v, ok := store.Get("report.max_tags")
	require.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestConfigStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("report.max_tags", "five"))

	assert.Equal(t, "five", store.GetString("report.max_tags"))
	assert.Empty(t, store.GetString("dataset.backend"))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
