package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_ShowListsAllKeys(t *testing.T) {
	withFixture(t, nil)

	out, err := executeRoot(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "dataset.backend = (not set)")
	assert.Contains(t, out, "dataset.path = (not set)")
	assert.Contains(t, out, "report.prefix = (not set)")
	assert.Contains(t, out, "report.max_tags = (not set)")
}

func TestConfigCmd_SetThenGet(t *testing.T) {
	withFixture(t, nil)

	out, err := executeRoot(t, "config", "set", "dataset.backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, out, "dataset.backend = sqlite")

	out, err = executeRoot(t, "config", "get", "dataset.backend")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite")
}

func TestConfigCmd_SetPersistsToDisk(t *testing.T) {
	withFixture(t, nil)

	_, err := executeRoot(t, "config", "set", "report.prefix", "sat")
	require.NoError(t, err)

	// A fresh store sees the value, so it survived the process.
	cfg, err := openConfig()
	require.NoError(t, err)
	assert.Equal(t, "sat", cfg.GetString(keyPrefix))
}

func TestConfigCmd_RejectsUnknownKey(t *testing.T) {
	withFixture(t, nil)

	_, err := executeRoot(t, "config", "get", "report.color")
	assert.ErrorContains(t, err, "unknown config key")

	_, err = executeRoot(t, "config", "set", "report.color", "red")
	assert.ErrorContains(t, err, "unknown config key")
}

func TestConfigCmd_RejectsUnknownBackend(t *testing.T) {
	withFixture(t, nil)

	_, err := executeRoot(t, "config", "set", "dataset.backend", "postgres")
	assert.ErrorContains(t, err, "unknown dataset backend")
}

func TestConfigCmd_Path(t *testing.T) {
	withFixture(t, nil)

	out, err := executeRoot(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(configDir, "config.toml"))
}

func TestParseConfigValue_MaxTags(t *testing.T) {
	v, err := parseConfigValue(keyMaxTags, "4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	_, err = parseConfigValue(keyMaxTags, "five")
	assert.ErrorContains(t, err, "must be an integer")

	_, err = parseConfigValue(keyMaxTags, "-1")
	assert.ErrorContains(t, err, "must not be negative")
}
