package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/custodia-labs/brickset-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/brickset-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/brickset-cli/internal/core/domain"
	"github.com/custodia-labs/brickset-cli/internal/core/services"
	"github.com/custodia-labs/brickset-cli/internal/logger"
)

func strptr(s string) *string { return &s }

func fixtureSets() []domain.LegoSet {
	return []domain.LegoSet{
		{Number: "1-1", Name: "Ava's Arena", Theme: "Friends", Subtheme: strptr("Heartlake"), Tags: []string{"arena"}, Pieces: 312, Packaging: domain.PackagingBox},
		{Number: "2-1", Name: "Lava Falls", Theme: "Ninjago", Tags: []string{"lava", "fire"}, Pieces: 94, Packaging: domain.PackagingBox},
		{Number: "3-1", Name: "Satellite", Theme: "City", Pieces: 20, Packaging: domain.PackagingPolybag},
	}
}

// withFixture injects a memory-backed query service and isolates the
// config directory, restoring everything afterwards.
func withFixture(t *testing.T, sets []domain.LegoSet) {
	t.Helper()

	original := queryService
	originalConfigDir := configDir
	queryService = services.NewQueryService(memory.NewSetStore(sets...))
	configDir = t.TempDir()
	t.Cleanup(func() {
		queryService = original
		configDir = originalConfigDir
	})
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	// Never pass nil: cobra would fall back to os.Args, which holds
	// the test binary's flags.
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_PrintsAllSections(t *testing.T) {
	withFixture(t, fixtureSets())

	out, err := executeRoot(t)
	require.NoError(t, err)

	sections := []string{
		"Set names starting and ending with the same letter:",
		"Set names starting with \"lava\":",
		"Set numbers with at most 5 tags:",
		"Packaging type summary:",
		"Sum of all pieces:",
		"Do all sets have at most 500 pieces?",
		"Sorted distinct tags of sets with no subtheme:",
		"Theme with the longest name:",
		"Number of sets per theme:",
		"Themes with their distinct subthemes:",
	}
	for _, section := range sections {
		assert.Contains(t, out, section)
	}
}

func TestRootCmd_ReportContent(t *testing.T) {
	withFixture(t, fixtureSets())

	out, err := executeRoot(t)
	require.NoError(t, err)

	// "Ava's Arena" starts and ends with the same letter.
	assert.Contains(t, out, "  Ava's Arena\n")
	assert.Contains(t, out, "  Lava Falls\n")
	assert.Contains(t, out, "  426\n")
	assert.Contains(t, out, "  true\n")
	// "Friends" and "Ninjago" tie in length; the first-encountered
	// theme wins.
	assert.Contains(t, out, "  Friends\n")
	assert.Contains(t, out, "  box: 2\n")
	assert.Contains(t, out, "  polybag: 1\n")
	assert.Contains(t, out, "  Friends: Heartlake\n")
	assert.Contains(t, out, "  City: (none)\n")
	// Tags of the subtheme-bearing set never leak into the
	// no-subtheme tag section.
	assert.NotContains(t, out, "  arena\n")
}

func TestRootCmd_EmptyDataset(t *testing.T) {
	withFixture(t, nil)

	out, err := executeRoot(t)
	require.NoError(t, err)

	assert.Contains(t, out, "  (no sets)\n")
	assert.Contains(t, out, "  (none)\n")
	assert.Contains(t, out, "  true\n")
}

func TestRootCmd_FlagsOverrideDefaults(t *testing.T) {
	withFixture(t, fixtureSets())
	resetReportFlags(t)

	out, err := executeRoot(t, "--prefix", "sat", "--max-tags", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Set names starting with \"sat\":")
	assert.Contains(t, out, "  Satellite\n")
	assert.Contains(t, out, "Set numbers with at most 1 tag:")
	assert.Contains(t, out, "  1-1\n")
	assert.NotContains(t, out, "  2-1\n")
}

// resetReportFlags restores the report flags after a test that sets
// them; cobra keeps flag state between Execute calls.
func resetReportFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		reportPrefix = defaultPrefix
		reportMaxTags = defaultMaxTags
		rootCmd.Flags().Lookup("prefix").Changed = false
		rootCmd.Flags().Lookup("max-tags").Changed = false
	})
}

func TestRootCmd_ConfigProvidesReportKnobs(t *testing.T) {
	withFixture(t, fixtureSets())

	cfg, err := configfile.NewConfigStore(configDir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set(keyPrefix, "sat"))
	require.NoError(t, cfg.Set(keyMaxTags, int64(1)))

	out, err := executeRoot(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Set names starting with \"sat\":")
	assert.Contains(t, out, "Set numbers with at most 1 tag:")
}

func TestResolveReportOptions_WrongTypedConfigWarns(t *testing.T) {
	withFixture(t, fixtureSets())

	cfg, err := configfile.NewConfigStore(configDir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set(keyPrefix, int64(7)))
	require.NoError(t, cfg.Set(keyMaxTags, "five"))

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	prefix, maxTags := resolveReportOptions(rootCmd, cfg)
	assert.Equal(t, defaultPrefix, prefix)
	assert.Equal(t, defaultMaxTags, maxTags)
	assert.Contains(t, buf.String(), "report.prefix is not a string")
	assert.Contains(t, buf.String(), "report.max_tags is not an integer")
}

func TestOpenSetStore_UnknownBackend(t *testing.T) {
	withFixture(t, nil)

	originalBackend := backendFlag
	backendFlag = "postgres"
	t.Cleanup(func() { backendFlag = originalBackend })

	cfg := stubConfig{}
	_, err := openSetStore(cfg)
	assert.ErrorContains(t, err, "unknown dataset backend")
}

func TestOpenSetStore_PathRequired(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			originalBackend := backendFlag
			backendFlag = backend
			t.Cleanup(func() { backendFlag = originalBackend })

			_, err := openSetStore(stubConfig{})
			assert.Error(t, err)
		})
	}
}

// stubConfig is an empty driven.ConfigStore for backend selection tests.
type stubConfig struct{}

func (stubConfig) Get(string) (any, bool)  { return nil, false }
func (stubConfig) GetString(string) string { return "" }
func (stubConfig) Set(string, any) error   { return nil }
func (stubConfig) Path() string            { return "" }
