// Package cli wires the cobra command tree for the brickset CLI.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/brickset-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/brickset-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/brickset-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driven"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driving"
	"github.com/custodia-labs/brickset-cli/internal/core/services"
	"github.com/custodia-labs/brickset-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Config keys and defaults for dataset selection and report knobs.
const (
	keyBackend = "dataset.backend"
	keyPath    = "dataset.path"
	keyPrefix  = "report.prefix"
	keyMaxTags = "report.max_tags"

	defaultPrefix  = "lava"
	defaultMaxTags = 5
)

var (
	verboseFlag bool
	configDir   string
	datasetPath string
	backendFlag string

	// queryService can be injected by tests; when nil the root command
	// builds it from config and flags.
	queryService driving.QueryService
)

var rootCmd = &cobra.Command{
	Use:   "brickset",
	Short: "Run the fixed report over the LEGO set dataset",
	Long: `brickset loads a static collection of LEGO set records and prints
a fixed sequence of report sections over them: filters, frequency
summaries and simple aggregates.

By default the dataset bundled into the binary is used. Point
--dataset at a JSON file, or select the sqlite backend, to report
on a different dataset.`,
	SilenceUsage: true,
	RunE:         runReport,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.brickset)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "path to a dataset file")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "dataset backend: embedded, json or sqlite")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openConfig opens the config store for the configured directory.
// Commands open it once and pass it down.
func openConfig() (driven.ConfigStore, error) {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return cfg, nil
}

// ensureQueryService returns the injected service or builds one from
// configuration and flags.
func ensureQueryService(cfg driven.ConfigStore) (driving.QueryService, error) {
	if queryService != nil {
		return queryService, nil
	}

	store, err := openSetStore(cfg)
	if err != nil {
		return nil, err
	}
	return services.NewQueryService(store), nil
}

// openSetStore selects and loads the dataset backend. Flags override
// config values; the bundled dataset is the fallback.
func openSetStore(cfg driven.ConfigStore) (driven.SetStore, error) {
	backend := backendFlag
	if backend == "" {
		backend = cfg.GetString(keyBackend)
	}
	path := datasetPath
	if path == "" {
		path = cfg.GetString(keyPath)
	}

	switch backend {
	case "", "embedded":
		if path != "" {
			logger.Info("dataset backend: json (%s)", path)
			return jsonfile.NewFromFile(path)
		}
		logger.Info("dataset backend: embedded")
		return jsonfile.NewBundled()
	case "json":
		if path == "" {
			return nil, errors.New("json backend requires --dataset or dataset.path")
		}
		logger.Info("dataset backend: json (%s)", path)
		return jsonfile.NewFromFile(path)
	case "sqlite":
		if path == "" {
			return nil, errors.New("sqlite backend requires --dataset or dataset.path")
		}
		logger.Info("dataset backend: sqlite (%s)", path)
		return sqlite.New(path)
	default:
		return nil, fmt.Errorf("unknown dataset backend %q", backend)
	}
}
