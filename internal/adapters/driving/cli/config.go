package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent settings",
	Long: `View and change the persistent brickset settings.

Available keys:
  dataset.backend - dataset backend: embedded, json or sqlite
  dataset.path    - path to the dataset file
  report.prefix   - prefix for the name filter section
  report.max_tags - tag cap for the numbers filter section`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys lists the settings brickset understands, in display order.
var configKeys = []string{keyBackend, keyPath, keyPrefix, keyMaxTags}

func knownConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}

	for _, key := range configKeys {
		if v, ok := cfg.Get(key); ok {
			cmd.Printf("%s = %v\n", key, v)
		} else {
			cmd.Printf("%s = (not set)\n", key)
		}
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !knownConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	cfg, err := openConfig()
	if err != nil {
		return err
	}

	v, ok := cfg.Get(key)
	if !ok {
		cmd.Println("(not set)")
		return nil
	}
	cmd.Printf("%v\n", v)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	cfg, err := openConfig()
	if err != nil {
		return err
	}

	value, err := parseConfigValue(key, raw)
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}

// parseConfigValue validates a raw value for a key and converts it to
// the type the key is stored as.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case keyBackend:
		switch raw {
		case "embedded", "json", "sqlite":
			return raw, nil
		default:
			return nil, fmt.Errorf("unknown dataset backend %q", raw)
		}
	case keyPath, keyPrefix:
		return raw, nil
	case keyMaxTags:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer: %q", key, raw)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s must not be negative: %d", key, n)
		}
		return int64(n), nil
	default:
		return nil, fmt.Errorf("unknown config key %q", key)
	}
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}
	cmd.Println(cfg.Path())
	return nil
}
