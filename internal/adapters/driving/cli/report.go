package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/brickset-cli/internal/core/domain"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driven"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driving"
	"github.com/custodia-labs/brickset-cli/internal/logger"
)

var (
	reportPrefix  string
	reportMaxTags int
)

func init() {
	rootCmd.Flags().StringVar(&reportPrefix, "prefix", defaultPrefix, "prefix for the starts-with section")
	rootCmd.Flags().IntVar(&reportMaxTags, "max-tags", defaultMaxTags, "tag threshold for the max-tags section")
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}

	svc, err := ensureQueryService(cfg)
	if err != nil {
		return err
	}

	prefix, maxTags := resolveReportOptions(cmd, cfg)
	printReport(cmd, svc, prefix, maxTags)
	return nil
}

// resolveReportOptions applies flag > config > default precedence to
// the report knobs. Config values of the wrong type are skipped with
// a warning rather than silently winning over the default.
func resolveReportOptions(cmd *cobra.Command, cfg driven.ConfigStore) (string, int) {
	prefix := reportPrefix
	maxTags := reportMaxTags

	if !cmd.Flags().Changed("prefix") {
		if v, ok := cfg.Get(keyPrefix); ok {
			if s, isString := v.(string); isString {
				prefix = s
			} else {
				logger.Warn("config %s is not a string, using %q", keyPrefix, prefix)
			}
		}
	}
	if !cmd.Flags().Changed("max-tags") {
		if v, ok := cfg.Get(keyMaxTags); ok {
			switch n := v.(type) {
			case int64:
				maxTags = int(n)
			case int:
				maxTags = n
			default:
				logger.Warn("config %s is not an integer, using %d", keyMaxTags, maxTags)
			}
		}
	}
	return prefix, maxTags
}

// printReport writes every report section to the command output.
// Map-shaped sections are printed with sorted keys so the output is
// stable run to run.
func printReport(cmd *cobra.Command, svc driving.QueryService, prefix string, maxTags int) {
	cmd.Println("Set names starting and ending with the same letter:")
	printLines(cmd, svc.NamesWithSameFirstAndLastLetter())

	cmd.Println()
	cmd.Printf("Set names starting with %q:\n", prefix)
	printLines(cmd, svc.NamesStartingWith(prefix))

	cmd.Println()
	tagWord := "tags"
	if maxTags == 1 {
		tagWord = "tag"
	}
	cmd.Printf("Set numbers with at most %d %s:\n", maxTags, tagWord)
	printLines(cmd, svc.NumbersWithAtMostTags(maxTags))

	cmd.Println()
	cmd.Println("Packaging type summary:")
	summary := svc.PackagingSummary()
	keys := make([]string, 0, len(summary))
	for p := range summary {
		keys = append(keys, p.String())
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		cmd.Println("  (none)")
	}
	for _, k := range keys {
		cmd.Printf("  %s: %d\n", k, summary[domain.PackagingType(k)])
	}

	cmd.Println()
	cmd.Println("Sum of all pieces:")
	if total, ok := svc.SumOfPieces(); ok {
		cmd.Printf("  %d\n", total)
	} else {
		cmd.Println("  (no sets)")
	}

	cmd.Println()
	cmd.Println("Do all sets have at most 500 pieces?")
	cmd.Printf("  %t\n", svc.AllSetsWithinPieceLimit())

	cmd.Println()
	cmd.Println("Sorted distinct tags of sets with no subtheme:")
	printLines(cmd, svc.TagsWithoutSubtheme())

	cmd.Println()
	cmd.Println("Theme with the longest name:")
	if theme, ok := svc.ThemeWithLongestName(); ok {
		cmd.Printf("  %s\n", theme)
	} else {
		cmd.Println("  (no sets)")
	}

	cmd.Println()
	cmd.Println("Number of sets per theme:")
	counts := svc.SetsPerTheme()
	themes := make([]string, 0, len(counts))
	for theme := range counts {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	if len(themes) == 0 {
		cmd.Println("  (none)")
	}
	for _, theme := range themes {
		cmd.Printf("  %s: %d\n", theme, counts[theme])
	}

	cmd.Println()
	cmd.Println("Themes with their distinct subthemes:")
	subthemes := svc.SubthemesByTheme()
	themes = themes[:0]
	for theme := range subthemes {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	if len(themes) == 0 {
		cmd.Println("  (none)")
	}
	for _, theme := range themes {
		if len(subthemes[theme]) == 0 {
			cmd.Printf("  %s: (none)\n", theme)
			continue
		}
		cmd.Printf("  %s: %s\n", theme, strings.Join(subthemes[theme], ", "))
	}
}

func printLines(cmd *cobra.Command, lines []string) {
	if len(lines) == 0 {
		cmd.Println("  (none)")
		return
	}
	for _, line := range lines {
		cmd.Println("  " + line)
	}
}
