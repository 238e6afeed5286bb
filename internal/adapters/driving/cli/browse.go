package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/brickset-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the dataset interactively",
	Long: `Launch an interactive list of the loaded LEGO sets.

Controls:
  ↑/k, ↓/j - Navigate sets
  /        - Filter by name
  Esc      - Clear filter
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}

	svc, err := ensureQueryService(cfg)
	if err != nil {
		return err
	}

	model := tui.NewBrowseModel(svc.Sets())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running browse UI: %w", err)
	}
	return nil
}
