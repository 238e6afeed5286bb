// Package tui provides the interactive dataset browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/brickset-cli/internal/core/domain"
)

// setItem adapts a LegoSet to the bubbles list item interface.
type setItem struct {
	set domain.LegoSet
}

// Title renders the list line for the set.
func (i setItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.set.Name, i.set.Number)
}

// Description renders the detail line under the title.
func (i setItem) Description() string {
	theme := i.set.Theme
	if i.set.HasSubtheme() {
		theme += " / " + *i.set.Subtheme
	}
	return fmt.Sprintf("%s - %d pieces - %s", theme, i.set.Pieces, i.set.Packaging)
}

// FilterValue makes "/" filter on the set name.
func (i setItem) FilterValue() string {
	return i.set.Name
}

// BrowseModel is the bubbletea model for the browse command.
type BrowseModel struct {
	list list.Model
}

// NewBrowseModel creates a browse model over the given sets.
func NewBrowseModel(sets []domain.LegoSet) BrowseModel {
	items := make([]list.Item, len(sets))
	for idx := range sets {
		items[idx] = setItem{set: sets[idx]}
	}

	// Start with a sane size; the first WindowSizeMsg replaces it.
	l := list.New(items, list.NewDefaultDelegate(), 80, 24)
	l.Title = fmt.Sprintf("LEGO sets (%d)", len(sets))
	l.Styles.Title = titleStyle

	return BrowseModel{list: l}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, filtering and quitting.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		// "q" quits unless the user is typing a filter.
		if msg.String() == "q" && m.list.FilterState() != list.Filtering {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m BrowseModel) View() string {
	return docStyle.Render(m.list.View())
}
