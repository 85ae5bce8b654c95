package gallery

import (
	"sort"

	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"
)

type filteredMsg []Entry

// filterEntries ranks entries against the current filter value.
func filterEntries(m Model) tea.Cmd {
	value := m.filterInput.Value()
	entries := m.entries

	return func() tea.Msg {
		if value == "" {
			return filteredMsg(entries)
		}

		targets := make([]string, 0, len(entries))
		for _, e := range entries {
			targets = append(targets, e.filterValue)
		}

		ranks := fuzzy.Find(value, targets)
		sort.Stable(ranks)

		filtered := make([]Entry, 0, len(ranks))
		for _, r := range ranks {
			filtered = append(filtered, entries[r.Index])
		}

		return filteredMsg(filtered)
	}
}
