package demos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/pkg/ui/demos"
	"github.com/macropower/doodles/pkg/ui/theme"
)

func TestDoodles(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		titles []string
	}{
		"pager": {
			titles: []string{
				"Page Item 0", "Page Item 1", "Page Item 2", "Page Item 3", "Page Item 4",
				"Page Item 5", "Page Item 6", "Page Item 7", "Page Item 8", "Page Item 9",
			},
		},
		"band": {
			titles: []string{"John", "Paul", "George", "Ringo"},
		},
		"single": {
			titles: []string{"Only Page"},
		},
	}

	for id, tc := range tcs {
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			d, ok := demos.Find(id)
			require.True(t, ok)

			pages := d.Pages(theme.Default)
			assert.Equal(t, tc.titles, pages.Titles())

			for i := range pages.Len() {
				assert.NotEmpty(t, pages.At(i).Render(40, 12))
			}
		})
	}
}

func TestEntries(t *testing.T) {
	t.Parallel()

	entries := demos.Entries()
	require.Len(t, entries, len(demos.All()))

	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate id %q", e.ID)
		seen[e.ID] = true

		assert.NotEmpty(t, e.Title)
	}

	_, ok := demos.Find("clock")
	assert.False(t, ok)
}
