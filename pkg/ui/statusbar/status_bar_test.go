package statusbar_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/doodles/pkg/ui/statusbar"
	"github.com/macropower/doodles/pkg/ui/theme"
)

func TestRenderWithNote(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		message  string
		style    statusbar.Style
		title    string
		progress string
		width    int
		contains []string
		excludes []string
	}{
		"normal": {
			width:    100,
			title:    "Pager",
			progress: "3/10",
			contains: []string{"doodles", "Pager", "3/10", "? Help"},
		},
		"status message": {
			width:    100,
			message:  "copied page",
			style:    statusbar.StyleSuccess,
			title:    "Pager",
			progress: "1/4",
			contains: []string{"copied page", "1/4", "? Help"},
			excludes: []string{"Pager"},
		},
		"error message": {
			width:    100,
			message:  "clipboard unavailable",
			style:    statusbar.StyleError,
			title:    "Pager",
			contains: []string{"clipboard unavailable", "! Error"},
		},
		"narrow": {
			width:    50,
			title:    "a-very-long-doodle-name-that-should-be-truncated",
			progress: "1/1",
			contains: []string{"1/1", "? Help", "…"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := statusbar.NewStatusBarRenderer(theme.Default, tc.width,
				statusbar.WithMessage(tc.message, tc.style))

			out := ansi.Strip(r.RenderWithNote(tc.title, tc.progress))
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderWithNoteFillsWidth(t *testing.T) {
	t.Parallel()

	for _, width := range []int{60, 80, 120} {
		r := statusbar.NewStatusBarRenderer(theme.Default, width)
		assert.Equal(t, width, ansi.StringWidth(r.RenderWithNote("Pager", "2/5")))
	}
}
