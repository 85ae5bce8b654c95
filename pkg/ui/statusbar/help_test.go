package statusbar_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/doodles/pkg/keys"
	"github.com/macropower/doodles/pkg/ui/statusbar"
	"github.com/macropower/doodles/pkg/ui/theme"
)

func TestHelpRenderer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		binds      []keys.KeyBind
		wantHeight int
	}{
		"one row": {
			binds:      []keys.KeyBind{keys.NewBind("next page", keys.New("l"))},
			wantHeight: 3,
		},
		"three rows": {
			binds: []keys.KeyBind{
				keys.NewBind("previous page", keys.New("h")),
				keys.NewBind("next page", keys.New("l")),
				keys.NewBind("quit", keys.New("q")),
			},
			wantHeight: 5,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			kbr := &keys.KeyBindRenderer{}
			kbr.AddColumn(tc.binds...)

			r := statusbar.NewHelpRenderer(theme.Default, kbr)
			view := ansi.Strip(r.Render(80))

			for _, kb := range tc.binds {
				assert.Contains(t, view, kb.Description)
			}
			assert.Equal(t, tc.wantHeight, r.CalculateHelpHeight())
		})
	}
}
