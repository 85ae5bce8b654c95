package paging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/doodles/pkg/paging"
)

func TestIndicatorLayout(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		ind   paging.Indicator
		count int
		width int
		want  []int
	}{
		"centered": {
			ind: paging.DefaultIndicator(), count: 3, width: 11, want: []int{3, 5, 7},
		},
		"no gap": {
			ind: paging.Indicator{Active: "#", Inactive: "-"}, count: 4, width: 8, want: []int{2, 3, 4, 5},
		},
		"too narrow": {
			ind: paging.DefaultIndicator(), count: 5, width: 4, want: []int{0, 2, 4, 6, 8},
		},
		"wide glyphs": {
			ind: paging.Indicator{Active: "[x]", Inactive: "[ ]", Gap: 1}, count: 2, width: 7, want: []int{0, 4},
		},
		"empty": {
			ind: paging.DefaultIndicator(), count: 0, width: 20, want: nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.ind.Layout(tc.count, tc.width))
		})
	}
}

func TestIndicatorHitTest(t *testing.T) {
	t.Parallel()

	ind := paging.DefaultIndicator()

	tcs := map[string]struct {
		x, count, width int
		want            int
		hit             bool
	}{
		"first marker":  {x: 3, count: 3, width: 11, want: 0, hit: true},
		"last marker":   {x: 7, count: 3, width: 11, want: 2, hit: true},
		"gap":           {x: 4, count: 3, width: 11, hit: false},
		"left margin":   {x: 0, count: 3, width: 11, hit: false},
		"right margin":  {x: 10, count: 3, width: 11, hit: false},
		"empty":         {x: 0, count: 0, width: 11, hit: false},
		"single marker": {x: 5, count: 1, width: 11, want: 0, hit: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := ind.HitTest(tc.x, tc.count, tc.width)
			assert.Equal(t, tc.hit, ok)
			if tc.hit {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestIndicatorRender(t *testing.T) {
	t.Parallel()

	ind := paging.DefaultIndicator()

	assert.Equal(t, "   ○ ● ○", ind.Render(1, 3, 11, nil))
	assert.Empty(t, ind.Render(0, 0, 11, nil))

	styled := ind.Render(0, 2, 3, func(m string, active bool) string {
		if active {
			return "<" + m + ">"
		}

		return m
	})
	assert.Equal(t, "<●> ○", styled)
}

func TestIndicatorTapJump(t *testing.T) {
	t.Parallel()

	ind := paging.DefaultIndicator()
	s := paging.NewState(3)

	x := ind.Layout(3, 20)[2]
	j, ok := ind.HitTest(x, s.Count(), 20)
	assert.True(t, ok)
	assert.Equal(t, 2, s.SetIndex(j))
	assert.Equal(t, 2, s.Index())
}
