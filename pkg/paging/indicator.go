package paging

import "github.com/charmbracelet/x/ansi"

// Indicator describes the row of page markers shown under the strip.
type Indicator struct {
	Active   string
	Inactive string
	Gap      int
}

// DefaultIndicator returns an [Indicator] using filled and hollow dots.
func DefaultIndicator() Indicator {
	return Indicator{
		Active:   "●",
		Inactive: "○",
		Gap:      1,
	}
}

// MarkerWidth returns the cell width of one marker.
func (ind Indicator) MarkerWidth() int {
	return max(1, ansi.StringWidth(ind.Active), ansi.StringWidth(ind.Inactive))
}

// Width returns the number of cells needed to draw count markers.
func (ind Indicator) Width(count int) int {
	if count <= 0 {
		return 0
	}

	return count*ind.MarkerWidth() + (count-1)*max(0, ind.Gap)
}

// Layout returns the starting column of each marker, centered in width. When
// the markers do not fit they start at column 0 and overflow to the right.
func (ind Indicator) Layout(count, width int) []int {
	if count <= 0 {
		return nil
	}

	mw := ind.MarkerWidth()
	step := mw + max(0, ind.Gap)
	start := max(0, (width-ind.Width(count))/2)

	cols := make([]int, count)
	for i := range cols {
		cols[i] = start + i*step
	}

	return cols
}

// HitTest maps column x to the marker under it. Clicks in a gap or outside
// the markers miss.
func (ind Indicator) HitTest(x, count, width int) (int, bool) {
	mw := ind.MarkerWidth()
	for i, col := range ind.Layout(count, width) {
		if x >= col && x < col+mw {
			return i, true
		}
	}

	return 0, false
}

// Render draws the markers for count pages with index highlighted, using
// style to wrap each marker. A nil style draws glyphs as-is.
func (ind Indicator) Render(index, count, width int, style func(marker string, active bool) string) string {
	cols := ind.Layout(count, width)
	if len(cols) == 0 {
		return ""
	}

	mw := ind.MarkerWidth()
	out := make([]byte, 0, width*2)
	pos := 0
	for i, col := range cols {
		for ; pos < col; pos++ {
			out = append(out, ' ')
		}

		glyph := ind.Inactive
		if i == index {
			glyph = ind.Active
		}

		// Pad narrow glyphs so columns stay aligned with Layout.
		for w := ansi.StringWidth(glyph); w < mw; w++ {
			glyph += " "
		}
		if style != nil {
			glyph = style(glyph, i == index)
		}

		out = append(out, glyph...)
		pos += mw
	}

	return string(out)
}
