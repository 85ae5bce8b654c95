package pager

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/macropower/doodles/pkg/children"
	"github.com/macropower/doodles/pkg/paging"
)

// renderStrip draws the part of the page strip visible through a viewport
// of width x height at the given offset. Each page sits at column
// index*width of the strip; only the (at most two) pages overlapping the
// viewport are rendered. Slots outside the list are blank.
func renderStrip(items children.List, offset float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	left := int(math.Round(-offset))
	first := floorDiv(left, width)
	shift := left - first*width

	a := fitBlock(renderSlot(items, first, width, height), width, height)
	if shift == 0 {
		return strings.Join(a, "\n")
	}

	b := fitBlock(renderSlot(items, first+1, width, height), width, height)

	rows := make([]string, height)
	for y := range rows {
		rows[y] = ansi.Cut(a[y]+b[y], shift, shift+width)
	}

	return strings.Join(rows, "\n")
}

func renderSlot(items children.List, i, width, height int) string {
	item := items.At(i)
	if item == nil {
		return ""
	}

	return item.Render(width, height)
}

// fitBlock pads or truncates s to exactly width x height cells.
func fitBlock(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	out := make([]string, height)
	for y := range out {
		line := ""
		if y < len(lines) {
			line = ansi.Truncate(lines[y], width, "")
		}

		out[y] = line + strings.Repeat(" ", max(0, width-ansi.StringWidth(line)))
	}

	return out
}

// clampOffset keeps the strip between the first and last page.
func clampOffset(offset float64, count int, width float64) float64 {
	lo := paging.RestingOffset(max(0, count-1), width)

	return min(max(offset, lo), 0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
