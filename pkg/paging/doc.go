// Package paging holds the interaction model of a paged container: which page
// is showing, how far the user has dragged, and how a finished drag resolves
// to a page.
//
// Nothing in this package renders or reads input. A host (see
// [github.com/macropower/doodles/pkg/ui/pager]) feeds it drag phases and
// layout widths, and reads back offsets to draw.
//
// # Gesture resolution
//
// A drag is a live, signed translation along the paging axis. Negative
// translations move content left, which reveals higher indices. When the
// gesture ends, the translation is converted to pages and subtracted from the
// current index:
//
//	raw := float64(current) - dragOffset/pageWidth
//	target := clamp(math.Round(raw), 0, count-1)
//
// Halves round away from zero ([math.Round]). Large translations may skip
// several pages. A zero page width resolves to the current page.
//
// # Errors
//
// There are no error returns. Out-of-range input is clamped, and input that
// cannot be interpreted (a zero page width, NaN offsets) is a no-op.
package paging
