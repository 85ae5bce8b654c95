// Package overlay draws a box of text centered on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/macropower/doodles/pkg/ui/theme"
)

const (
	defaultMinWidth = 16
	// Rows of the background always left visible above and below.
	verticalMargin = 8
)

type Overlay struct {
	theme    *theme.Theme
	hint     string
	width    int
	height   int
	minWidth int
}

func New(t *theme.Theme, opts ...OverlayOpt) *Overlay {
	o := &Overlay{
		theme:    t,
		minWidth: defaultMinWidth,
		hint:     "output truncated",
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type OverlayOpt func(*Overlay)

// WithMinWidth sets the minimum width of the overlay (in cells).
func WithMinWidth(minWidth int) OverlayOpt {
	return func(o *Overlay) {
		o.minWidth = minWidth
	}
}

// WithTruncatedHint sets the line shown below content that did not fit.
func WithTruncatedHint(hint string) OverlayOpt {
	return func(o *Overlay) {
		o.hint = hint
	}
}

// SetSize sets the size of the view on which the overlay is placed.
func (o *Overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// Place draws fg, wrapped and styled with style, centered on top of bg. The
// overlay takes widthFraction of the view width, bounded by the minimum width
// and the view width.
func (o *Overlay) Place(bg, fg string, widthFraction float64, style lipgloss.Style) string {
	width := clamp(int(float64(o.width)*widthFraction), o.minWidth, o.width)
	// Leave room for the style's frame, so the box is exactly width wide.
	textWidth := max(1, width-style.GetHorizontalFrameSize())

	fgLines := strings.Split(cellbuf.Wrap(fg, textWidth, " /-"), "\n")

	maxHeight := o.height - verticalMargin
	switch {
	case maxHeight < 1:
		fgLines = nil
	case len(fgLines) > maxHeight:
		hint := ansi.Truncate(o.hint, max(0, textWidth), o.theme.Ellipsis)
		fgLines = append(fgLines[:maxHeight], "", o.theme.SubtleStyle.Render(hint))
	}

	box := style.Width(textWidth + style.GetHorizontalPadding()).Render(strings.Join(fgLines, "\n"))

	return compose(bg, box)
}

// compose writes fg over the center of bg, cell by cell.
func compose(bg, fg string) string {
	fgLines, fgWidth := lines(fg)
	bgLines, bgWidth := lines(bg)

	x := clamp(bgWidth-fgWidth, 0, bgWidth) / 2
	y := clamp(len(bgLines)-len(fgLines), 0, len(bgLines)) / 2

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}

		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)

			continue
		}

		left := ansi.Truncate(bgLine, x, "")
		b.WriteString(left)

		pos := ansi.StringWidth(left)
		if pos < x {
			b.WriteString(strings.Repeat(" ", x-pos))
			pos = x
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.StringWidth(fgLine)

		if lineWidth := ansi.StringWidth(bgLine); pos < lineWidth {
			b.WriteString(ansi.TruncateLeft(bgLine, pos, ""))
		}
	}

	return b.String()
}

func clamp(v, lower, upper int) int {
	return min(max(v, lower), upper)
}

// lines splits s into lines and returns them with the width of the widest.
func lines(s string) ([]string, int) {
	ls := strings.Split(s, "\n")

	widest := 0
	for _, l := range ls {
		widest = max(widest, ansi.StringWidth(l))
	}

	return ls, widest
}
