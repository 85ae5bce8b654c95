package children

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Card is an [Item] with a bordered frame, a heading and a word wrapped body.
type Card struct {
	Heading string
	Body    string

	// Border styles the frame. The zero value draws a rounded border.
	Border *lipgloss.Style
	// HeadingStyle styles the heading line.
	HeadingStyle *lipgloss.Style
}

// Title implements [Titled].
func (c Card) Title() string {
	return c.Heading
}

// Render implements [Item]. The card keeps a one cell gutter on each side so
// that neighbouring pages do not touch while dragging.
func (c Card) Render(width, height int) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if c.Border != nil {
		border = *c.Border
	}

	heading := lipgloss.NewStyle().Bold(true)
	if c.HeadingStyle != nil {
		heading = *c.HeadingStyle
	}

	outerW := width - 2
	outerH := height
	innerW := outerW - border.GetHorizontalFrameSize()
	innerH := outerH - border.GetVerticalFrameSize()

	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	lines := make([]string, 0, innerH)
	if c.Heading != "" {
		lines = append(lines, heading.Render(truncate.StringWithTail(c.Heading, uint(innerW), "…")), "")
	}

	lines = append(lines, strings.Split(wordwrap.String(c.Body, innerW), "\n")...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	body := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxWidth(innerW).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().Padding(0, 1).Render(border.Render(body))
}
