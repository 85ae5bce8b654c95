package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	var b strings.Builder

	if m.pageHeight > 0 {
		b.WriteString(m.stripView())
		b.WriteString("\n")
	}

	b.WriteString(m.indicatorView())
	b.WriteString("\n")
	b.WriteString(m.statusBarView())

	if m.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.helpRenderer.Render(m.width))
	}

	return b.String()
}

func (m Model) stripView() string {
	offset := m.displayOffset()
	if !*m.settings.RubberBand {
		offset = clampOffset(offset, m.state.Count(), m.pageWidth())
	}

	return renderStrip(m.items, offset, m.width, m.pageHeight)
}

func (m Model) indicatorView() string {
	th := m.cm.Theme

	row := m.indicator.Render(m.state.Index(), m.state.Count(), m.width, func(marker string, active bool) string {
		if active {
			return th.IndicatorActiveStyle.Render(marker)
		}

		return th.IndicatorInactiveStyle.Render(marker)
	})

	row = ansi.Truncate(row, m.width, "")

	return row + strings.Repeat(" ", max(0, m.width-ansi.StringWidth(row)))
}

func (m Model) statusBarView() string {
	count := m.state.Count()

	note := m.title
	progress := "0/0"

	if count > 0 {
		idx := m.state.Index()
		note = fmt.Sprintf("%s: %s", m.title, m.items.Title(idx))
		progress = fmt.Sprintf("%d/%d", idx+1, count)
	}

	return m.cm.GetStatusBar().RenderWithNote(note, progress)
}
