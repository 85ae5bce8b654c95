package gallery

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/macropower/doodles/pkg/ui/theme"
)

// Entry is one destination listed in the gallery.
type Entry struct {
	// ID is passed back in [OpenMsg] and must be unique within a gallery.
	ID    string
	Title string
	Desc  string

	filterValue string
}

func (e *Entry) buildFilterValue() {
	e.filterValue = normalizeOrKeep(e.Title) + normalizeOrKeep(e.Desc)
}

// Normalize strips diacritics so that "Café" matches "cafe".
func Normalize(in string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, in)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	return out, nil
}

func normalizeOrKeep(s string) string {
	out, err := Normalize(s)
	if err != nil {
		slog.Error("normalize filter value",
			slog.String("value", s),
			slog.Any("err", err),
		)

		return s
	}

	return out
}

// entryStyle is the rendered parts of one entry row.
type entryStyle struct {
	gutter string
	title  string
	desc   string
}

func (m Model) renderEntry(b *strings.Builder, index int, e Entry) {
	var (
		t          = m.cm.Theme
		truncateTo = uint(max(0, m.cm.Width-listHorizontalPadding*2)) //nolint:gosec // Uses max.

		title = truncate.StringWithTail(e.Title, truncateTo, t.Ellipsis)
		desc  = truncate.StringWithTail(e.Desc, truncateTo, t.Ellipsis)

		isFiltering = m.FilterState == Filtering
		filterValue = m.filterInput.Value()
		single      = isFiltering && len(m.visibleEntries()) == 1

		// While typing a filter nothing is selected, unless there is only one
		// result, since enter will open it.
		highlight  = (index == m.cursor && !isFiltering) || single
		showFilter = m.FilterState == FilterApplied || single
	)

	var s entryStyle
	if highlight {
		s = selectedEntryStyle(t, title, desc, showFilter, filterValue)
	} else {
		s = unselectedEntryStyle(t, title, desc, isFiltering, filterValue)
	}

	fmt.Fprintf(b, "%s %s\n", s.gutter, s.title)
	fmt.Fprintf(b, "%s %s", s.gutter, s.desc)
}

func selectedEntryStyle(t *theme.Theme, title, desc string, showFilter bool, filterValue string) entryStyle {
	s := entryStyle{gutter: t.SelectedStyle.Render("│")}

	if showFilter {
		s.title = styleFilteredText(title, filterValue, t.SelectedStyle, t.SelectedStyle.Underline(true))
		s.desc = styleFilteredText(desc, filterValue, t.SelectedSubtleStyle, t.SelectedSubtleStyle.Underline(true))

		return s
	}

	s.title = t.SelectedStyle.Render(title)
	s.desc = t.SelectedSubtleStyle.Render(desc)

	return s
}

func unselectedEntryStyle(t *theme.Theme, title, desc string, isFiltering bool, filterValue string) entryStyle {
	s := entryStyle{gutter: " "}

	if isFiltering && filterValue == "" {
		s.title = t.SubtleStyle.Render(title)
		s.desc = t.SubtleStyle.Render(desc)

		return s
	}

	s.title = styleFilteredText(title, filterValue, t.GenericTextStyle, t.GenericTextStyle.Underline(true))
	s.desc = styleFilteredText(desc, filterValue, t.SubtleStyle, t.SubtleStyle.Underline(true))

	return s
}

// styleFilteredText underlines the runes of haystack that fuzzy-match needle.
func styleFilteredText(haystack, needle string, defaultStyle, matchedStyle lipgloss.Style) string {
	matches := fuzzy.Find(needle, []string{normalizeOrKeep(haystack)})
	if len(matches) == 0 {
		return defaultStyle.Render(haystack)
	}

	matched := make(map[int]bool, len(matches[0].MatchedIndexes))
	for _, i := range matches[0].MatchedIndexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(haystack) {
		if matched[i] {
			b.WriteString(matchedStyle.Render(string(r)))
		} else {
			b.WriteString(defaultStyle.Render(string(r)))
		}
	}

	return b.String()
}
