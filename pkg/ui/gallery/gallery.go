// Package gallery implements the index of doodles: a filterable, paginated
// list of destinations. Opening an entry emits an [OpenMsg]; building and
// showing the destination is up to the host.
package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/doodles/pkg/keys"
	"github.com/macropower/doodles/pkg/ui/common"
	"github.com/macropower/doodles/pkg/ui/statusbar"
	"github.com/macropower/doodles/pkg/ui/theme"
)

const (
	listIndent            = 1
	listTopPadding        = 1
	listBottomPadding     = 6 // Pagination and gaps, but not help.
	listHorizontalPadding = 6
	entryHeight           = 3
)

// OpenMsg is sent when the user opens an entry.
type OpenMsg struct{ Entry Entry }

// FilterState is the current filtering state of the gallery.
type FilterState int

const (
	Unfiltered    FilterState = iota // No filter set.
	Filtering                        // User is actively setting a filter.
	FilterApplied                    // A filter is applied and user is not editing filter.
)

type Model struct {
	cm           *common.CommonModel
	kb           *KeyBinds
	helpRenderer *statusbar.HelpRenderer
	entries      []Entry
	// Entries matching the filter. Only meaningful while a filter is set.
	filtered    []Entry
	filterInput textinput.Model
	paginator   paginator.Model
	title       string
	cursor      int
	helpHeight  int
	FilterState FilterState
	ShowHelp    bool
}

type Opt func(*Model)

// WithKeyBinds sets the gallery key bindings. Missing bindings get defaults.
func WithKeyBinds(kb *KeyBinds) Opt {
	return func(m *Model) {
		m.kb = kb
	}
}

// WithTitle sets the title shown in the status bar.
func WithTitle(title string) Opt {
	return func(m *Model) {
		m.title = title
	}
}

func New(cm *common.CommonModel, entries []Entry, opts ...Opt) Model {
	m := Model{
		cm:    cm,
		title: "Doodles",
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.kb == nil {
		m.kb = &KeyBinds{}
	}

	m.kb.EnsureDefaults()

	m.entries = make([]Entry, len(entries))
	for i, e := range entries {
		e.buildFilterValue()
		m.entries[i] = e
	}

	fi := textinput.New()
	fi.Prompt = "Find:"
	fi.PromptStyle = cm.Theme.FilterStyle.MarginRight(1)
	fi.Cursor.Style = cm.Theme.CursorStyle.MarginRight(1)
	m.filterInput = fi

	m.paginator = newPaginator(cm.Theme)

	ckb := cm.KeyBinds
	kbr := &keys.KeyBindRenderer{}
	kbr.AddColumn(
		*ckb.Up,
		*ckb.Down,
		*ckb.Left,
		*ckb.Right,
	)
	kbr.AddColumn(m.kb.GetKeyBinds()...)
	kbr.AddColumn(
		*ckb.Escape,
		*ckb.Error,
		*ckb.Help,
		*ckb.Quit,
	)
	m.helpRenderer = statusbar.NewHelpRenderer(cm.Theme, kbr)

	m.updatePagination()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case filteredMsg:
		if m.FilterState == Unfiltered {
			// Stale result of a filter that was reset.
			return m, nil
		}

		m.filtered = msg
		m.cursor = 0
		m.paginator.Page = 0
		m.updatePagination()

		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

		return m, nil
	}

	if m.FilterState == Filtering {
		return m.updateFiltering(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) View() string {
	top := lipgloss.JoinVertical(lipgloss.Top,
		m.headerView(),
		m.entriesView(),
	)

	availableHeight := m.cm.Height - lipgloss.Height(top)
	if !m.ShowHelp {
		availableHeight++
	}

	bottom := lipgloss.PlaceVertical(
		availableHeight,
		lipgloss.Bottom,
		lipgloss.JoinVertical(lipgloss.Top,
			lipgloss.PlaceHorizontal(m.cm.Width, lipgloss.Left, m.paginationView()),
			m.statusBarView(),
			m.helpView(),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Top, top, bottom)
}

func (m *Model) SetSize(width, height int) {
	m.cm.Width = width
	m.cm.Height = height

	if m.ShowHelp {
		m.helpHeight = m.helpRenderer.CalculateHelpHeight()
	}

	m.filterInput.Width = max(0, width-listHorizontalPadding*2-ansi.StringWidth(m.filterInput.Prompt))

	m.updatePagination()
}

// Entries returns every entry in the gallery, in order.
func (m Model) Entries() []Entry {
	return m.entries
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	visible := m.visibleEntries()

	i := m.paginator.Page*m.paginator.PerPage + m.cursor
	if i < 0 || i >= len(visible) {
		return Entry{}, false
	}

	return visible[i], true
}

// FilterApplied reports whether a filter is being typed or applied.
func (m Model) FilterApplied() bool {
	return m.FilterState != Unfiltered
}

func (m *Model) ResetFiltering() {
	m.FilterState = Unfiltered
	m.filterInput.Reset()
	m.filterInput.Blur()
	m.filtered = nil
	m.cursor = 0
	m.paginator.Page = 0

	m.updatePagination()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	ckb := m.cm.KeyBinds
	key := msg.String()

	switch {
	case ckb.Up.Match(key):
		m.moveCursorUp()

	case ckb.Down.Match(key):
		m.moveCursorDown()

	case m.kb.PageUp.Match(key):
		m.cursor = 0

	case m.kb.PageDown.Match(key):
		m.cursor = max(0, m.itemsOnPage()-1)

	case ckb.Left.Match(key), ckb.Prev.Match(key):
		m.paginator.PrevPage()
		m.enforcePaginationBounds()

	case ckb.Right.Match(key), ckb.Next.Match(key):
		m.paginator.NextPage()
		m.enforcePaginationBounds()

	case m.kb.Home.Match(key):
		m.paginator.Page = 0
		m.cursor = 0

	case m.kb.End.Match(key):
		m.paginator.Page = max(0, m.paginator.TotalPages-1)
		m.cursor = max(0, m.itemsOnPage()-1)

	case m.kb.Open.Match(key):
		if e, ok := m.Selected(); ok {
			return m, open(e)
		}

	case m.kb.Find.Match(key):
		return m, m.startFiltering()

	case ckb.Escape.Match(key):
		if m.FilterApplied() {
			m.ResetFiltering()
		}

	case ckb.Help.Match(key):
		m.toggleHelp()
	}

	return m, nil
}

func (m Model) updateFiltering(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		var (
			cmd     tea.Cmd
			handled bool
		)

		m, cmd, handled = m.handleFilterKey(msg.String())
		if handled {
			return m, cmd
		}
	}

	before := m.filterInput.Value()

	var cmd tea.Cmd

	m.filterInput, cmd = m.filterInput.Update(msg)
	cmds = append(cmds, cmd)

	if m.filterInput.Value() != before {
		cmds = append(cmds, filterEntries(m))
	}

	m.updatePagination()

	return m, tea.Batch(cmds...)
}

// handleFilterKey applies or abandons the filter being typed. It reports
// whether the key was consumed.
func (m Model) handleFilterKey(key string) (Model, tea.Cmd, bool) {
	ckb := m.cm.KeyBinds

	switch {
	case ckb.Escape.Match(key):
		m.ResetFiltering()

		return m, nil, true

	case ckb.Up.Match(key),
		ckb.Down.Match(key),
		ckb.Next.Match(key),
		ckb.Prev.Match(key),
		m.kb.Open.Match(key):
		visible := m.visibleEntries()

		switch {
		case len(visible) == 0, m.filterInput.Value() == "":
			m.ResetFiltering()

		case len(visible) == 1:
			// Only one match, open it directly.
			m.ResetFiltering()

			return m, open(visible[0]), true

		default:
			m.filterInput.Blur()
			m.FilterState = FilterApplied
		}

		return m, nil, true
	}

	return m, nil, false
}

func (m *Model) startFiltering() tea.Cmd {
	m.filtered = m.entries
	m.paginator.Page = 0
	m.cursor = 0

	m.FilterState = Filtering
	m.filterInput.CursorEnd()

	m.updatePagination()

	return m.filterInput.Focus()
}

func open(e Entry) tea.Cmd {
	return func() tea.Msg {
		return OpenMsg{Entry: e}
	}
}

func (m *Model) toggleHelp() {
	m.ShowHelp = !m.ShowHelp
	m.SetSize(m.cm.Width, m.cm.Height)
}

func (m Model) visibleEntries() []Entry {
	if m.FilterApplied() {
		return m.filtered
	}

	return m.entries
}

func (m *Model) updatePagination() {
	helpHeight := 0
	if m.ShowHelp {
		helpHeight = m.helpHeight + 1
	}

	availableHeight := m.cm.Height - helpHeight - listTopPadding - listBottomPadding + 1

	m.paginator.PerPage = max(1, availableHeight/entryHeight)
	m.paginator.SetTotalPages(max(1, len(m.visibleEntries())))

	if m.paginator.Page > m.paginator.TotalPages-1 {
		m.paginator.Page = max(0, m.paginator.TotalPages-1)
	}

	m.enforcePaginationBounds()
}

func (m Model) itemsOnPage() int {
	return m.paginator.ItemsOnPage(len(m.visibleEntries()))
}

func (m *Model) moveCursorUp() {
	m.cursor--
	if m.cursor >= 0 {
		return
	}

	if m.paginator.Page == 0 {
		m.cursor = 0

		return
	}

	m.paginator.PrevPage()
	m.cursor = max(0, m.itemsOnPage()-1)
}

func (m *Model) moveCursorDown() {
	n := m.itemsOnPage()

	m.cursor++
	if m.cursor < n {
		return
	}

	if !m.paginator.OnLastPage() {
		m.paginator.NextPage()
		m.cursor = 0

		return
	}

	m.cursor = max(0, n-1)
}

func (m *Model) enforcePaginationBounds() {
	if n := m.itemsOnPage(); m.cursor > n-1 {
		m.cursor = max(0, n-1)
	}
}

func (m Model) headerView() string {
	var header string

	switch m.FilterState {
	case Filtering:
		header = m.cm.Theme.GenericTextStyle.Render(m.filterInput.View())

	case FilterApplied:
		divider := m.cm.Theme.SubtleStyle.Render(" │ ")
		header = m.cm.Theme.SubtleStyle.Render(fmt.Sprintf("%d doodles", len(m.entries))) +
			divider +
			m.cm.Theme.SelectedStyle.Render(fmt.Sprintf("%d “%s”", len(m.filtered), m.filterInput.Value()))

	default:
		header = m.cm.Theme.SubtleStyle.Render(fmt.Sprintf("%d doodles", len(m.entries)))
	}

	return lipgloss.NewStyle().
		Padding(listTopPadding, listIndent+2, 1).
		Render(header)
}

func (m Model) entriesView() string {
	visible := m.visibleEntries()
	if len(visible) == 0 {
		msg := "Nothing to see here."
		if m.FilterApplied() {
			msg = "No results."
		}

		return indent("  "+m.cm.Theme.SubtleStyle.Render(msg), listIndent)
	}

	start, end := m.paginator.GetSliceBounds(len(visible))
	page := visible[start:end]

	var b strings.Builder
	for i, e := range page {
		m.renderEntry(&b, i, e)

		if i != len(page)-1 {
			b.WriteString("\n\n")
		}
	}

	return indent(b.String(), listIndent)
}

func (m Model) paginationView() string {
	if m.paginator.TotalPages <= 1 {
		return "\n"
	}

	p := m.paginator

	// Fall back to numerals when the dots do not fit.
	if ansi.StringWidth(p.View()) > m.cm.Width-listHorizontalPadding {
		p.Type = paginator.Arabic
	}

	return m.cm.Theme.PaginationStyle.
		PaddingLeft(2).
		PaddingBottom(1).
		Render(p.View())
}

func (m Model) statusBarView() string {
	progress := fmt.Sprintf("%d/%d", m.paginator.Page+1, m.paginator.TotalPages)

	return m.cm.GetStatusBar().RenderWithNote(m.title, progress)
}

func (m Model) helpView() string {
	if !m.ShowHelp {
		return ""
	}

	return m.helpRenderer.Render(m.cm.Width)
}

func newPaginator(t *theme.Theme) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = t.SelectedStyle.Render("•")
	p.InactiveDot = t.SubtleStyle.Render("◦")
	p.KeyMap = paginator.KeyMap{}

	return p
}

func indent(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}

	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}

	return strings.Join(lines, "\n")
}
