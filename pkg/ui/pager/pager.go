// Package pager implements a horizontally paged container for Bubble Tea.
//
// The pager shows one item of a [children.List] at a time. Dragging with the
// mouse moves the strip of pages live; releasing snaps to the nearest page
// with a spring animation. Clicking a marker in the indicator row, or using
// the key bindings, jumps directly to a page.
package pager

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/doodles/pkg/children"
	"github.com/macropower/doodles/pkg/keys"
	"github.com/macropower/doodles/pkg/paging"
	"github.com/macropower/doodles/pkg/ui/common"
	"github.com/macropower/doodles/pkg/ui/statusbar"
)

const (
	statusBarHeight = 1
	indicatorHeight = 1
)

type (
	// JumpMsg asks the pager to show a page. The index is clamped. Jumps that
	// arrive during a drag are ignored.
	JumpMsg struct{ Index int }

	frameMsg struct{ id int }
)

type Model struct {
	cm           *common.CommonModel
	kb           *KeyBinds
	settings     *Settings
	helpRenderer *statusbar.HelpRenderer
	store        *paging.Store
	state        *paging.State
	snap         *paging.Snap
	title        string
	items        children.List
	indicator    paging.Indicator
	frame        int
	originX      int
	width        int
	height       int
	pageHeight   int
	helpHeight   int
	ShowHelp     bool
}

type Opt func(*Model)

// WithKeyBinds sets the pager key bindings. Missing bindings get defaults.
func WithKeyBinds(kb *KeyBinds) Opt {
	return func(m *Model) {
		m.kb = kb
	}
}

// WithSettings sets the animation and indicator settings.
func WithSettings(s *Settings) Opt {
	return func(m *Model) {
		m.settings = s
	}
}

// WithStore publishes the pager status to s on every change.
func WithStore(s *paging.Store) Opt {
	return func(m *Model) {
		m.store = s
	}
}

// New creates a pager titled title that pages through items.
func New(cm *common.CommonModel, title string, items children.List, opts ...Opt) Model {
	m := Model{
		cm:    cm,
		title: title,
		items: items,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.kb == nil {
		m.kb = &KeyBinds{}
	}
	if cm.KeyBinds == nil {
		cm.KeyBinds = &common.KeyBinds{}
	}
	if m.settings == nil {
		m.settings = &Settings{}
	}

	cm.KeyBinds.EnsureDefaults()
	m.kb.EnsureDefaults()
	m.settings.EnsureDefaults()

	store := m.store
	m.state = paging.NewState(items.Len(),
		paging.WithInitialIndex(m.settings.InitialPage),
		paging.WithObserver(func(s paging.Snapshot) {
			if store != nil {
				store.Update(s)
			}
		}),
	)

	snap := paging.NewSnap(m.settings.FPS, m.settings.Frequency, m.settings.Damping)
	m.snap = &snap
	m.indicator = m.settings.Indicator()

	ckb := cm.KeyBinds
	kbr := &keys.KeyBindRenderer{}
	kbr.AddColumn(
		*ckb.Left,
		*ckb.Right,
		*ckb.Prev,
		*ckb.Next,
	)
	kbr.AddColumn(m.kb.GetKeyBinds()...)
	kbr.AddColumn(
		*ckb.Help,
		*ckb.Escape,
		*ckb.Quit,
	)
	m.helpRenderer = statusbar.NewHelpRenderer(cm.Theme, kbr)

	if m.store != nil {
		m.store.Publish(paging.Status{
			Title:    title,
			Pages:    items.Titles(),
			Snapshot: m.state.Snapshot(),
		})
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.BlurMsg:
		cmd = m.cancelDrag("focus lost")

	case JumpMsg:
		cmd = m.jump(msg.Index, "remote")

	case frameMsg:
		if msg.id == m.frame && m.snap.Step() {
			cmd = m.tick()
		}
	}

	return m, cmd
}

// SetSize lays the pager out for a w x h area. A drag in progress is
// cancelled, since its offset no longer matches the page width.
func (m *Model) SetSize(w, h int) {
	if m.state.Dragging() {
		m.state.CancelDrag(float64(m.width))
	}

	// Snap offsets are in the old page width.
	m.snap.Stop()
	m.frame++

	m.width = max(0, w)
	m.height = max(0, h)

	pageHeight := m.height - statusBarHeight - indicatorHeight
	if m.ShowHelp {
		m.helpHeight = m.helpRenderer.CalculateHelpHeight()
		pageHeight -= m.helpHeight
	}

	m.pageHeight = max(0, pageHeight)
}

// Close stops publishing status for this pager.
func (m *Model) Close() {
	if m.state.Dragging() {
		m.state.CancelDrag(m.pageWidth())
	}

	m.snap.Stop()
	m.frame++

	if m.store != nil {
		m.store.Close()
	}
}

// Index returns the committed page.
func (m Model) Index() int {
	return m.state.Index()
}

// Count returns the number of pages.
func (m Model) Count() int {
	return m.state.Count()
}

// Dragging reports whether a drag gesture is active.
func (m Model) Dragging() bool {
	return m.state.Dragging()
}

// Animating reports whether the snap animation is running.
func (m Model) Animating() bool {
	return m.snap.Active()
}

// Title returns the pager title.
func (m Model) Title() string {
	return m.title
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}

		switch {
		case msg.Y < m.pageHeight:
			var cmd tea.Cmd
			if m.state.Dragging() {
				cmd = m.endDrag()
			}

			m.beginDrag(msg.X)

			return cmd

		case msg.Y == m.pageHeight:
			return m.tapIndicator(msg.X)
		}

	case tea.MouseActionMotion:
		if m.state.Dragging() && msg.Button == tea.MouseButtonLeft {
			m.state.UpdateDrag(float64(msg.X - m.originX))
		}

	case tea.MouseActionRelease:
		if m.state.Dragging() {
			return m.endDrag()
		}
	}

	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ckb := m.cm.KeyBinds
	key := msg.String()

	if m.state.Dragging() {
		if ckb.Escape.Match(key) {
			return m.cancelDrag("escape")
		}

		slog.Debug("ignoring key during drag", slog.String("key", key))

		return nil
	}

	switch {
	case ckb.Left.Match(key), ckb.Prev.Match(key):
		return m.jump(m.state.Index()-1, "key")

	case ckb.Right.Match(key), ckb.Next.Match(key):
		return m.jump(m.state.Index()+1, "key")

	case m.kb.First.Match(key):
		return m.jump(0, "key")

	case m.kb.Last.Match(key):
		return m.jump(m.state.Count()-1, "key")

	case m.kb.Copy.Match(key):
		return m.copyPage()

	case ckb.Help.Match(key):
		m.toggleHelp()
	}

	return nil
}

func (m *Model) beginDrag(x int) {
	// Continue from wherever a running snap left the strip.
	carry := 0.0
	if m.snap.Active() {
		carry = m.snap.Position() - paging.RestingOffset(m.state.Index(), m.pageWidth())
	}

	m.snap.Stop()
	m.frame++

	m.originX = x - int(carry)
	m.state.BeginDrag()

	if carry != 0 {
		m.state.UpdateDrag(float64(x - m.originX))
	}
}

func (m *Model) endDrag() tea.Cmd {
	from := m.state.VisualOffset(m.pageWidth())
	offset := m.state.DragOffset()
	idx := m.state.EndDrag(m.pageWidth())

	slog.Debug("drag ended",
		slog.Float64("offset", offset),
		slog.Int("index", idx),
	)

	return m.startSnap(from)
}

func (m *Model) cancelDrag(reason string) tea.Cmd {
	if !m.state.Dragging() {
		return nil
	}

	from := m.state.VisualOffset(m.pageWidth())
	idx := m.state.CancelDrag(m.pageWidth())

	slog.Debug("drag cancelled",
		slog.String("reason", reason),
		slog.Int("index", idx),
	)

	return m.startSnap(from)
}

func (m *Model) tapIndicator(x int) tea.Cmd {
	j, ok := m.indicator.HitTest(x, m.state.Count(), m.width)
	if !ok {
		return nil
	}

	return m.jump(j, "indicator")
}

// jump commits page i directly and animates to it.
func (m *Model) jump(i int, source string) tea.Cmd {
	if m.state.Dragging() {
		slog.Debug("ignoring jump during drag",
			slog.String("source", source),
			slog.Int("index", i),
		)

		return nil
	}

	from := m.displayOffset()
	prev := m.state.Index()
	idx := m.state.SetIndex(i)

	if idx != prev {
		slog.Debug("page changed",
			slog.String("source", source),
			slog.Int("index", idx),
		)
	}

	return m.startSnap(from)
}

func (m *Model) startSnap(from float64) tea.Cmd {
	m.frame++
	m.snap.Start(from, paging.RestingOffset(m.state.Index(), m.pageWidth()))

	if !m.snap.Active() {
		return nil
	}

	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id := m.frame

	return tea.Tick(time.Second/time.Duration(m.settings.FPS), func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func (m *Model) copyPage() tea.Cmd {
	if m.state.Count() == 0 {
		return nil
	}

	text := m.pageText(m.state.Index())
	title := m.items.Title(m.state.Index())

	copyCmd := func() tea.Msg {
		// Copy using OSC 52.
		termenv.Copy(text)
		// Copy using native system clipboard.
		if err := clipboard.WriteAll(text); err != nil {
			slog.Debug("system clipboard unavailable", slog.Any("err", err))
		}

		return nil
	}

	return tea.Batch(copyCmd, m.cm.SendStatusMessage(fmt.Sprintf("copied %s", title), statusbar.StyleSuccess))
}

// pageText returns the plain text of page i at the current size.
func (m Model) pageText(i int) string {
	item := m.items.At(i)
	if item == nil {
		return ""
	}

	lines := strings.Split(ansi.Strip(item.Render(m.width, m.pageHeight)), "\n")
	for j, line := range lines {
		lines[j] = strings.TrimRight(line, " ")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (m *Model) toggleHelp() {
	m.ShowHelp = !m.ShowHelp
	m.SetSize(m.width, m.height)
}

func (m Model) pageWidth() float64 {
	return float64(m.width)
}

// displayOffset is the strip offset currently on screen.
func (m Model) displayOffset() float64 {
	switch {
	case m.state.Dragging():
		return m.state.VisualOffset(m.pageWidth())
	case m.snap.Active():
		return m.snap.Position()
	default:
		return paging.RestingOffset(m.state.Index(), m.pageWidth())
	}
}
