// Package ui provides the main UI for doodles: the gallery of doodles, and a
// pager for whichever doodle is open.
package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/doodles/pkg/keys"
	"github.com/macropower/doodles/pkg/lazy"
	"github.com/macropower/doodles/pkg/paging"
	"github.com/macropower/doodles/pkg/ui/common"
	"github.com/macropower/doodles/pkg/ui/demos"
	"github.com/macropower/doodles/pkg/ui/gallery"
	"github.com/macropower/doodles/pkg/ui/overlay"
	"github.com/macropower/doodles/pkg/ui/pager"
	"github.com/macropower/doodles/pkg/ui/theme"
)

// NewProgram returns a new Tea program running m.
func NewProgram(m *Model, opts ...tea.ProgramOption) *tea.Program {
	slog.Debug("starting doodles ui")

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}, opts...)

	return tea.NewProgram(m, opts...)
}

// State is the top-level application State.
type State int

const (
	StateShowGallery State = iota
	StateShowDoodle
)

func (s State) String() string {
	return map[State]string{
		StateShowGallery: "showing gallery",
		StateShowDoodle:  "showing doodle",
	}[s]
}

type OverlayState int

const (
	overlayStateNone OverlayState = iota
	overlayStateError
)

type Model struct {
	err     error
	cm      *common.CommonModel
	cfg     *Config
	overlay *overlay.Overlay
	store   *paging.Store
	// Pagers are built on first display and dropped when dismissed.
	pagers       map[string]*lazy.Value[pager.Model]
	doodles      []demos.Doodle
	current      string
	initial      string
	gallery      gallery.Model
	state        State
	overlayState OverlayState
}

type Opt func(*Model)

// WithStore publishes the status of the open pager to s.
func WithStore(s *paging.Store) Opt {
	return func(m *Model) {
		m.store = s
	}
}

// WithDoodles replaces the doodles listed in the gallery. By default, the
// gallery lists [demos.All] followed by the configuration doodle.
func WithDoodles(ds ...demos.Doodle) Opt {
	return func(m *Model) {
		m.doodles = ds
	}
}

// WithInitialDoodle opens the doodle with the given ID at startup.
func WithInitialDoodle(id string) Opt {
	return func(m *Model) {
		m.initial = id
	}
}

func NewModel(cfg *Config, opts ...Opt) *Model {
	if cfg == nil {
		cfg = NewConfig()
	}

	cfg.EnsureDefaults()

	m := &Model{
		cfg:   cfg,
		state: StateShowGallery,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.doodles == nil {
		m.doodles = append(demos.All(), configDoodle(cfg))
	}

	m.cm = common.NewCommonModel(theme.New(cfg.Theme), cfg.KeyBinds.Common)
	m.overlay = overlay.New(m.cm.Theme, overlay.WithTruncatedHint("error truncated"))

	entries := make([]gallery.Entry, 0, len(m.doodles))
	m.pagers = make(map[string]*lazy.Value[pager.Model], len(m.doodles))

	for _, d := range m.doodles {
		entries = append(entries, d.Entry())
		m.pagers[d.ID] = m.newPager(d)
	}

	m.gallery = gallery.New(m.cm, entries, gallery.WithKeyBinds(cfg.KeyBinds.Gallery))

	if m.initial != "" {
		m.open(m.initial)
	}

	return m
}

func (m *Model) newPager(d demos.Doodle) *lazy.Value[pager.Model] {
	return lazy.New(func() pager.Model {
		slog.Debug("build doodle", slog.String("id", d.ID))

		p := pager.New(m.cm, d.Title, d.Pages(m.cm.Theme),
			pager.WithKeyBinds(m.cfg.KeyBinds.Pager),
			pager.WithSettings(m.cfg.Pager),
			pager.WithStore(m.store),
		)
		p.SetSize(m.cm.Width, m.cm.Height)

		return p
	})
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if m.matchAction(m.cm.KeyBinds.Error, key) && m.err != nil {
			if m.overlayState == overlayStateError {
				m.overlayState = overlayStateNone
			} else {
				m.overlayState = overlayStateError
			}

			return m, nil
		}

		if m.overlayState == overlayStateError {
			// Any key dismisses the error, then is handled as usual.
			m.overlayState = overlayStateNone
		}

		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

		// Sizes are propagated directly, including to hidden views.
		return m, nil

	case gallery.OpenMsg:
		m.open(msg.Entry.ID)

		return m, nil

	case pager.JumpMsg:
		if m.state != StateShowDoodle {
			slog.Debug("ignoring jump, no doodle open", slog.Int("index", msg.Index))

			return m, nil
		}

	case common.StatusMessageTimeoutMsg:
		m.cm.ShowStatusMessage = false

	case common.ErrMsg:
		slog.Error("ui error", slog.Any("err", msg.Err))

		m.err = msg.Err
		m.overlayState = overlayStateError

		return m, nil
	}

	cmds = append(cmds, m.updateChildModels(msg)...)

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	var s string

	switch m.state {
	case StateShowDoodle:
		s = m.pagers[m.current].Get().View()
	default:
		s = m.gallery.View()
	}

	if m.overlayState == overlayStateError {
		errorOverlayStyle := m.cm.Theme.ErrorOverlayStyle.
			Align(lipgloss.Left).
			Padding(1)

		s = m.overlay.Place(s, m.errorView(), 2.0/3.0, errorOverlayStyle)
	}

	return strings.TrimRight(s, " \n")
}

// State returns the current top-level state.
func (m *Model) State() State {
	return m.state
}

// Current returns the ID of the open doodle, or "" in the gallery.
func (m *Model) Current() string {
	if m.state != StateShowDoodle {
		return ""
	}

	return m.current
}

// Built reports whether the pager of doodle id is currently built.
func (m *Model) Built(id string) bool {
	p, ok := m.pagers[id]

	return ok && p.Built()
}

// Pager returns the pager of the open doodle.
func (m *Model) Pager() (pager.Model, bool) {
	if m.state != StateShowDoodle {
		return pager.Model{}, false
	}

	return m.pagers[m.current].Get(), true
}

func (m *Model) open(id string) {
	if _, ok := m.pagers[id]; !ok {
		slog.Warn("unknown doodle", slog.String("id", id))

		return
	}

	if m.state == StateShowDoodle {
		m.dismiss()
	}

	m.current = id
	m.state = StateShowDoodle

	p := m.pagers[id].Get()
	slog.Debug("open doodle",
		slog.String("id", id),
		slog.Int("pages", p.Count()),
	)
}

// dismiss closes the open doodle and discards its pager, so the next open
// builds it again.
func (m *Model) dismiss() {
	v := m.pagers[m.current]
	if v.Built() {
		p := v.Get()
		p.Close()
	}

	v.Reset()

	slog.Debug("close doodle", slog.String("id", m.current))

	m.current = ""
	m.state = StateShowGallery
}

// handleGlobalKeys handles keys that work across all views.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	ckb := m.cm.KeyBinds

	// Always allow suspend to work regardless of current focus.
	if ckb.Suspend.Match(key) {
		return tea.Suspend, true
	}

	switch {
	case m.matchAction(ckb.Quit, key):
		return tea.Quit, true

	case m.state == StateShowDoodle && m.matchAction(ckb.Escape, key):
		if m.pagers[m.current].Get().Dragging() {
			// Let the pager cancel the drag.
			return nil, false
		}

		m.dismiss()

		return nil, true
	}

	return nil, false
}

func (m *Model) matchAction(kb *keys.KeyBind, key string) bool {
	if m.isTextInputFocused() && keys.IsTextInputAction(key) {
		return false
	}

	return kb.Match(key)
}

func (m *Model) isTextInputFocused() bool {
	return m.state == StateShowGallery && m.gallery.FilterState == gallery.Filtering
}

func (m *Model) updateChildModels(msg tea.Msg) []tea.Cmd {
	var cmd tea.Cmd

	switch m.state {
	case StateShowDoodle:
		v := m.pagers[m.current]

		var p pager.Model

		p, cmd = v.Get().Update(msg)
		v.Set(p)

	default:
		m.gallery, cmd = m.gallery.Update(msg)
	}

	return []tea.Cmd{cmd}
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.gallery.SetSize(msg.Width, msg.Height)
	m.overlay.SetSize(msg.Width, msg.Height)

	if m.state == StateShowDoodle {
		v := m.pagers[m.current]
		p := v.Get()
		p.SetSize(msg.Width, msg.Height)
		v.Set(p)
	}
}

func (m *Model) errorView() string {
	errMsg := "<nil>"
	if m.err != nil {
		errMsg = m.err.Error()
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		m.cm.Theme.ErrorTitleStyle.Padding(0, 1).Render("ERROR"),
		lipgloss.NewStyle().Padding(1, 0).Render(errMsg),
	)
}
