package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/doodles/pkg/ui/theme"
	"github.com/macropower/doodles/pkg/version"
)

const (
	helpText  = " ? Help "
	errorText = " ! Error "
)

type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// StatusBarRenderer renders the one line status bar shown under every view.
type StatusBarRenderer struct {
	theme   *theme.Theme
	message string
	width   int
	style   Style
}

type StatusBarOpt func(*StatusBarRenderer)

// NewStatusBarRenderer creates a new StatusBarRenderer.
func NewStatusBarRenderer(t *theme.Theme, width int, opts ...StatusBarOpt) *StatusBarRenderer {
	sb := &StatusBarRenderer{theme: t, width: width, style: StyleNormal}
	for _, opt := range opts {
		opt(sb)
	}

	return sb
}

// WithMessage replaces the note with message, drawn in the given style. An
// empty message keeps the note.
func WithMessage(message string, style Style) StatusBarOpt {
	return func(r *StatusBarRenderer) {
		if message == "" {
			return
		}

		r.style = style
		r.message = message
	}
}

// RenderWithNote renders the logo, a note, a right aligned progress label
// and the help hint.
func (r *StatusBarRenderer) RenderWithNote(note, progress string) string {
	logo := r.logoView()
	helpNote := r.renderHelpNote()
	progressNote := r.renderProgressNote(progress)
	noteView := r.renderNote(note, logo, progressNote, helpNote)
	emptySpace := r.renderEmptySpace(logo, noteView, progressNote, helpNote)

	return logo + noteView + emptySpace + progressNote + helpNote
}

func (r *StatusBarRenderer) renderProgressNote(note string) string {
	if note == "" {
		return ""
	}

	note = " " + note + " "

	switch r.style {
	case StyleSuccess, StyleError:
		return r.theme.StatusBarMessagePosStyle.Render(note)
	default:
		return r.theme.StatusBarPosStyle.Render(note)
	}
}

func (r *StatusBarRenderer) renderHelpNote() string {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(errorText)
	case StyleSuccess:
		return r.theme.StatusBarMessageHelpStyle.Render(helpText)
	default:
		return r.theme.StatusBarHelpStyle.Render(helpText)
	}
}

func (r *StatusBarRenderer) renderNote(note string, others ...string) string {
	if r.message != "" {
		note = r.message
	}

	note = strings.TrimSpace(strings.ReplaceAll(note, "\n", " "))

	available := r.width
	for _, o := range others {
		available -= ansi.StringWidth(o)
	}

	note = truncate.StringWithTail(" "+note+" ", uint(max(0, available)), r.theme.Ellipsis) //nolint:gosec // Uses max.

	return r.fill(note)
}

func (r *StatusBarRenderer) renderEmptySpace(components ...string) string {
	padding := r.width
	for _, comp := range components {
		padding -= ansi.StringWidth(comp)
	}

	return r.fill(strings.Repeat(" ", max(0, padding)))
}

func (r *StatusBarRenderer) fill(s string) string {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(s)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(s)
	default:
		return r.theme.StatusBarStyle.Render(s)
	}
}

func (r *StatusBarRenderer) logoView() string {
	return r.theme.LogoStyle.Render(fmt.Sprintf(" doodles %s ", version.GetVersion()))
}
