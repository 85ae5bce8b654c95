// Package highlight renders YAML source with chroma syntax highlighting, for
// display inside pages of fixed width.
package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/termenv"

	"github.com/macropower/doodles/pkg/ui/theme"
)

const (
	wrapOnCharacters = " /-"
	// Width of the line number gutter, including padding.
	gutterWidth = 6
)

// Renderer highlights YAML.
type Renderer struct {
	lexer           chroma.Lexer
	formatter       chroma.Formatter
	style           *chroma.Style
	lineNumberStyle lipgloss.Style
	lineNumbers     bool
}

type RendererOpt func(*Renderer)

// WithLineNumbers prefixes every source line with its number.
func WithLineNumbers(enabled bool) RendererOpt {
	return func(r *Renderer) {
		r.lineNumbers = enabled
	}
}

// WithFormatter overrides the chroma formatter, which is otherwise picked from
// the terminal color profile.
func WithFormatter(name string) RendererOpt {
	return func(r *Renderer) {
		r.formatter = formatters.Get(name)
	}
}

// NewRenderer creates a [Renderer] using the chroma style of t.
func NewRenderer(t *theme.Theme, opts ...RendererOpt) *Renderer {
	formatterName := "noop"
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		formatterName = "terminal16m"

	case termenv.ANSI256:
		formatterName = "terminal256"

	case termenv.ANSI:
		formatterName = "terminal8"
	}

	r := &Renderer{
		lexer:           chroma.Coalesce(lexers.Get("YAML")),
		formatter:       formatters.Get(formatterName),
		style:           t.ChromaStyle,
		lineNumberStyle: t.SubtleStyle,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render highlights src and wraps it to width cells.
func (r *Renderer) Render(src string, width int) (string, error) {
	iterator, err := r.lexer.Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("lexer tokenize: %w", err)
	}

	buf := &bytes.Buffer{}

	err = r.formatter.Format(buf, r.style, iterator)
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		if r.lineNumbers {
			out = append(out, r.numbered(line, i+1, width))
		} else {
			out = append(out, wrap(line, width))
		}
	}

	return strings.Join(out, "\n"), nil
}

func (r *Renderer) numbered(line string, num, width int) string {
	width = max(1, width-gutterWidth)

	wrapped := strings.Split(wrap(line, width), "\n")
	for i, ln := range wrapped {
		if i == 0 {
			wrapped[i] = r.lineNumberStyle.Render(fmt.Sprintf("%4d  ", num)) + ln
		} else {
			wrapped[i] = r.lineNumberStyle.Render("   -  ") + ln
		}
	}

	return strings.Join(wrapped, "\n")
}

func wrap(line string, width int) string {
	if width <= 0 {
		return ""
	}

	trunc := lipgloss.NewStyle().MaxWidth(width).Render

	return trunc(cellbuf.Wrap(line, width, wrapOnCharacters))
}
