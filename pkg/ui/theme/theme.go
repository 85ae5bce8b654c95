package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Icons.
const (
	Ellipsis = "…"
)

var (
	ErrInvalidName    = errors.New("invalid theme name")
	ErrRegisterStyles = errors.New("register styles")
)

var Default = New("github")

// Theme holds every style used by the doodles UI. Colors are derived from a
// chroma style, so any chroma theme name can be used.
type Theme struct {
	CardBorderStyle           lipgloss.Style
	CardTitleStyle            lipgloss.Style
	CursorStyle               lipgloss.Style
	ErrorOverlayStyle         lipgloss.Style
	ErrorTitleStyle           lipgloss.Style
	FilterStyle               lipgloss.Style
	GenericOverlayStyle       lipgloss.Style
	GenericTextStyle          lipgloss.Style
	HelpStyle                 lipgloss.Style
	IndicatorActiveStyle      lipgloss.Style
	IndicatorInactiveStyle    lipgloss.Style
	LogoStyle                 lipgloss.Style
	PaginationStyle           lipgloss.Style
	SelectedStyle             lipgloss.Style
	SelectedSubtleStyle       lipgloss.Style
	StatusBarHelpStyle        lipgloss.Style
	StatusBarMessageHelpStyle lipgloss.Style
	StatusBarMessagePosStyle  lipgloss.Style
	StatusBarMessageStyle     lipgloss.Style
	StatusBarPosStyle         lipgloss.Style
	StatusBarStyle            lipgloss.Style
	SubtleStyle               lipgloss.Style

	ChromaStyle *chroma.Style
	Ellipsis    string
}

func New(theme string) *Theme {
	style := newChromaStyle(theme)

	var (
		genericStyle = lipgloss.NewStyle().
				Foreground(style.fg(chroma.Background))

		accent = style.fg(chroma.NameTag)

		logoStyle = lipgloss.NewStyle().
				Foreground(style.bg(chroma.Background)).
				Background(accent).
				Bold(true)

		selectedStyle = lipgloss.NewStyle().
				Foreground(accent)

		selectedSubtleStyle = lipgloss.NewStyle().
					Foreground(style.fgWithFactor(chroma.NameTag, 0.3))

		subtleStyle = lipgloss.NewStyle().
				Foreground(style.fg(chroma.Comment))

		helpStyle = lipgloss.NewStyle().
				Foreground(style.fgWithFactor(chroma.Background, 0.2)).
				Background(style.bgWithFactor(chroma.Background, 0.2))
	)

	return &Theme{
		CardBorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.fg(chroma.Comment)).
			Padding(0, 1),
		CardTitleStyle: selectedStyle.Bold(true),
		CursorStyle:    selectedSubtleStyle,
		ErrorOverlayStyle: genericStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.fg(chroma.GenericDeleted)),
		ErrorTitleStyle: genericStyle.
			Background(style.fg(chroma.GenericDeleted)),
		FilterStyle: selectedStyle,
		GenericOverlayStyle: genericStyle.
			Border(lipgloss.RoundedBorder()),
		GenericTextStyle:       genericStyle,
		HelpStyle:              helpStyle,
		IndicatorActiveStyle:   selectedStyle.Bold(true),
		IndicatorInactiveStyle: subtleStyle,
		LogoStyle:              logoStyle,
		PaginationStyle:        subtleStyle,
		SelectedStyle:          selectedStyle,
		SelectedSubtleStyle:    selectedSubtleStyle,
		StatusBarHelpStyle:     helpStyle,
		StatusBarMessageHelpStyle: genericStyle.
			Foreground(style.bg(chroma.Background)).
			Background(accent),
		StatusBarMessagePosStyle: lipgloss.NewStyle().
			Foreground(style.bg(chroma.Background)).
			Background(style.fgWithFactor(chroma.NameTag, 0.1)),
		StatusBarMessageStyle: lipgloss.NewStyle().
			Foreground(style.bg(chroma.Background)).
			Background(style.fgWithFactor(chroma.NameTag, 0.15)),
		StatusBarPosStyle: lipgloss.NewStyle().
			Foreground(style.fg(chroma.Background)).
			Background(style.bgWithFactor(chroma.Background, 0.15)),
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(style.fg(chroma.Background)).
			Background(style.bgWithFactor(chroma.Background, 0.1)),
		SubtleStyle: subtleStyle,

		ChromaStyle: style.style,
		Ellipsis:    Ellipsis,
	}
}

// Register adds a chroma style that [New] can then select by name.
func Register(name string, entries chroma.StyleEntries) error {
	if name == "" {
		return ErrInvalidName
	}

	customTheme, err := chroma.NewStyle(name, entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterStyles, err)
	}

	styles.Register(customTheme)

	return nil
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(theme string) chromaStyle {
	s := styles.Get(getStyle(theme))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) fg(c chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bg(c chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Background.String())
}

func (cs chromaStyle) fgWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Colour.BrightenOrDarken(factor).String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bgWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Background.BrightenOrDarken(factor).String())
}

func getStyle(style string) string {
	switch style {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return getDefaultStyle()
	default:
		return style
	}
}

func getDefaultStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
