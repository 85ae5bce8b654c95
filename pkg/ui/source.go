package ui

import (
	"log/slog"

	"github.com/macropower/doodles/pkg/children"
	"github.com/macropower/doodles/pkg/ui/demos"
	"github.com/macropower/doodles/pkg/ui/highlight"
	"github.com/macropower/doodles/pkg/ui/theme"
	"github.com/macropower/doodles/pkg/yaml"
)

// ConfigDoodleID is the ID of the doodle that pages through the active
// configuration.
const ConfigDoodleID = "config"

type section struct {
	value any
	name  string
}

// configDoodle returns a doodle with one page per configuration section.
func configDoodle(cfg *Config) demos.Doodle {
	return demos.Doodle{
		ID:    ConfigDoodleID,
		Title: "Configuration",
		Desc:  "The active configuration, one section per page",
		Pages: func(t *theme.Theme) children.List {
			sections := []section{
				{name: "theme", value: map[string]any{"theme": cfg.Theme}},
				{name: "pager", value: map[string]any{"pager": cfg.Pager}},
				{name: "keybinds", value: map[string]any{"keybinds": cfg.KeyBinds}},
			}
			if len(cfg.Themes) > 0 {
				sections = append(sections, section{name: "themes", value: map[string]any{"themes": cfg.Themes}})
			}

			hl := highlight.NewRenderer(t, highlight.WithLineNumbers(true))

			return children.ForEach(sections,
				func(s section) string { return s.name },
				func(s section) children.Item {
					return sourcePage{theme: t, hl: hl, name: s.name, value: s.value}
				},
			)
		},
	}
}

// sourcePage renders a value as highlighted YAML inside a card.
type sourcePage struct {
	value any
	theme *theme.Theme
	hl    *highlight.Renderer
	name  string
}

func (p sourcePage) Title() string {
	return p.name
}

func (p sourcePage) Render(width, height int) string {
	card := children.Card{
		Heading:      p.name,
		Border:       &p.theme.CardBorderStyle,
		HeadingStyle: &p.theme.CardTitleStyle,
	}

	// Card keeps a one cell gutter on each side.
	innerW := width - 2 - p.theme.CardBorderStyle.GetHorizontalFrameSize()
	if innerW <= 0 {
		return ""
	}

	src, err := yaml.Marshal(p.value)
	if err != nil {
		slog.Error("marshal config section", slog.String("section", p.name), slog.Any("err", err))
		card.Body = err.Error()

		return card.Render(width, height)
	}

	body, err := p.hl.Render(string(src), innerW)
	if err != nil {
		slog.Error("highlight config section", slog.String("section", p.name), slog.Any("err", err))
		body = string(src)
	}

	card.Body = body

	return card.Render(width, height)
}
