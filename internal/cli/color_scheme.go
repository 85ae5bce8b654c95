package cli

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/macropower/doodles/api/v1beta1/configs"
	"github.com/macropower/doodles/pkg/config"
	"github.com/macropower/doodles/pkg/ui/theme"
)

// ColorSchemeFunc styles help and errors with the configured theme, falling
// back to the default theme when no config can be read.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return ThemeColorScheme(configTheme(configs.GetPath()), c)
}

// ThemeColorScheme maps a [theme.Theme] onto fang's help and error styles.
func ThemeColorScheme(t *theme.Theme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           t.GenericTextStyle.GetForeground(),
		Title:          t.LogoStyle.GetBackground(),
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        t.SelectedStyle.GetForeground(),
		Command:        t.SelectedStyle.GetForeground(),
		DimmedArgument: t.SubtleStyle.GetForeground(),
		Comment:        t.SubtleStyle.GetForeground(),
		Flag:           t.SelectedStyle.GetForeground(),
		Argument:       t.GenericTextStyle.GetForeground(),
		Description:    t.GenericTextStyle.GetForeground(),
		FlagDefault:    t.SelectedSubtleStyle.GetForeground(),
		QuotedString:   t.CardTitleStyle.GetForeground(),
		ErrorHeader: [2]color.Color{
			t.ErrorTitleStyle.GetForeground(),
			t.ErrorTitleStyle.GetBackground(),
		},
	}
}

// configTheme reads only the theme from the config at path. The file is not
// validated here, so a broken config still gets styled errors.
func configTheme(path string) *theme.Theme {
	cl, err := config.NewLoaderFromFile(path, configs.New, nil, config.WithThemeFromData())
	if err != nil {
		return theme.Default
	}

	return cl.GetTheme()
}
