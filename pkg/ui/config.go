package ui

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"

	"github.com/macropower/doodles/pkg/keys"
	"github.com/macropower/doodles/pkg/ui/common"
	"github.com/macropower/doodles/pkg/ui/gallery"
	"github.com/macropower/doodles/pkg/ui/pager"
	"github.com/macropower/doodles/pkg/ui/theme"
)

// Config contains TUI-specific configuration.
type Config struct {
	// Themes registers custom chroma styles, usable by name in Theme.
	Themes map[string]ThemeConfig `json:"themes,omitempty" jsonschema:"title=Themes"`
	// KeyBinds overrides key bindings.
	KeyBinds *KeyBinds `json:"keybinds,omitempty" jsonschema:"title=Key Bindings"`
	// Pager tunes the pager animation and indicator.
	Pager *pager.Settings `json:"pager,omitempty" jsonschema:"title=Pager"`
	// Theme is a chroma style name, or one of "auto", "dark" and "light".
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
}

// ThemeConfig is a custom chroma style.
type ThemeConfig struct {
	Styles chroma.StyleEntries `json:"styles" jsonschema:"title=Styles"`
}

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}
	if c.Pager == nil {
		c.Pager = &pager.Settings{}
	}

	c.KeyBinds.EnsureDefaults()
	c.Pager.EnsureDefaults()
}

// Validate checks constraints that the schema cannot express.
func (c *Config) Validate() error {
	if err := c.KeyBinds.Validate(); err != nil {
		return fmt.Errorf("validate key binds: %w", err)
	}

	return nil
}

// RegisterThemes registers every custom theme with [theme.Register].
func (c *Config) RegisterThemes() error {
	var errs []error
	for name, tc := range c.Themes {
		if err := theme.Register(name, tc.Styles); err != nil {
			errs = append(errs, fmt.Errorf("theme %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

type KeyBinds struct {
	Common  *common.KeyBinds  `json:"common,omitempty"`
	Gallery *gallery.KeyBinds `json:"gallery,omitempty"`
	Pager   *pager.KeyBinds   `json:"pager,omitempty"`
}

func (kb *KeyBinds) EnsureDefaults() {
	if kb.Common == nil {
		kb.Common = &common.KeyBinds{}
	}
	if kb.Gallery == nil {
		kb.Gallery = &gallery.KeyBinds{}
	}
	if kb.Pager == nil {
		kb.Pager = &pager.KeyBinds{}
	}

	kb.Common.EnsureDefaults()
	kb.Gallery.EnsureDefaults()
	kb.Pager.EnsureDefaults()
}

// Validate reports keys bound twice within one view.
func (kb *KeyBinds) Validate() error {
	return errors.Join(
		keys.ValidateBinds(kb.Common.GetKeyBinds(), kb.Gallery.GetKeyBinds()),
		keys.ValidateBinds(kb.Common.GetKeyBinds(), kb.Pager.GetKeyBinds()),
	)
}
