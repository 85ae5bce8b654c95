package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/api/v1beta1/configs"
	"github.com/macropower/doodles/pkg/config"
	"github.com/macropower/doodles/pkg/ui/theme"
	"github.com/macropower/doodles/pkg/yaml"
)

const header = "apiVersion: doodles.jacobcolvin.com/v1beta1\nkind: Configuration\n"

func TestNewLoaderFromFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup   func(t *testing.T) string
		wantErr bool
	}{
		"valid file": {
			setup: func(t *testing.T) string {
				t.Helper()

				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(header), 0o600))

				return path
			},
		},
		"missing file": {
			setup: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: true,
		},
		"directory": {
			setup: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.NewLoaderFromFile(tc.setup(t), configs.New, configs.DefaultValidator())
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestLoaderValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		wantErr string
	}{
		"defaults": {
			input: header,
		},
		"pager settings": {
			input: header + "ui:\n  pager:\n    fps: 30\n    activeMarker: \"*\"\n",
		},
		"invalid yaml": {
			input:   header + "ui: [unclosed\n",
			wantErr: "] ",
		},
		"schema violation": {
			input:   header + "ui:\n  pager:\n    fps: -1\n",
			wantErr: "error at $.ui.pager.fps",
		},
		"unknown field": {
			input:   header + "rules: []\n",
			wantErr: "error at $",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewLoaderFromBytes([]byte(tc.input), configs.New, configs.DefaultValidator())

			err := cl.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)

			var yerr *yaml.Error
			require.ErrorAs(t, err, &yerr)
			assert.NotEmpty(t, yerr.Source)
		})
	}
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	cl := config.NewLoaderFromBytes(
		[]byte(header+"ui:\n  theme: dracula\n  pager:\n    initialPage: 2\n"),
		configs.New, configs.DefaultValidator(),
	)

	cfg, err := cl.Load()
	require.NoError(t, err)

	assert.Equal(t, "dracula", cfg.UI.Theme)
	assert.Equal(t, 2, cfg.UI.Pager.InitialPage)
	// Defaults fill in what the file leaves out.
	assert.Equal(t, 60, cfg.UI.Pager.FPS)
	require.NotNil(t, cfg.UI.KeyBinds)
	assert.True(t, cfg.UI.KeyBinds.Common.Quit.Match("q"))
}

func TestLoaderLoadError(t *testing.T) {
	t.Parallel()

	cl := config.NewLoaderFromBytes([]byte(header+"ui:\n  theme: [\n"), configs.New, configs.DefaultValidator())

	cfg, err := cl.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoaderGetTheme(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  *theme.Theme
		input string
	}{
		"quoted theme": {
			input: header + "ui:\n  theme: \"github\"",
			want:  theme.New("github"),
		},
		"single quoted theme": {
			input: header + "ui:\n  theme: 'monokai'",
			want:  theme.New("monokai"),
		},
		"bare theme": {
			input: header + "ui:\n  theme: dracula",
			want:  theme.New("dracula"),
		},
		"no theme": {
			input: header + "ui:\n  pager: {}",
			want:  theme.Default,
		},
		"malformed yaml uses regex fallback": {
			input: header + "ui:\n  theme: \"onedark\"\n  invalid: [unclosed",
			want:  theme.New("onedark"),
		},
		"regex fallback with comments": {
			input: header + "ui:\n  # comment\n  theme: \"solarized-dark\" # inline\n  other: [",
			want:  theme.New("solarized-dark"),
		},
		"theme in wrong section": {
			input: header + "pager:\n  theme: \"monokai\"",
			want:  theme.Default,
		},
		"empty": {
			want: theme.Default,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewLoaderFromBytes(
				[]byte(tc.input), configs.New, configs.DefaultValidator(), config.WithThemeFromData(),
			)

			got := cl.GetTheme()
			require.NotNil(t, got.ChromaStyle)
			assert.Equal(t, tc.want.ChromaStyle.Name, got.ChromaStyle.Name)
		})
	}
}

type failingValidator struct{ err error }

func (v failingValidator) Validate(any) error {
	return v.err
}

func TestLoaderWithValidator(t *testing.T) {
	t.Parallel()

	errCustom := errors.New("custom")

	cl := config.NewLoaderFromBytes([]byte(header), configs.New, configs.DefaultValidator(),
		config.WithValidator(failingValidator{err: errCustom}),
	)

	require.ErrorIs(t, cl.Validate(), errCustom)
}

func TestLoaderRoundTrip(t *testing.T) {
	t.Parallel()

	want := configs.New()
	want.UI.Theme = "monokai"

	b, err := want.MarshalYAML()
	require.NoError(t, err)

	cl := config.NewLoaderFromBytes(b, configs.New, configs.DefaultValidator())
	require.NoError(t, cl.Validate())

	got, err := cl.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
