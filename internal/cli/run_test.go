package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/internal/cli"
	"github.com/macropower/doodles/pkg/config"
)

// These tests run the root command, which replaces the default slog logger,
// so they do not run in parallel.

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doodles", "config.yaml")

	_, err := execute(t, "--config", path, "--write-config")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "kind: Configuration")
	assert.True(t, strings.HasPrefix(string(b), "# yaml-language-server: $schema="))
}

func TestShowConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := `apiVersion: doodles.jacobcolvin.com/v1beta1
kind: Configuration
ui:
  theme: dracula
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := execute(t, "--config", path, "--show-config")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dracula")
	assert.Contains(t, out, "fps:")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := `apiVersion: doodles.jacobcolvin.com/v1beta1
kind: Configuration
ui:
  pager:
    fps: 0
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	_, err := execute(t, "--config", path, "--show-config")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "fps")
}

func TestListDoodlesWithoutTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "--config", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "pager\t"))
	assert.True(t, strings.HasPrefix(lines[1], "band\t"))
	assert.True(t, strings.HasPrefix(lines[2], "single\t"))
}

func TestDoodleArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr error
		args    []string
	}{
		"known doodle": {
			args: []string{"band"},
		},
		"config doodle": {
			args: []string{"config"},
		},
		"unknown doodle": {
			args:    []string{"nope"},
			wantErr: cli.ErrUnknownDoodle,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")

			_, err := execute(t, append([]string{"--config", path}, tc.args...)...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTooManyArgs(t *testing.T) {
	_, err := execute(t, "pager", "band")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg")
}
