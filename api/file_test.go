package api_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/api"
)

//nolint:paralleltest // We need to set environment variables, so run tests sequentially.
func TestGetConfigPath(t *testing.T) {
	tcs := map[string]struct {
		env  map[string]string
		want string
	}{
		"XDG_CONFIG_HOME is set": {
			env:  map[string]string{"XDG_CONFIG_HOME": "/custom/config"},
			want: "/custom/config/doodles/config.yaml",
		},
		"XDG_CONFIG_HOME is empty and HOME is set": {
			env:  map[string]string{"XDG_CONFIG_HOME": "", "HOME": "/test/home"},
			want: "/test/home/.config/doodles/config.yaml",
		},
		"XDG_CONFIG_HOME and HOME are empty": {
			env:  map[string]string{"XDG_CONFIG_HOME": "", "HOME": ""},
			want: filepath.Join(os.TempDir(), "doodles", "config.yaml"), //nolint:usetesting // Needs to equal host.
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			assert.Equal(t, tc.want, api.GetConfigPath("config.yaml"))
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup func(t *testing.T) string
		err   error
		want  string
	}{
		"regular file": {
			setup: func(t *testing.T) string {
				t.Helper()

				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte("theme: dark"), 0o600))

				return path
			},
			want: "theme: dark",
		},
		"missing file": {
			setup: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			err: fs.ErrNotExist,
		},
		"directory": {
			setup: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			err: api.ErrIsDir,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := api.ReadFile(tc.setup(t))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestWriteIfNotExists(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup func(t *testing.T) string
		err   error
		want  string
	}{
		"new file in new directory": {
			setup: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "nested", "schema.json")
			},
			want: "new",
		},
		"existing file is kept": {
			setup: func(t *testing.T) string {
				t.Helper()

				path := filepath.Join(t.TempDir(), "schema.json")
				require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

				return path
			},
			want: "old",
		},
		"directory": {
			setup: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			err: api.ErrIsDir,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := tc.setup(t)

			err := api.WriteIfNotExists(path, []byte("new"))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestWriteDefaultFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		existing   string
		want       string
		force      bool
		wantBackup bool
	}{
		"new file": {
			want: "default",
		},
		"existing file without force": {
			existing: "custom",
			want:     "custom",
		},
		"existing file with force": {
			existing:   "custom",
			force:      true,
			want:       "default",
			wantBackup: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")

			if tc.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tc.existing), 0o600))
			}

			require.NoError(t, api.WriteDefaultFile(path, []byte("default"), tc.force, "configuration"))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)

			var backups []string
			for _, e := range entries {
				if strings.HasSuffix(e.Name(), ".old") {
					backups = append(backups, e.Name())
				}
			}

			if !tc.wantBackup {
				assert.Empty(t, backups)

				return
			}

			require.Len(t, backups, 1)

			backup, err := os.ReadFile(filepath.Join(dir, backups[0]))
			require.NoError(t, err)
			assert.Equal(t, tc.existing, string(backup))
		})
	}
}

func TestWriteDefaultFileDirectory(t *testing.T) {
	t.Parallel()

	err := api.WriteDefaultFile(t.TempDir(), []byte("default"), true, "configuration")
	require.ErrorIs(t, err, api.ErrIsDir)
}
