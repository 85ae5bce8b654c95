package yaml_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/pkg/yaml"
)

const source = `apiVersion: doodles.jacobcolvin.com/v1beta1
kind: Configuration
ui:
  pager:
    fps: -1
`

func TestError(t *testing.T) {
	t.Parallel()

	fpsPath := yaml.NewPathBuilder().Root().Child("ui").Child("pager").Child("fps").Build()

	tcs := map[string]struct {
		err      *yaml.Error
		want     string
		contains []string
	}{
		"without path": {
			err:  yaml.NewError(errors.New("value is required")),
			want: "value is required",
		},
		"with path": {
			err:  yaml.NewError(errors.New("must be positive"), yaml.WithPath(fpsPath)),
			want: "error at $.ui.pager.fps: must be positive",
		},
		"with path and source": {
			err: yaml.NewError(errors.New("must be positive"),
				yaml.WithPath(fpsPath),
				yaml.WithSource([]byte(source)),
			),
			contains: []string{
				"error at $.ui.pager.fps: must be positive",
				"fps: -1",
			},
		},
		"nil error": {
			err:  yaml.NewError(nil, yaml.WithPath(fpsPath)),
			want: "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.err.Error()
			if tc.contains == nil {
				assert.Equal(t, tc.want, got)

				return
			}

			for _, s := range tc.contains {
				assert.Contains(t, got, s)
			}
		})
	}
}

func TestErrorWrapper(t *testing.T) {
	t.Parallel()

	ew := yaml.NewErrorWrapper(yaml.WithSource([]byte(source)))

	t.Run("yaml error", func(t *testing.T) {
		t.Parallel()

		in := fmt.Errorf("validate: %w", yaml.NewError(errors.New("bad")))
		err := ew.Wrap(in, yaml.WithColor(false))

		var yamlErr *yaml.Error
		require.ErrorAs(t, err, &yamlErr)
		assert.Equal(t, []byte(source), yamlErr.Source)
	})

	t.Run("other error", func(t *testing.T) {
		t.Parallel()

		in := errors.New("boom")
		assert.Same(t, in, ew.Wrap(in))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, ew.Wrap(nil))
	})
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := error(yaml.NewError(sentinel, yaml.WithPath(yaml.NewPathBuilder().Root().Build())))

	assert.ErrorIs(t, err, sentinel)
}
