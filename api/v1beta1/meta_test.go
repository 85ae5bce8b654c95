package v1beta1_test

import (
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/api/v1beta1"
)

func TestTypeMeta(t *testing.T) {
	t.Parallel()

	tm := v1beta1.TypeMeta{
		APIVersion: v1beta1.APIVersion,
		Kind:       "Configuration",
	}

	assert.Equal(t, "doodles.jacobcolvin.com/v1beta1", tm.GetAPIVersion())
	assert.Equal(t, "Configuration", tm.GetKind())
}

func TestExtendSchemaWithEnums(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		props       []string
		apiVersions []string
		kinds       []string
		err         error
	}{
		"single values": {
			props:       []string{"apiVersion", "kind"},
			apiVersions: []string{"v1"},
			kinds:       []string{"Configuration"},
		},
		"multiple values": {
			props:       []string{"apiVersion", "kind"},
			apiVersions: []string{"v1", "v1beta1"},
			kinds:       []string{"Configuration", "Theme"},
		},
		"missing apiVersion": {
			props: []string{"kind"},
			err:   v1beta1.ErrMissingProperty,
		},
		"missing kind": {
			props: []string{"apiVersion"},
			err:   v1beta1.ErrMissingProperty,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			jss := &jsonschema.Schema{Properties: jsonschema.NewProperties()}
			for _, p := range tc.props {
				jss.Properties.Set(p, &jsonschema.Schema{Type: "string"})
			}

			err := v1beta1.ExtendSchemaWithEnums(jss, tc.apiVersions, tc.kinds)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			apiVersion, ok := jss.Properties.Get("apiVersion")
			require.True(t, ok)

			kind, ok := jss.Properties.Get("kind")
			require.True(t, ok)

			for i, v := range tc.apiVersions {
				assert.Equal(t, v, apiVersion.Enum[i])
			}

			for i, k := range tc.kinds {
				assert.Equal(t, k, kind.Enum[i])
			}
		})
	}
}
