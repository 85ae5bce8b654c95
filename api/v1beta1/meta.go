// Package v1beta1 contains the v1beta1 API types for doodles configuration.
package v1beta1

import (
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

// APIVersion is the current API version for all doodles configuration kinds.
const APIVersion = "doodles.jacobcolvin.com/v1beta1"

var (
	// ValidAPIVersions contains all valid API versions.
	ValidAPIVersions = []string{APIVersion}

	// ErrMissingProperty is returned when a schema lacks the type metadata
	// properties.
	ErrMissingProperty = errors.New("missing schema property")
)

// TypeMeta contains the API version and kind metadata common to all config types.
type TypeMeta struct {
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

func (tm TypeMeta) GetAPIVersion() string {
	return tm.APIVersion
}

func (tm TypeMeta) GetKind() string {
	return tm.Kind
}

// Object is the interface that all config types implement.
type Object interface {
	GetAPIVersion() string
	GetKind() string
	EnsureDefaults()
}

// ExtendSchemaWithEnums restricts the apiVersion and kind properties of jss
// to the given values.
func ExtendSchemaWithEnums(jss *jsonschema.Schema, apiVersions, kinds []string) error {
	for prop, values := range map[string][]string{
		"apiVersion": apiVersions,
		"kind":       kinds,
	} {
		s, ok := jss.Properties.Get(prop)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingProperty, prop)
		}

		for _, v := range values {
			s.Enum = append(s.Enum, v)
		}
	}

	return nil
}
