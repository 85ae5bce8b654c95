// Package configs provides the global Config configuration type for doodles.
package configs

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/macropower/doodles/api"
	"github.com/macropower/doodles/api/v1beta1"
	"github.com/macropower/doodles/pkg/lazy"
	"github.com/macropower/doodles/pkg/ui"
	"github.com/macropower/doodles/pkg/yaml"
)

//go:generate go run ../../../internal/schemagen -o configs.v1beta1.json

// SchemaURL is where the published configuration schema lives.
const SchemaURL = "https://raw.githubusercontent.com/macropower/doodles/refs/heads/main/api/v1beta1/configs/configs.v1beta1.json"

var (
	// ValidKinds contains the valid kind values for global configurations.
	ValidKinds = []string{"Configuration"}

	defaultValidator = lazy.New(func() *yaml.Validator {
		schema, err := Schema()
		if err != nil {
			panic(err)
		}

		return yaml.MustNewValidator(SchemaURL, schema)
	})

	// Compile-time interface checks.
	_ v1beta1.Object = (*Config)(nil)
)

// Config represents the global doodles configuration.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	UI               *ui.Config `json:"ui,omitempty" jsonschema:"title=UI"`
	v1beta1.TypeMeta `json:",inline"`
}

// New creates a new global [Config] with default values.
func New() *Config {
	c := &Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: v1beta1.APIVersion,
			Kind:       "Configuration",
		},
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.UI == nil {
		c.UI = ui.NewConfig()
	} else {
		c.UI.EnsureDefaults()
	}
}

// Validate checks constraints that the schema cannot express.
func (c *Config) Validate() error {
	if c.UI == nil {
		return nil
	}

	err := c.UI.Validate()
	if err != nil {
		return fmt.Errorf("validate ui config: %w", err)
	}

	return nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	err := v1beta1.ExtendSchemaWithEnums(jss, v1beta1.ValidAPIVersions, ValidKinds)
	if err != nil {
		panic(err)
	}
}

// MarshalYAML serializes the config to YAML, with a schema modeline.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := yaml.Marshal(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return append([]byte("# yaml-language-server: $schema="+SchemaURL+"\n"), b...), nil
}

// Write writes the config to the specified path if it doesn't already exist.
func (c Config) Write(path string) error {
	b, err := c.MarshalYAML()
	if err != nil {
		return err
	}

	err = api.WriteIfNotExists(path, b)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string, force bool) error {
	b, err := New().MarshalYAML()
	if err != nil {
		return err
	}

	err = api.WriteDefaultFile(path, b, force, "configuration")
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	return nil
}

// GetPath returns the path to the global configuration file.
func GetPath() string {
	return api.GetConfigPath("config.yaml")
}

// Schema returns the JSON schema of [Config].
func Schema() ([]byte, error) {
	b, err := yaml.NewSchemaGenerator(New(), yaml.WithSchemaID(SchemaURL)).Generate()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}

	return b, nil
}

// DefaultValidator validates global configuration against the JSON schema.
func DefaultValidator() *yaml.Validator {
	return defaultValidator.Get()
}
