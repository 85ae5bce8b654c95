package yaml

import (
	"encoding/json"
	"fmt"
	"path"
	"reflect"

	"github.com/invopop/jsonschema"
)

// SchemaGenerator reflects a JSON schema from a Go value.
type SchemaGenerator struct {
	v        any
	id       string
	base     string
	packages []string
}

type SchemaOpt func(*SchemaGenerator)

// WithSchemaID sets the $id of the generated schema.
func WithSchemaID(id string) SchemaOpt {
	return func(g *SchemaGenerator) {
		g.id = id
	}
}

// WithGoComments adds the doc comments of the given packages as schema
// descriptions. Package paths are resolved against base, and the sources must
// be readable at generation time.
func WithGoComments(base string, packages ...string) SchemaOpt {
	return func(g *SchemaGenerator) {
		g.base = base
		g.packages = packages
	}
}

func NewSchemaGenerator(v any, opts ...SchemaOpt) *SchemaGenerator {
	g := &SchemaGenerator{v: v}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns the indented JSON schema.
func (g *SchemaGenerator) Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		Namer:          qualifiedName,
	}

	for _, pkg := range g.packages {
		err := r.AddGoComments(g.base, pkg)
		if err != nil {
			return nil, fmt.Errorf("add go comments for %s: %w", pkg, err)
		}
	}

	jss := r.Reflect(g.v)
	if g.id != "" {
		jss.ID = jsonschema.ID(g.id)
	}

	b, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}

// qualifiedName names definitions after their package, so that types with
// the same name in different packages do not collide.
func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}

	return path.Base(t.PkgPath()) + "." + t.Name()
}
