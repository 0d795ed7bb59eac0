// Package values loads name → value bindings from a YAML file.
//
//	# values.yaml
//	greeting: hello
//	port: 8000
//	features:
//	  beta: true
//
//	reg, err := values.Registry("values.yaml")
//	reg.GetByName("port") // 8000
package values

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"go.yaml.in/yaml/v3"

	"github.com/km-arc/go-registry/framework/registry"
)

// Load reads a YAML mapping from path. Nested mappings are kept as values.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML mapping; source only labels errors.
func Parse(data []byte, source string) (map[string]any, error) {
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing values %s: %w", source, err)
	}
	return m, nil
}

// Registry builds a registry with one binding per top-level key of path.
func Registry(path string, opts ...registry.Option) (*registry.Registry, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return registry.FromMap(m, opts...), nil
}

// Provider contributes the values of a YAML file to a provider registry.
type Provider struct {
	registry.BaseProvider
	Path   string
	values map[string]any
}

// NewProvider reads path eagerly so a broken file fails at startup.
func NewProvider(path string) (*Provider, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Provider{Path: path, values: m}, nil
}

func (p *Provider) Register(b *registry.Builder) {
	for _, name := range slices.Sorted(maps.Keys(p.values)) {
		b.Instance(name, p.values[name])
	}
}
