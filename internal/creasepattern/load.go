package creasepattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML crease pattern and prepares it for rendering.
func Load(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("creasepattern: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("creasepattern: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes YAML pattern data.
func Parse(data []byte) (*Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := p.Prepare(); err != nil {
		return nil, err
	}
	return &p, nil
}
