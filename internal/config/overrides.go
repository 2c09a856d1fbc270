package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is optional per-deployment customization loaded from a YAML
// file: extra command aliases and category ordering tweaks. Everything
// in it is additive; absent file means no overrides.
type Overrides struct {
	Aliases    map[string][]string `yaml:"aliases"`
	Categories map[string]int      `yaml:"categories"`
}

// LoadOverrides reads an overrides file. A missing path returns empty
// overrides, not an error.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overrides{}, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return &o, nil
}

// ApplyCategoryWeights merges override weights into the default table.
func (o *Overrides) ApplyCategoryWeights() {
	for cat, w := range o.Categories {
		CategoryWeights[cat] = w
	}
}
