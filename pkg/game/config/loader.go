package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML rules file and overlays it on the defaults, so a
// file only needs to name the values it changes.
func Load(path string) (Rules, error) {
	rules := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("rules file %s: %w", path, err)
	}

	return rules, nil
}

// LoadIfPresent returns Load(path) when path is non-empty and the
// defaults otherwise.
func LoadIfPresent(path string) (Rules, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
