// Package category merges the government-plan taxonomy and the curated
// declaration-topic taxonomy into one immutable, key-indexed registry.
package category

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the versioned source data a Registry is built from.
type Catalog struct {
	Version           int          `yaml:"version"`
	DefaultIcon       string       `yaml:"default_icon"`
	Palette           []string     `yaml:"palette"`
	SyntheticPalette  []string     `yaml:"synthetic_palette"`
	IconRules         []IconRule   `yaml:"icon_rules"`
	PlanCategories    []string     `yaml:"plan_categories"`
	DeclarationTopics []TopicEntry `yaml:"declaration_topics"`
}

// TopicEntry is a hand-authored declaration topic.
type TopicEntry struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
	Order int    `yaml:"order"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// Default builds a Registry from the embedded catalog.
func Default() (*Registry, error) {
	c, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewRegistry(c)
}
