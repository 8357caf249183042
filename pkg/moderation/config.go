package moderation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the on-disk moderation policy.
type Config struct {
	Keywords []string `yaml:"keywords"`
}

// LoadFilter reads a YAML deny-list from path. A missing file yields the
// default filter.
func LoadFilter(path string) (*Filter, error) {
	if path == "" {
		return NewFilter(DefaultKeywords), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewFilter(DefaultKeywords), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read moderation config: %w", err)
	}
	return ParseFilter(data)
}

// ParseFilter builds a filter from YAML. An empty keyword list keeps the
// defaults.
func ParseFilter(data []byte) (*Filter, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse moderation config: %w", err)
	}
	if len(cfg.Keywords) == 0 {
		return NewFilter(DefaultKeywords), nil
	}
	return NewFilter(cfg.Keywords), nil
}
