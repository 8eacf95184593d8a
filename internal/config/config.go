// Package config holds the built-in defaults used when the command line does
// not override them. The defaults are compiled into the binary; there is no
// user configuration file.
package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the set of defaults. Nothing in the program writes to it after
// Load. SystemPrompt is a slice, so copies share its backing array; each Load
// call decodes a fresh Config.
type Config struct {
	Model        string   `yaml:"model"`
	URL          string   `yaml:"url"`
	Port         uint16   `yaml:"port"`
	SystemPrompt []string `yaml:"system_prompt"`
}

// Load decodes the embedded defaults.
func Load() (Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes a defaults document and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every default is set.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("config: default model is required")
	}
	if c.URL == "" {
		return fmt.Errorf("config: default url is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("config: default port is required")
	}
	if len(c.SystemPrompt) == 0 {
		return fmt.Errorf("config: default system prompt is required")
	}
	for i, s := range c.SystemPrompt {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("config: system prompt sentence %d is empty", i)
		}
	}

	return nil
}

// DefaultSystem returns the default system instruction as one block, with the
// sentences joined by single spaces.
func (c Config) DefaultSystem() string {
	return strings.Join(c.SystemPrompt, " ")
}
