// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tasbih/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Counter CounterConfig `toml:"counter"`
}

// CounterConfig maps counter-related settings. Nil fields were not set in the file.
type CounterConfig struct {
	Target    *int     `toml:"target"`
	Sound     *bool    `toml:"sound"`
	Vibration *bool    `toml:"vibration"`
	Dhikr     *string  `toml:"dhikr"`
	Labels    []string `toml:"labels"`
}

// LoadConfig reads the counter config at path. A missing file yields an empty
// config; unknown keys and out-of-range values are errors.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return FileConfig{}, nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return FileConfig{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Counter.validate(); err != nil {
		return FileConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c CounterConfig) validate() error {
	if c.Target != nil && *c.Target < 1 {
		return fmt.Errorf("counter.target must be >= 1, got %d", *c.Target)
	}
	if c.Dhikr != nil && strings.TrimSpace(*c.Dhikr) == "" {
		return errors.New("counter.dhikr must not be empty")
	}
	if c.Labels != nil {
		if err := validateLabels(c.Labels); err != nil {
			return fmt.Errorf("counter.labels: %w", err)
		}
	}
	return nil
}

// Validate checks a resolved counter config, after flags are applied.
func Validate(cfg model.Config) error {
	if cfg.Target < 1 {
		return errors.New("target must be >= 1")
	}
	if strings.TrimSpace(cfg.Dhikr) == "" {
		return errors.New("dhikr must not be empty")
	}
	return validateLabels(cfg.Labels)
}

func validateLabels(labels []string) error {
	if len(labels) == 0 {
		return errors.New("at least one label is required")
	}
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			return errors.New("labels must not be empty")
		}
		if _, ok := seen[label]; ok {
			return fmt.Errorf("duplicate label %q", label)
		}
		seen[label] = struct{}{}
	}
	return nil
}
