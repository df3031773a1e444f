package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/soranowa/jimaku/internal/caption"
)

// Load reads a YAML configuration file and merges it over the engine
// defaults, so a partial file only overrides the keys it names. An empty
// path returns the defaults unchanged.
func Load(path string) (caption.Config, error) {
	cfg := caption.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
