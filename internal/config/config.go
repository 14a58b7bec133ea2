// Package config loads and validates the optional .senor YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the parsed .senor configuration. All fields are
// optional; zero values fall back to built-in defaults.
type Config struct {
	Theme    string   `yaml:"theme"`     // default snapshot theme: light or dark
	Dir      string   `yaml:"dir"`       // snapshot directory override
	ForceEnv []string `yaml:"force_env"` // extra env entries forced on the child, e.g. FORCE_COLOR=1
}

// Load reads the .senor file from dir, falling back to the user's home
// directory. If neither exists, a default Config is returned.
func Load(dir string) (*Config, error) {
	for _, root := range candidates(dir) {
		path := filepath.Join(root, ".senor")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		cfg := &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return &Config{}, nil
}

func candidates(dir string) []string {
	roots := []string{dir}
	if home, err := os.UserHomeDir(); err == nil && home != dir {
		roots = append(roots, home)
	}
	return roots
}
