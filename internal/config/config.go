// Package config loads the server's YAML settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds the serve command's settings. Flags override file values.
type Server struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
	Deck     string `yaml:"deck"`
	Workers  int    `yaml:"workers"`
}

func Default() Server {
	return Server{
		Addr:     ":8080",
		DataDir:  "./data",
		LogLevel: "info",
		Deck:     "single",
	}
}

// Load merges the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Server, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
