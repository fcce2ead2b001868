// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Charger ChargerConfig `yaml:"charger"`
}

// ChargerConfig locates one charging station.
type ChargerConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Sockets lists the 1-based socket indices to read. Empty means every
	// socket the station reports.
	Sockets []int `yaml:"sockets"`
}

// Load reads and parses a YAML config file. No validation here.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
