// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	c := cfg.Charger

	if c.Endpoint == "" {
		return fmt.Errorf("charger: endpoint required")
	}

	if c.TimeoutMs < 0 {
		return fmt.Errorf("charger: timeout_ms must be >= 0, got %d", c.TimeoutMs)
	}

	seen := make(map[int]bool, len(c.Sockets))
	for _, s := range c.Sockets {
		if s < 1 {
			return fmt.Errorf("charger: socket index must be >= 1, got %d", s)
		}
		if seen[s] {
			return fmt.Errorf("charger: duplicate socket index %d", s)
		}
		seen[s] = true
	}

	return nil
}
