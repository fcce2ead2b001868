// internal/config/normalize.go
package config

// DefaultTimeoutMs applies when timeout_ms is omitted.
const DefaultTimeoutMs = 1000

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Charger.TimeoutMs == 0 {
		cfg.Charger.TimeoutMs = DefaultTimeoutMs
	}
}
