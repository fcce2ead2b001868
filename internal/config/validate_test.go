// internal/config/validate_test.go
package config

import "testing"

func charger(endpoint string, timeoutMs int, sockets ...int) *Config {
	return &Config{
		Charger: ChargerConfig{
			Endpoint:  endpoint,
			TimeoutMs: timeoutMs,
			Sockets:   sockets,
		},
	}
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	if err := Validate(charger("10.0.0.5:502", 2000, 1, 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NoSocketListOK(t *testing.T) {
	if err := Validate(charger("10.0.0.5:502", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingEndpoint(t *testing.T) {
	if err := Validate(charger("", 1000)); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	if err := Validate(charger("10.0.0.5:502", -1)); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestValidate_SocketIndexZero(t *testing.T) {
	if err := Validate(charger("10.0.0.5:502", 1000, 0)); err == nil {
		t.Fatal("expected error for socket index 0")
	}
}

func TestValidate_DuplicateSocket(t *testing.T) {
	if err := Validate(charger("10.0.0.5:502", 1000, 1, 1)); err == nil {
		t.Fatal("expected error for duplicate socket index")
	}
}

func TestNormalize_DefaultTimeout(t *testing.T) {
	cfg := charger("10.0.0.5:502", 0)
	Normalize(cfg)
	if cfg.Charger.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("TimeoutMs=%d, want %d", cfg.Charger.TimeoutMs, DefaultTimeoutMs)
	}
}

func TestNormalize_KeepsExplicitTimeout(t *testing.T) {
	cfg := charger("10.0.0.5:502", 250)
	Normalize(cfg)
	if cfg.Charger.TimeoutMs != 250 {
		t.Fatalf("TimeoutMs=%d, want 250", cfg.Charger.TimeoutMs)
	}
}
