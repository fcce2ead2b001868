// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	raw := []byte(`
charger:
  endpoint: "192.168.1.50:502"
  timeout_ms: 2000
  sockets: [1, 2]
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	c := cfg.Charger
	if c.Endpoint != "192.168.1.50:502" || c.TimeoutMs != 2000 {
		t.Fatalf("got %+v", c)
	}
	if len(c.Sockets) != 2 || c.Sockets[0] != 1 || c.Sockets[1] != 2 {
		t.Fatalf("sockets: %v", c.Sockets)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("charger: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
