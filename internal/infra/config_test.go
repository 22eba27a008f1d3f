package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "tcp://trade.example.internal:9880"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Trading.RoutingType != "5" {
		t.Errorf("routing type = %q; want default 5", cfg.Trading.RoutingType)
	}
	if cfg.Trading.ValidUntilTime != "18:30:00.000" {
		t.Errorf("valid until = %q; want default", cfg.Trading.ValidUntilTime)
	}
	if cfg.Gateway.Name != "COMSTAR" {
		t.Errorf("gateway name = %q; want default", cfg.Gateway.Name)
	}
	if cfg.Gateway.InboxSize != 4096 {
		t.Errorf("inbox size = %d; want default 4096", cfg.Gateway.InboxSize)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "tcp://trade.example.internal:9880"
  username: "file-user"
`)

	t.Setenv("COMSTAR_USERNAME", "env-user")
	t.Setenv("COMSTAR_PASSWORD", "env-pass")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Username != "env-user" {
		t.Errorf("username = %q; env must override file", cfg.Server.Username)
	}
	if cfg.Server.Password != "env-pass" {
		t.Errorf("password = %q; env must override file", cfg.Server.Password)
	}
}

func TestLoadConfigRejectsMissingAddress(t *testing.T) {
	path := writeConfig(t, `
gateway:
  name: "COMSTAR"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("missing server address should fail validation")
	}
}

func TestLoadConfigRejectsBadValidUntil(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "tcp://trade.example.internal:9880"
trading:
  valid_until_time: "not a time"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed valid_until_time should fail validation")
	}
}
