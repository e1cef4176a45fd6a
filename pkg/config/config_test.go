package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 2s
logging:
  level: debug
cache:
  backend: memory
  ttl: 30s
stream:
  enabled: true
  update_interval: 2s
sim:
  price_volatility: 0.1
  base_prices:
    electricity: 60.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected read timeout %v", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level %s", cfg.Logging.Level)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Sim.BasePrices["electricity"] != 60.0 {
		t.Fatalf("unexpected sim base prices %v", cfg.Sim.BasePrices)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Cache.Backend != "memory" {
		t.Fatalf("expected memory cache default, got %s", cfg.Cache.Backend)
	}
	if cfg.Stream.UpdateInterval != time.Second {
		t.Fatalf("expected 1s stream default, got %v", cfg.Stream.UpdateInterval)
	}
}

func TestLoadMissingEnvironment(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing environment")
	}
}

func TestLoadInvalidCacheBackend(t *testing.T) {
	path := writeConfig(t, "environment: test\ncache:\n  backend: bogus\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for bogus cache backend")
	}
}

func TestLoadRedisRequiresAddr(t *testing.T) {
	path := writeConfig(t, "environment: test\ncache:\n  backend: redis\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for redis backend without addr")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CACHE_BACKEND", "none")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level warn, got %s", cfg.Logging.Level)
	}
	if cfg.Cache.Backend != "none" {
		t.Fatalf("expected env backend none, got %s", cfg.Cache.Backend)
	}
}
