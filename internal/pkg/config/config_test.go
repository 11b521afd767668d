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
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
odds_api:
  api_key: "test-key"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OddsAPI.BaseURL != DefaultBaseURL {
		t.Errorf("base url = %q", cfg.OddsAPI.BaseURL)
	}
	if cfg.OddsAPI.Regions != DefaultRegions {
		t.Errorf("regions = %q", cfg.OddsAPI.Regions)
	}
	if cfg.Display.ChunkLimit != DefaultChunkLimit {
		t.Errorf("chunk limit = %d", cfg.Display.ChunkLimit)
	}
	if cfg.Display.Timezone != "UTC" {
		t.Errorf("timezone = %q", cfg.Display.Timezone)
	}
	if cfg.Telegram.Mode != "polling" {
		t.Errorf("mode = %q", cfg.Telegram.Mode)
	}
	if cfg.Redis.SnapshotTTL != DefaultSnapshotTTL {
		t.Errorf("snapshot ttl = %v", cfg.Redis.SnapshotTTL)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config: %v", err)
	}
}

func TestLoadEnvOverridesToken(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "file-token"
odds_api:
  api_key: "test-key"
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.Token != "env-token" {
		t.Errorf("token = %q, want env override", cfg.Telegram.Token)
	}
}

func TestLoadParsesFullConfig(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "t"
  mode: webhook
  webhook_addr: ":8443"
  webhook_secret: "s3cret"
odds_api:
  api_key: "k"
  timeout: 10s
display:
  timezone: America/Toronto
  chunk_limit: 2000
  league: mlb
redis:
  addr: localhost:6379
  snapshot_ttl: 2m
health:
  port: 9090
  read_header_timeout: 5s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.Mode != "webhook" || cfg.Telegram.WebhookAddr != ":8443" {
		t.Errorf("webhook config: %+v", cfg.Telegram)
	}
	if cfg.OddsAPI.Timeout.Std() != 10*time.Second {
		t.Errorf("timeout = %v", cfg.OddsAPI.Timeout.Std())
	}
	if cfg.Redis.SnapshotTTL.Std() != 2*time.Minute {
		t.Errorf("snapshot ttl = %v", cfg.Redis.SnapshotTTL.Std())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config: %v", err)
	}
}

func TestValidateWebhookRequiresSecret(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "t"
  mode: webhook
  webhook_addr: ":8443"
odds_api:
  api_key: "k"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing webhook secret")
	}
}
