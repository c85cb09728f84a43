package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	return path
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := writeConfig(t, `{
	  "telegram": {"token": "123:abc", "poll_timeout_seconds": 25, "poll_limit": 100},
	  "logging": {"format": "json", "level": "debug", "add_source": true}
	}`)

	t.Setenv("TELEWIRE_CONFIG", path)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_ALLOW_FROM", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Telegram.Token != "123:abc" {
		t.Fatalf("telegram.token = %q, want %q", cfg.Telegram.Token, "123:abc")
	}
	if cfg.Telegram.PollTimeoutSeconds != 25 {
		t.Fatalf("poll_timeout_seconds = %d, want 25", cfg.Telegram.PollTimeoutSeconds)
	}
	if cfg.Telegram.PollLimit != 100 {
		t.Fatalf("poll_limit = %d, want 100", cfg.Telegram.PollLimit)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging.format = %q, want %q", cfg.Logging.Format, "json")
	}
	if !cfg.Logging.AddSource {
		t.Fatal("logging.add_source = false, want true")
	}
}

func TestLoadConfigInvalidEnvPath(t *testing.T) {
	t.Setenv("TELEWIRE_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing config path")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `{
	  "telegram": {"token": "file-token", "allow_from": ["1"]}
	}`)

	t.Setenv("TELEWIRE_CONFIG", path)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_ALLOW_FROM", " 10 , , 20 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Telegram.Token != "env-token" {
		t.Fatalf("telegram.token = %q, want env override", cfg.Telegram.Token)
	}
	if len(cfg.Telegram.AllowFrom) != 2 || cfg.Telegram.AllowFrom[0] != "10" || cfg.Telegram.AllowFrom[1] != "20" {
		t.Fatalf("allow_from = %v, want [10 20]", cfg.Telegram.AllowFrom)
	}
}

func TestParseCSV(t *testing.T) {
	got := parseCSV("a, ,b,,c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("parseCSV = %v, want [a b c]", got)
	}
}
