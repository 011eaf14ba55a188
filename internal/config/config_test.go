package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOPFRONT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "http://localhost:3000/api" {
		t.Errorf("BaseURL = %q", c.API.BaseURL)
	}
	if c.UI.CurrencyLabel != "synapses" {
		t.Errorf("CurrencyLabel = %q", c.UI.CurrencyLabel)
	}
	if c.UI.PricelessText != "priceless" {
		t.Errorf("PricelessText = %q", c.UI.PricelessText)
	}
	if !strings.HasSuffix(c.Log.Path, filepath.Join("shopfront", "shopfront.log")) {
		t.Errorf("Log.Path = %q", c.Log.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[api]
base_url = "http://shop.example.com/api"

[ui]
currency_label = "credits"

[log]
path = ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOPFRONT_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "http://shop.example.com/api" {
		t.Errorf("BaseURL = %q", c.API.BaseURL)
	}
	if c.UI.CurrencyLabel != "credits" {
		t.Errorf("CurrencyLabel = %q", c.UI.CurrencyLabel)
	}
	// unset keys keep their defaults
	if c.UI.PricelessText != "priceless" {
		t.Errorf("PricelessText = %q", c.UI.PricelessText)
	}
	if c.Log.Path != "" {
		t.Errorf("Log.Path = %q, want empty (file logging disabled)", c.Log.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SHOPFRONT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SHOPFRONT_API_BASE_URL", "http://override.example.com/api")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "http://override.example.com/api" {
		t.Errorf("BaseURL = %q", c.API.BaseURL)
	}
}

func TestNewLoggerEmptyPathIsNop(t *testing.T) {
	logger, err := NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("discarded")
}

func TestNewLoggerCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}
