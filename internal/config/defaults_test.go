package config

import (
	"testing"
)

// TestLoadConfig_KnownValues ensures the loaded config only holds values the CLI understands
func TestLoadConfig_KnownValues(t *testing.T) {
	t.Setenv("SITECHECK_LOG_LEVEL", "warn")
	t.Setenv("SITECHECK_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfig returned nil config")
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel not taken from environment: %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat not taken from environment: %s", cfg.LogFormat)
	}
}
