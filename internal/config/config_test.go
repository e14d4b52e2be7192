package config

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	cfg := NewConfig()

	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg := NewConfig()

	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
}
