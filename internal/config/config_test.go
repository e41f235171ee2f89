package config

import (
	"os"
	"testing"
)

func clearEnv() {
	os.Unsetenv("THEME_CULTURES")
	os.Unsetenv("THEME_REGION")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if len(cfg.EnabledCultures) != 0 {
		t.Errorf("EnabledCultures = %v, want empty", cfg.EnabledCultures)
	}
	if cfg.UserRegion != "" {
		t.Errorf("UserRegion = %q, want empty", cfg.UserRegion)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	os.Setenv("THEME_CULTURES", "hanukkah, diwali")
	os.Setenv("THEME_REGION", "IL")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cfg.EnabledCultures) != 2 || cfg.EnabledCultures[0] != "hanukkah" || cfg.EnabledCultures[1] != "diwali" {
		t.Errorf("EnabledCultures = %v, want [hanukkah diwali]", cfg.EnabledCultures)
	}
	if cfg.UserRegion != "IL" {
		t.Errorf("UserRegion = %q, want %q", cfg.UserRegion, "IL")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv()

	os.Setenv("LOG_LEVEL", "verbose")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid LOG_LEVEL succeeded, want error")
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	clearEnv()

	os.Setenv("LOG_FORMAT", "xml")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid LOG_FORMAT succeeded, want error")
	}
}
