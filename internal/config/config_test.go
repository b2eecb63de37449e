package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvTrendMonths, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
	if want := filepath.Join(dir, "data", "cyros", "cyros.db"); cfg.DBPath() != want {
		t.Errorf("DBPath = %s, want %s", cfg.DBPath(), want)
	}
	if want := filepath.Join(dir, "state", "cyros", "cyros.log"); cfg.LogPath() != want {
		t.Errorf("LogPath = %s, want %s", cfg.LogPath(), want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "€"
	cfg.General.TrendMonths = 12
	cfg.Appearance.Theme = "paper"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Fatal("Exists false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDBPath, "/tmp/elsewhere.db")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath() != "/tmp/elsewhere.db" {
		t.Errorf("DBPath = %s", cfg.DBPath())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %s", cfg.Log.Level)
	}

	t.Setenv(EnvTrendMonths, "many")
	if _, err := Load(); err == nil {
		t.Error("Load accepted a non-numeric trend override")
	}
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := isolate(t)
	// t.Setenv registered cleanup for the key; unset it so godotenv can fill it.
	_ = os.Unsetenv(EnvLogLevel)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvLogLevel+"=warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn from .env", cfg.Log.Level)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestLoad_NonPositiveTrendMonthsFallsBack(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()
	cfg.General.TrendMonths = 0
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.General.TrendMonths != 6 {
		t.Errorf("TrendMonths = %d, want 6", got.General.TrendMonths)
	}
}
