package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Source.Kind != SourceDir {
		t.Errorf("expected source kind %q, got %q", SourceDir, cfg.Source.Kind)
	}
	if cfg.Reload.Interval.Std() != 5*time.Minute {
		t.Errorf("expected 5m reload interval, got %v", cfg.Reload.Interval.Std())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Source = SourceConfig{Kind: SourceSQLite, Path: "/tmp/board.db"}
	cfg.Reload.Interval = Duration(90 * time.Second)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.Source != cfg.Source {
		t.Errorf("expected source %+v, got %+v", cfg.Source, got.Source)
	}
	if got.Reload.Interval.Std() != 90*time.Second {
		t.Errorf("expected 1m30s, got %v", got.Reload.Interval.Std())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"log":{"level":"debug"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Log.Level)
	}
	if cfg.Source.Kind != SourceDir {
		t.Errorf("expected default source kind, got %q", cfg.Source.Kind)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SIGNALBOARD_SOURCE", "SQLITE")
	t.Setenv("SIGNALBOARD_PATH", "/var/lib/board.db")
	t.Setenv("SIGNALBOARD_LOG_LEVEL", "warn")
	t.Setenv("SIGNALBOARD_RELOAD", "30s")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Source.Kind != SourceSQLite {
		t.Errorf("expected sqlite, got %q", cfg.Source.Kind)
	}
	if cfg.Source.Path != "/var/lib/board.db" {
		t.Errorf("expected env path, got %q", cfg.Source.Path)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected warn, got %q", cfg.Log.Level)
	}
	if cfg.Reload.Interval.Std() != 30*time.Second {
		t.Errorf("expected 30s, got %v", cfg.Reload.Interval.Std())
	}
}

func TestApplyEnvBadDuration(t *testing.T) {
	t.Setenv("SIGNALBOARD_RELOAD", "soon")
	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("expected error for bad duration")
	}
}

func TestValidateRejectsUnknownKind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.Kind = "http"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown source kind")
	}
}
