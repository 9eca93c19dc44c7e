// Package config loads the persistent signalboard configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source kinds.
const (
	SourceDir    = "dir"
	SourceSQLite = "sqlite"
)

// Config is the persistent application configuration
type Config struct {
	Source SourceConfig `json:"source"`
	Reload ReloadConfig `json:"reload"`
	Log    LogConfig    `json:"log"`
	UI     UIConfig     `json:"ui"`
}

// SourceConfig says where stream documents are read from.
type SourceConfig struct {
	Kind string `json:"kind"` // "dir" or "sqlite"
	Path string `json:"path"` // data directory or database file
}

// ReloadConfig controls periodic and manual reloads.
type ReloadConfig struct {
	Interval Duration `json:"interval"` // 0 disables periodic reload
	MinGap   Duration `json:"min_gap"`  // minimum time between manual reloads
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `json:"level"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	ShowClock bool `json:"show_clock"`
}

// Duration is a time.Duration that reads and writes as "5m", "30s".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind: SourceDir,
			Path: filepath.Join(DataDir(), "data"),
		},
		Reload: ReloadConfig{
			Interval: Duration(5 * time.Minute),
			MinGap:   Duration(2 * time.Second),
		},
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{ShowClock: true},
	}
}

// DataDir returns ~/.signalboard.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".signalboard")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults. Environment overrides
// are applied either way.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path. Fields missing from the file keep their
// defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from SIGNALBOARD_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SIGNALBOARD_SOURCE"); v != "" {
		c.Source.Kind = strings.ToLower(v)
	}
	if v := os.Getenv("SIGNALBOARD_PATH"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("SIGNALBOARD_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("SIGNALBOARD_RELOAD"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SIGNALBOARD_RELOAD: %w", err)
		}
		c.Reload.Interval = Duration(d)
	}
	return nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceDir, SourceSQLite:
	default:
		return fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}
	if c.Source.Path == "" {
		return fmt.Errorf("source path is empty")
	}
	if c.Reload.Interval < 0 || c.Reload.MinGap < 0 {
		return fmt.Errorf("reload durations must not be negative")
	}
	return nil
}
