// Package config persists the launcher defaults as a TOML file in the app
// data directory. Missing file means defaults; the file is created on
// first load so operators have something to edit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Settings are the persisted launcher defaults.
type Settings struct {
	// Separator joins single-instance arguments when --separator is absent.
	Separator string `toml:"separator"`
	// DelayMS is the inter-launch delay applied when --delay is absent.
	DelayMS int `toml:"delay_ms"`
	// History toggles recording of runs in the launch-history database.
	History bool `toml:"history"`
	// Color toggles styled console output (flags and NO_COLOR still win).
	Color bool `toml:"color"`
	// LogLevel is the minimum level written to the log file.
	LogLevel string `toml:"log_level"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		Separator: " ",
		DelayMS:   0,
		History:   true,
		Color:     true,
		LogLevel:  "warn",
	}
}

// Load reads settings from path. A missing file is initialized with
// defaults; a corrupt file is an error so typos do not silently fall back.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Best effort: a read-only config dir should not block a launch.
		_ = Save(path, s)
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// Save writes settings to path with owner-only permissions.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Keys lists the settable key names, in display order.
func Keys() []string {
	return []string{"separator", "delay_ms", "history", "color", "log_level"}
}

// Get returns the display value for a key.
func (s Settings) Get(key string) (string, bool) {
	switch key {
	case "separator":
		return s.Separator, true
	case "delay_ms":
		return strconv.Itoa(s.DelayMS), true
	case "history":
		return strconv.FormatBool(s.History), true
	case "color":
		return strconv.FormatBool(s.Color), true
	case "log_level":
		return s.LogLevel, true
	default:
		return "", false
	}
}

// Set parses and assigns a value by key name.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "separator":
		s.Separator = value
	case "delay_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("delay_ms must be a non-negative number")
		}
		s.DelayMS = n
	case "history":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("history must be true or false")
		}
		s.History = b
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color must be true or false")
		}
		s.Color = b
	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			s.LogLevel = value
		default:
			return fmt.Errorf("log_level must be debug, info, warn or error")
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
