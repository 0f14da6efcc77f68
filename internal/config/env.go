package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	setEnv := func(field string) {
		cfg.Sources[field] = SourceEnv
	}

	if v := os.Getenv("TODO_DATA_FILE"); v != "" {
		path, err := absFromWorkDir(v)
		if err != nil {
			return err
		}
		cfg.DataFile = path
		setEnv("data_file")
	}
	if v := os.Getenv("TODO_SILENT"); v != "" {
		b, ok := parseBool(v)
		if !ok {
			return &SettingError{Name: "silent", Value: v, Allowed: boolChoices}
		}
		cfg.Silent = b
		setEnv("silent")
	}

	// NO_COLOR (https://no-color.org) is honoured unless TODO_COLOR says otherwise.
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = ColorNever
		setEnv("color")
	}
	if v := os.Getenv("TODO_COLOR"); v != "" {
		cfg.Color = strings.ToLower(strings.TrimSpace(v))
		setEnv("color")
	}

	// Logging configuration
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
		setEnv("log_level")
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
		setEnv("log_format")
	}
	if v := os.Getenv("TODO_LOG_TIMESTAMPS"); v != "" {
		b, ok := parseBool(v)
		if !ok {
			return &SettingError{Name: "log_timestamps", Value: v, Allowed: boolChoices}
		}
		cfg.LogTimestamps = b
		setEnv("log_timestamps")
	}
	return nil
}

// parseBool accepts the usual spellings of a boolean, including on/off.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
