package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// configDir returns the todo config directory. TODO_CONFIG_DIR wins over the
// OS-specific location. Returns "." if no location can be determined.
func configDir() string {
	if v := os.Getenv("TODO_CONFIG_DIR"); v != "" {
		return expandPath(v)
	}
	if base := osUserConfigDir(); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return "."
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		// Linux/BSD: respect XDG_CONFIG_HOME or use ~/.config
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// DefaultSettingsFile returns the settings file path in the config directory.
func DefaultSettingsFile() string {
	return filepath.Join(configDir(), SettingsFileName)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Dir = configDir()
	cfg.SettingsFile = DefaultSettingsFile()
	cfg.DataFile = DefaultDataFile
	cfg.Silent = false
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.Sources = make(map[string]ConfigSource)
}
