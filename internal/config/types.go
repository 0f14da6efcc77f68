package config

import "fmt"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "settings file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Default values.
const (
	AppDirName       = "todo"
	SettingsFileName = "todo.toml"
	DefaultDataFile  = "todo.json"
	DefaultColor     = ColorAuto
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the full configuration for todo.
type Config struct {
	// Paths
	DataFile string `toml:"data_file,omitempty"`

	// Output
	Silent bool   `toml:"silent"`
	Color  string `toml:"color,omitempty"`

	// Logging configuration
	LogLevel      string `toml:"log_level,omitempty"`
	LogFormat     string `toml:"log_format,omitempty"`
	LogTimestamps bool   `toml:"log_timestamps,omitempty"`

	// Computed
	Dir          string                  `toml:"-"` // config directory
	SettingsFile string                  `toml:"-"` // settings file that was (or would be) read
	Sources      map[string]ConfigSource `toml:"-"`
	Warnings     []string                `toml:"-"`
}

// Source reports where the named setting came from.
func (c *Config) Source(name string) ConfigSource {
	if s, ok := c.Sources[name]; ok {
		return s
	}
	return SourceDefault
}

// SettingError reports an invalid setting name or value.
type SettingError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *SettingError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("unknown setting %q (see `todo set help`)", e.Name)
	}
	return fmt.Sprintf("invalid value %q for setting %q (expected %s)", e.Value, e.Name, joinChoices(e.Allowed))
}
