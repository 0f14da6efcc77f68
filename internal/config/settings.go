package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

type settingKind int

const (
	kindString settingKind = iota
	kindBool
)

var boolChoices = []string{"on", "off"}

// Setting describes one key of the settings file.
type Setting struct {
	Name        string
	Kind        settingKind
	Choices     []string // empty means free-form
	Default     string
	Description string

	get func(*Config) string
	set func(*Config, string)
}

// copy moves the setting's value from src to dst.
func (s Setting) copy(dst, src *Config) {
	s.set(dst, s.get(src))
}

// normalize validates value and returns its canonical form.
func (s Setting) normalize(value string) (string, error) {
	v := strings.TrimSpace(value)
	switch s.Kind {
	case kindBool:
		b, ok := parseBool(v)
		if !ok {
			return "", &SettingError{Name: s.Name, Value: value, Allowed: s.Choices}
		}
		return onOff(b), nil
	default:
		if len(s.Choices) == 0 {
			if v == "" {
				return "", &SettingError{Name: s.Name, Value: value, Allowed: []string{"a non-empty value"}}
			}
			return v, nil
		}
		v = strings.ToLower(v)
		if !contains(s.Choices, v) {
			return "", &SettingError{Name: s.Name, Value: value, Allowed: s.Choices}
		}
		return v, nil
	}
}

// tomlValue returns the typed value written to the settings file.
func (s Setting) tomlValue(normalized string) any {
	if s.Kind == kindBool {
		return normalized == "on"
	}
	return normalized
}

var settings = []Setting{
	{
		Name:        "silent",
		Kind:        kindBool,
		Choices:     boolChoices,
		Default:     "off",
		Description: "Don't print the list after each change",
		get:         func(c *Config) string { return onOff(c.Silent) },
		set:         func(c *Config, v string) { c.Silent = v == "on" },
	},
	{
		Name:        "color",
		Choices:     []string{ColorAuto, ColorAlways, ColorNever},
		Default:     DefaultColor,
		Description: "Color done tasks green (auto: only on a terminal)",
		get:         func(c *Config) string { return c.Color },
		set:         func(c *Config, v string) { c.Color = v },
	},
	{
		Name:        "data_file",
		Default:     DefaultDataFile,
		Description: "Task list file, relative to the config directory",
		get:         func(c *Config) string { return c.DataFile },
		set:         func(c *Config, v string) { c.DataFile = v },
	},
	{
		Name:        "log_level",
		Choices:     []string{"debug", "info", "warn", "error"},
		Default:     DefaultLogLevel,
		Description: "Diagnostics written to stderr",
		get:         func(c *Config) string { return c.LogLevel },
		set:         func(c *Config, v string) { c.LogLevel = v },
	},
	{
		Name:        "log_format",
		Choices:     []string{"text", "json", "logfmt"},
		Default:     DefaultLogFormat,
		Description: "Log line format",
		get:         func(c *Config) string { return c.LogFormat },
		set:         func(c *Config, v string) { c.LogFormat = v },
	},
	{
		Name:        "log_timestamps",
		Kind:        kindBool,
		Choices:     boolChoices,
		Default:     "off",
		Description: "Prefix log lines with a timestamp",
		get:         func(c *Config) string { return onOff(c.LogTimestamps) },
		set:         func(c *Config, v string) { c.LogTimestamps = v == "on" },
	},
}

// Settings returns the settings that can be changed with `todo set`.
func Settings() []Setting {
	return slices.Clone(settings)
}

// LookupSetting finds a setting by name.
func LookupSetting(name string) (Setting, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range settings {
		if s.Name == name {
			return s, true
		}
	}
	return Setting{}, false
}

// Value returns the current value of the setting in cfg.
func (s Setting) Value(cfg *Config) string {
	return s.get(cfg)
}

// SetSetting validates value and persists it under name in the settings
// file at path, keeping every other key in the file. It returns the
// canonical value that was written.
func SetSetting(path, name, value string) (string, error) {
	s, ok := LookupSetting(name)
	if !ok {
		return "", &SettingError{Name: name}
	}
	normalized, err := s.normalize(value)
	if err != nil {
		return "", err
	}

	doc := make(map[string]any)
	_, err = toml.DecodeFile(path, &doc)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// A new file starts from the documented defaults.
		if _, err := toml.Decode(ExampleConfig(), &doc); err != nil {
			return "", fmt.Errorf("decoding example settings: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("reading settings file %s: %w", path, err)
	}
	doc[s.Name] = s.tomlValue(normalized)

	if err := saveSettings(path, doc); err != nil {
		return "", err
	}
	return normalized, nil
}

// saveSettings encodes doc as TOML and replaces the file at path.
func saveSettings(path string, doc map[string]any) error {
	var buf bytes.Buffer
	buf.WriteString("# todo settings, see `todo set help`\n")
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}

// WriteSettingsHelp prints the settings table used by `todo set help`.
func WriteSettingsHelp(w io.Writer) {
	fmt.Fprintln(w, "Change settings with \"todo set <setting> <value>\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings:")
	for _, s := range settings {
		values := "<path>"
		if len(s.Choices) > 0 {
			values = "<" + strings.Join(s.Choices, " | ") + ">"
		}
		fmt.Fprintf(w, "  %-15s %-24s %s (default: %s)\n", s.Name, values, s.Description, s.Default)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func contains(list []string, v string) bool {
	return slices.Contains(list, v)
}

func joinChoices(choices []string) string {
	if len(choices) == 1 {
		return choices[0]
	}
	return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
}
