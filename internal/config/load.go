package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User settings file (todo.toml in the config directory, or -config)
// 3. Environment variables
// 4. CLI flags
//
// The global flags are registered on fs and parsed from args; the
// remaining arguments are available from fs.Args().
func Load(flags *flag.FlagSet, args []string) (*Config, error) {
	if flags == nil {
		flags = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	fv := defineFlags(flags)
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	set := explicitFlags(flags)

	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Settings file; -config moves the config directory with it
	if set["config"] && fv.settingsFile != "" {
		path, err := absFromWorkDir(fv.settingsFile)
		if err != nil {
			return nil, err
		}
		cfg.SettingsFile = path
		cfg.Dir = filepath.Dir(path)
	}
	if err := loadSettingsFile(cfg, cfg.SettingsFile); err != nil {
		return nil, fmt.Errorf("loading settings file %s: %w", cfg.SettingsFile, err)
	}

	// 3. Override from environment
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	// 4. Flags override everything
	if err := applyFlags(cfg, set, fv); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 5. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadSettingsFile decodes the TOML settings file at path into cfg. Only keys
// present in the file are applied; unknown keys are kept as warnings. A
// missing file is not an error.
func loadSettingsFile(cfg *Config, path string) error {
	var fileCfg Config
	md, err := toml.DecodeFile(path, &fileCfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, key := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: unknown setting %q", path, key.String()))
	}
	for _, s := range settings {
		if !md.IsDefined(s.Name) {
			continue
		}
		s.copy(cfg, &fileCfg)
		cfg.Sources[s.Name] = SourceUserFile
	}
	return nil
}

// finalizeConfig computes derived values and validates enumerated settings.
func finalizeConfig(cfg *Config) error {
	cfg.DataFile = resolvePath(cfg.DataFile, cfg.Dir)

	for _, s := range settings {
		if len(s.Choices) == 0 || s.Kind == kindBool {
			continue
		}
		value := s.get(cfg)
		if !contains(s.Choices, value) {
			return &SettingError{Name: s.Name, Value: value, Allowed: s.Choices}
		}
	}
	return nil
}
