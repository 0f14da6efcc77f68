package config

import (
	"flag"
	"fmt"
	"strings"
)

// flagValues holds the global flag targets until they are applied on top of
// the other layers. Only flags the user actually set are applied.
type flagValues struct {
	settingsFile  string
	dataFile      string
	silent        bool
	noColor       bool
	color         string
	logLevel      string
	logFormat     string
	logTimestamps bool
}

// defineFlags registers the global flags on fs.
func defineFlags(fs *flag.FlagSet) *flagValues {
	fv := &flagValues{}
	fs.StringVar(&fv.settingsFile, "config", "", "Path to settings file (default: <config dir>/todo.toml)")
	fs.StringVar(&fv.dataFile, "data", "", "Path to task list file (default: <config dir>/todo.json)")
	fs.BoolVar(&fv.silent, "silent", false, "Don't print the list after a change")
	fs.BoolVar(&fv.noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&fv.color, "color", "", "Color mode (auto, always, never)")
	fs.StringVar(&fv.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&fv.logFormat, "log-format", "", "Log format (text, json, logfmt)")
	fs.BoolVar(&fv.logTimestamps, "log-timestamps", false, "Show timestamps in logs")
	return fv
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overrides config with the flags that were explicitly set.
func applyFlags(cfg *Config, set map[string]bool, fv *flagValues) error {
	setFlag := func(field string) {
		cfg.Sources[field] = SourceFlag
	}

	if set["data"] {
		if strings.TrimSpace(fv.dataFile) == "" {
			return fmt.Errorf("-data: path is empty")
		}
		path, err := absFromWorkDir(fv.dataFile)
		if err != nil {
			return err
		}
		cfg.DataFile = path
		setFlag("data_file")
	}
	if set["silent"] {
		cfg.Silent = fv.silent
		setFlag("silent")
	}
	if set["color"] {
		cfg.Color = strings.ToLower(strings.TrimSpace(fv.color))
		setFlag("color")
	}
	if set["no-color"] && fv.noColor {
		cfg.Color = ColorNever
		setFlag("color")
	}
	if set["log-level"] {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(fv.logLevel))
		setFlag("log_level")
	}
	if set["log-format"] {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(fv.logFormat))
		setFlag("log_format")
	}
	if set["log-timestamps"] {
		cfg.LogTimestamps = fv.logTimestamps
		setFlag("log_timestamps")
	}
	return nil
}
