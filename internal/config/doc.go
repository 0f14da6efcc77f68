// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User settings file (todo.toml in the todo config directory)
// 3. Environment variables (TODO_*, NO_COLOR)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// Config directory locations:
// - $TODO_CONFIG_DIR when set
// - Windows: %APPDATA%\todo
// - macOS: ~/Library/Application Support/todo
// - Linux/BSD: $XDG_CONFIG_HOME/todo or ~/.config/todo
//
// The data file defaults to todo.json in the same directory. A relative
// data_file in the settings file is resolved against the config directory;
// a relative path given by flag or environment is resolved against the
// working directory.
package config
