package config

// ExampleConfig returns an example settings file showing all available options.
func ExampleConfig() string {
	return `# todo settings file
# Values can be overridden by TODO_* environment variables or CLI flags.

# Task list file (relative to this directory; supports ~ expansion)
data_file = "todo.json"

# Don't print the list after each change
silent = false

# Color done tasks green: auto, always or never (NO_COLOR forces never)
color = "auto"

# Diagnostics on stderr: debug, info, warn or error
log_level = "warn"

# Log line format: text, json or logfmt
log_format = "text"

# Prefix log lines with a timestamp
log_timestamps = false
`
}
