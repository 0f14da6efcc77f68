package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/todo"
)

var errSetUsage = errors.New("usage: todo set <setting> <value> (see `todo set help`)")

// setCommand changes one persisted setting, or prints the settings table.
func (s *session) setCommand(args []string) error {
	if len(args) == 1 && strings.EqualFold(args[0], "help") {
		config.WriteSettingsHelp(s.Stdout)
		return nil
	}
	switch len(args) {
	case 0:
		return fmt.Errorf("set: %w; %w", todo.ErrEmptyArgument, errSetUsage)
	case 2:
	default:
		return fmt.Errorf("set: %w", errSetUsage)
	}

	value, err := config.SetSetting(s.cfg.SettingsFile, args[0], args[1])
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	s.log.Debug("setting saved", "path", s.cfg.SettingsFile, "name", args[0], "value", value)
	fmt.Fprintf(s.Stdout, "Successfully changed setting %q to %q.\n", strings.ToLower(args[0]), value)
	return nil
}
