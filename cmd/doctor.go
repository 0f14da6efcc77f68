package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/todo"
)

// doctorCommand checks the settings and the data file.
func (s *session) doctorCommand(args []string) error {
	flags := flag.NewFlagSet("todo doctor", flag.ContinueOnError)
	flags.SetOutput(s.Stderr)
	verbose := flags.Bool("v", false, "Verbose output")
	schema := flags.Bool("schema", false, "Print the JSON schema the data file must match")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := noArgs("doctor", flags.Args()); err != nil {
		return err
	}
	if *schema {
		fmt.Fprint(s.Stdout, todo.SchemaJSON())
		return nil
	}

	w := s.Stdout
	fmt.Fprintln(w, "Todo Doctor")
	fmt.Fprintln(w, "===========")
	fmt.Fprintln(w)

	problems := 0

	// Settings
	fmt.Fprintf(w, "Settings file: %s\n", s.cfg.SettingsFile)
	if _, err := os.Stat(s.cfg.SettingsFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(w, "  ✅ Not created yet (defaults in use)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			problems++
		}
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	for _, warning := range s.cfg.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}
	if *verbose {
		for _, setting := range config.Settings() {
			fmt.Fprintf(w, "  %-15s %-10s (%s)\n", setting.Name, setting.Value(s.cfg), s.cfg.Source(setting.Name))
		}
	}
	fmt.Fprintln(w)

	// Data file
	fmt.Fprintf(w, "Data file: %s\n", s.cfg.DataFile)
	data, err := os.ReadFile(s.cfg.DataFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(w, "  ✅ Not created yet (empty list)")
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		problems++
	case len(bytes.TrimSpace(data)) == 0:
		fmt.Fprintln(w, "  ✅ Empty file (empty list)")
	default:
		problems += s.checkData(data, *verbose)
	}
	fmt.Fprintln(w)

	if problems > 0 {
		fmt.Fprintf(w, "❌ %d problem(s) found\n", problems)
		return fmt.Errorf("doctor: %d problem(s) found", problems)
	}
	fmt.Fprintln(w, "✅ All checks passed")
	return nil
}

// checkData validates raw data file contents and reports task counts.
func (s *session) checkData(data []byte, verbose bool) int {
	w := s.Stdout
	result := todo.ValidateBytes(data)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}
	if !result.Valid {
		fmt.Fprintln(w, "  ❌ Invalid:")
		for _, err := range result.Errors {
			fmt.Fprintf(w, "     - %v\n", err)
		}
		return len(result.Errors)
	}
	if verbose && result.UsedSchema {
		fmt.Fprintln(w, "  ✅ Matches the embedded JSON schema")
	}

	f, err := todo.Load(s.cfg.DataFile)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return 1
	}
	open, done := f.Counts()
	fmt.Fprintf(w, "  ✅ OK (%d tasks: %d open, %d done)\n", f.Len(), open, done)
	return 0
}
