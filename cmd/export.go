package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todo-go/internal/export"
	"github.com/nibzard/todo-go/internal/ui"
)

// exportCommand writes the list in another format to stdout or a file.
func (s *session) exportCommand(args []string) error {
	fs := flag.NewFlagSet("todo export", flag.ContinueOnError)
	fs.SetOutput(s.Stderr)
	formatName := fs.String("format", string(export.JSON), "Export format ("+export.FormatList()+")")
	fs.StringVar(formatName, "f", string(export.JSON), "Export format (shorthand)")
	output := fs.String("o", "", "Write to file instead of stdout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := noArgs("export", fs.Args()); err != nil {
		return err
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if format.Binary() && *output == "" && ui.IsTTY(s.Stdout) {
		return fmt.Errorf("export: refusing to write %s to a terminal, use -o <file>", format)
	}

	f, err := s.load()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, f, format); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	if *output == "" {
		_, err := s.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.log.Info("exported", "format", format, "path", *output, "tasks", f.Len())
	return nil
}
