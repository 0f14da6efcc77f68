package cmd

import (
	"context"
	"fmt"

	"github.com/nibzard/todo-go/internal/ui"
)

// tuiCommand opens the interactive browser and saves the list on exit if it
// changed.
func (s *session) tuiCommand(ctx context.Context, args []string) error {
	if err := noArgs("tui", args); err != nil {
		return err
	}
	f, err := s.load()
	if err != nil {
		return err
	}

	model := ui.NewModel(f, s.cfg.DataFile, s.render)
	runErr := ui.RunTUI(ctx, s.Stdin, s.Stdout, model)
	if err := ctx.Err(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("tui: %w", runErr)
	}
	if !model.Changed() {
		return nil
	}
	if err := f.Save(s.cfg.DataFile); err != nil {
		return err
	}
	s.log.Debug("saved", "path", s.cfg.DataFile, "tasks", f.Len())
	return nil
}
