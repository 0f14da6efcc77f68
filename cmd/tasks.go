package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/ui"
)

// load reads the data file.
func (s *session) load() (*todo.File, error) {
	f, err := todo.Load(s.cfg.DataFile)
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded", "path", s.cfg.DataFile, "tasks", f.Len())
	return f, nil
}

// mutate loads the list, applies fn, and saves the result. Nothing is
// written when fn fails or ctx is cancelled. The list is printed afterwards
// unless the silent setting is on.
func (s *session) mutate(ctx context.Context, command string, fn func(*todo.File) error) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.Save(s.cfg.DataFile); err != nil {
		return err
	}
	s.log.Debug("saved", "path", s.cfg.DataFile, "tasks", f.Len())

	if s.cfg.Silent {
		return nil
	}
	return s.render.WriteList(s.Stdout, f.All())
}

func (s *session) addCommand(ctx context.Context, args []string) error {
	return s.mutate(ctx, "add", func(f *todo.File) error {
		return f.Add(args...)
	})
}

func (s *session) removeCommand(ctx context.Context, args []string) error {
	sel, err := todo.ParseSelector(args, todo.KeywordAll, todo.KeywordChecked)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return s.mutate(ctx, "remove", func(f *todo.File) error {
		return f.Remove(sel)
	})
}

func (s *session) clearCommand(ctx context.Context, args []string) error {
	if err := noArgs("clear", args); err != nil {
		return err
	}
	return s.mutate(ctx, "clear", func(f *todo.File) error {
		f.Clear()
		return nil
	})
}

func (s *session) checkCommand(ctx context.Context, args []string, done bool) error {
	command := "check"
	if !done {
		command = "uncheck"
	}
	sel, err := todo.ParseSelector(args, todo.KeywordAll)
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return s.mutate(ctx, command, func(f *todo.File) error {
		if done {
			return f.Check(sel)
		}
		return f.Uncheck(sel)
	})
}

func (s *session) sortCommand(ctx context.Context, args []string) error {
	if err := noArgs("sort", args); err != nil {
		return err
	}
	return s.mutate(ctx, "sort", func(f *todo.File) error {
		f.Sort()
		return nil
	})
}

func (s *session) listCommand(args []string) error {
	if err := noArgs("list", args); err != nil {
		return err
	}
	f, err := s.load()
	if err != nil {
		return err
	}
	return s.render.WriteList(s.Stdout, f.All())
}

// editCommand replaces the text of one task. Without text it prompts,
// prefilled with the current text.
func (s *session) editCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("edit: %w", todo.ErrEmptyArgument)
	}
	sel, err := todo.ParseSelector(args[:1])
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	pos := sel.Positions[0]
	text := strings.Join(args[1:], " ")
	prompt := len(args) == 1

	return s.mutate(ctx, "edit", func(f *todo.File) error {
		if prompt {
			task, err := f.Get(pos)
			if err != nil {
				return err
			}
			text, err = ui.PromptText(ctx, s.Stdin, s.Stdout, task.Text)
			if err != nil {
				return err
			}
		}
		return f.Edit(pos, text)
	})
}
