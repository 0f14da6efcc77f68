// Package ui renders the task list and provides the optional terminal
// interfaces: the interactive browser and the edit prompt.
package ui

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/todo"
)

// EmptyMessage is printed instead of the list when there are no tasks.
const EmptyMessage = "Nothing to do!\n\nRun `todo help` for help."

const (
	doneMark = "☑"
	openMark = "☐"
)

// Renderer draws task lines for one output. Done tasks are green when the
// output supports color.
type Renderer struct {
	lg    *lipgloss.Renderer
	done  lipgloss.Style
	open  lipgloss.Style
	faint lipgloss.Style
}

// NewRenderer creates a renderer for w. colorMode is one of the config color
// modes; "auto" colors only when w is a terminal.
func NewRenderer(w io.Writer, colorMode string) *Renderer {
	lg := lipgloss.NewRenderer(w)
	switch colorMode {
	case config.ColorAlways:
		lg.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		lg.SetColorProfile(termenv.Ascii)
	}
	base := lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Renderer{
		lg:    lg,
		done:  base.Foreground(lipgloss.Color("2")),
		open:  base,
		faint: base.Faint(true),
	}
}

// Colored reports whether the renderer emits ANSI colors.
func (r *Renderer) Colored() bool {
	return r.lg.ColorProfile() != termenv.Ascii
}

// Line renders one task as "☑ 3: text" or "☐ 3: text".
func (r *Renderer) Line(pos int, t todo.Task) string {
	mark, style := openMark, r.open
	if t.Done {
		mark, style = doneMark, r.done
	}
	line := fmt.Sprintf("%s %d: %s", mark, pos, DisplayText(t.Text))
	if !r.Colored() {
		return line
	}
	return style.Render(line)
}

// Faint renders s dimmed.
func (r *Renderer) Faint(s string) string {
	if !r.Colored() {
		return s
	}
	return r.faint.Render(s)
}

// WriteList writes one line per task, or EmptyMessage when tasks yields
// nothing.
func (r *Renderer) WriteList(w io.Writer, tasks iter.Seq2[int, todo.Task]) error {
	empty := true
	for pos, t := range tasks {
		empty = false
		if _, err := fmt.Fprintln(w, r.Line(pos, t)); err != nil {
			return err
		}
	}
	if empty {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}
	return nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// DisplayText flattens line breaks so a task always renders on one line.
// The stored text is not changed.
func DisplayText(s string) string {
	return lineBreaks.Replace(s)
}
