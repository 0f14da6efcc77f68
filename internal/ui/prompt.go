package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptCancelled is returned when the user abandons a prompt.
var ErrPromptCancelled = errors.New("edit cancelled")

// PromptText asks for a new task text. On a terminal it opens a line editor
// prefilled with current; otherwise it prints the current text and reads one
// line from in.
func PromptText(ctx context.Context, in io.Reader, out io.Writer, current string) (string, error) {
	if IsInteractive(in, out) {
		return promptInteractive(ctx, in, out, current)
	}
	return promptLine(in, out, current)
}

func promptLine(in io.Reader, out io.Writer, current string) (string, error) {
	fmt.Fprintf(out, "Original: %s\n", current)
	fmt.Fprint(out, "New: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// last line without a newline
	case errors.Is(err, io.EOF):
		return "", ErrPromptCancelled
	default:
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func promptInteractive(ctx context.Context, in io.Reader, out io.Writer, current string) (string, error) {
	m := newPromptModel(current, TerminalWidth(out, 80))
	program := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	pm, ok := final.(*promptModel)
	if !ok || pm.cancelled {
		return "", ErrPromptCancelled
	}
	return pm.input.Value(), nil
}

type promptModel struct {
	input     textinput.Model
	original  string
	cancelled bool
}

func newPromptModel(current string, width int) *promptModel {
	input := textinput.New()
	input.Prompt = "New: "
	input.SetValue(current)
	input.CursorEnd()
	if width > 10 {
		input.Width = width - len(input.Prompt) - 1
	}
	input.Focus()
	return &promptModel{input: input, original: current}
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	var b strings.Builder
	b.WriteString("Original: " + DisplayText(m.original) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString("(enter to save, esc to cancel)\n")
	return b.String()
}
