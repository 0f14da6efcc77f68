package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todo-go/internal/todo"
)

// ErrNotTTY is returned when the browser is started without a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// KeyMap holds the browser key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Sort      key.Binding
	ClearDone key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space", "check/uncheck")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		ClearDone: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "remove checked")),
		Help:      key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "save and quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Add, k.Edit, k.Delete},
		{k.Sort, k.ClearDone},
		{k.Help, k.Quit},
	}
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
)

// Model is the interactive browser. It mutates the list in place; the
// caller saves it when Changed reports true.
type Model struct {
	file    *todo.File
	path    string
	render  *Renderer
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	mode    inputMode
	cursor  int
	changed bool
	err     error
}

// NewModel creates a browser over f. path is only shown in the header.
func NewModel(f *todo.File, path string, r *Renderer) *Model {
	input := textinput.New()
	input.Placeholder = "task text"
	return &Model{
		file:   f,
		path:   path,
		render: r,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
	}
}

// Changed reports whether the list was modified.
func (m *Model) Changed() bool {
	return m.changed
}

// RunTUI runs the browser on the given terminal streams until the user
// quits or ctx is cancelled.
func RunTUI(ctx context.Context, in io.Reader, out io.Writer, m *Model) error {
	if !IsInteractive(in, out) {
		return ErrNotTTY
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.file.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Delete):
		m.apply(m.file.Remove(todo.Positions(m.cursor + 1)))
	case key.Matches(msg, m.keys.Sort):
		m.file.Sort()
		m.changed = true
	case key.Matches(msg, m.keys.ClearDone):
		m.apply(m.file.Remove(todo.Checked()))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Prompt = "Add: "
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Edit):
		task, err := m.file.Get(m.cursor + 1)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.mode = modeEdit
		m.input.Prompt = "Edit: "
		m.input.SetValue(task.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endInput()
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		var err error
		if m.mode == modeAdd {
			if strings.TrimSpace(text) == "" {
				err = todo.ErrEmptyArgument
			} else if err = m.file.Add(text); err == nil {
				m.cursor = m.file.Len() - 1
			}
		} else {
			err = m.file.Edit(m.cursor+1, text)
		}
		if err != nil {
			m.err = err
			return m, nil
		}
		m.changed = true
		m.endInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) endInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
	m.err = nil
}

func (m *Model) toggle() {
	task, err := m.file.Get(m.cursor + 1)
	if err != nil {
		m.err = err
		return
	}
	sel := todo.Positions(m.cursor + 1)
	if task.Done {
		m.apply(m.file.Uncheck(sel))
	} else {
		m.apply(m.file.Check(sel))
	}
}

// apply records the outcome of a mutation and keeps the cursor in range.
func (m *Model) apply(err error) {
	if err != nil {
		m.err = err
		return
	}
	m.changed = true
	if m.cursor >= m.file.Len() {
		m.cursor = max(m.file.Len()-1, 0)
	}
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b, m.file, m.path)

	if m.file.Len() == 0 {
		b.WriteString("Nothing to do! Press a to add a task.\n")
	}
	for pos, task := range m.file.All() {
		marker := "  "
		if pos == m.cursor+1 {
			marker = "> "
		}
		b.WriteString(marker + m.render.Line(pos, task) + "\n")
	}
	b.WriteString("\n")

	if m.mode != modeBrowse {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(m.render.Faint("enter to save, esc to cancel") + "\n")
	}
	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func writeTitle(b *strings.Builder, f *todo.File, path string) {
	open, done := f.Counts()
	title := "todo"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n")
	b.WriteString(fmt.Sprintf("%d open, %d done", open, done))
	if path != "" {
		b.WriteString("  " + path)
	}
	b.WriteString("\n\n")
}
