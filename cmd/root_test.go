package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/todo-go/internal/exitcode"
	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/ui"
)

type testEnv struct {
	t     *testing.T
	dir   string
	stdin string
}

type result struct {
	stdout string
	stderr string
	err    error
}

// newTestEnv isolates config and data in a temp dir.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_DIR", dir)
	for _, k := range []string{
		"TODO_DATA_FILE", "TODO_SILENT", "TODO_COLOR", "NO_COLOR",
		"TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_TIMESTAMPS",
	} {
		t.Setenv(k, "")
	}
	return &testEnv{t: t, dir: dir}
}

func (e *testEnv) dataPath() string {
	return filepath.Join(e.dir, "todo.json")
}

func (e *testEnv) runCtx(ctx context.Context, args ...string) result {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	app := &App{Stdin: strings.NewReader(e.stdin), Stdout: &stdout, Stderr: &stderr}
	err := app.Run(ctx, args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func (e *testEnv) run(args ...string) result {
	e.t.Helper()
	return e.runCtx(context.Background(), args...)
}

// mustRun fails the test if the command fails.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	r := e.run(args...)
	if r.err != nil {
		e.t.Fatalf("todo %s: %v\nstderr: %s", strings.Join(args, " "), r.err, r.stderr)
	}
	return r.stdout
}

func (e *testEnv) readData() []byte {
	e.t.Helper()
	data, err := os.ReadFile(e.dataPath())
	if err != nil {
		e.t.Fatalf("reading data file: %v", err)
	}
	return data
}

func TestRun(t *testing.T) {
	t.Run("shows help with -h flag", func(t *testing.T) {
		e := newTestEnv(t)
		out := e.mustRun("-h")
		if !strings.Contains(out, "Commands:") {
			t.Errorf("help output missing commands:\n%s", out)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		e := newTestEnv(t)
		out := e.mustRun("help")
		if !strings.Contains(out, "remove <pos>... | all | checked") {
			t.Errorf("help output missing remove usage:\n%s", out)
		}
	})

	t.Run("shows version", func(t *testing.T) {
		e := newTestEnv(t)
		for _, args := range [][]string{{"-v"}, {"--version"}, {"version"}} {
			if out := e.mustRun(args...); out != "todo version dev\n" {
				t.Errorf("%v: got %q", args, out)
			}
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		e := newTestEnv(t)
		r := e.run("frobnicate")
		if !errors.Is(r.err, ErrUnknownCommand) {
			t.Fatalf("got %v, want ErrUnknownCommand", r.err)
		}
		if !strings.Contains(r.stderr, "Unknown command: frobnicate") {
			t.Errorf("stderr: %q", r.stderr)
		}
		if code := exitcode.For(r.err); code != exitcode.UserError {
			t.Errorf("exit code: got %d, want %d", code, exitcode.UserError)
		}
	})

	t.Run("unknown flag returns error", func(t *testing.T) {
		e := newTestEnv(t)
		r := e.run("-bogus")
		if r.err == nil {
			t.Fatal("expected error")
		}
		if code := exitcode.For(r.err); code != exitcode.UserError {
			t.Errorf("exit code: got %d, want %d", code, exitcode.UserError)
		}
	})
}

func TestListIsDefaultCommand(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun()
	if out != ui.EmptyMessage+"\n" {
		t.Errorf("got %q, want empty message", out)
	}
	if _, err := os.Stat(e.dataPath()); !errors.Is(err, os.ErrNotExist) {
		t.Error("list must not create the data file")
	}
}

func TestAddPrintsList(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("add", "buy milk", "call mum")
	want := "☐ 1: buy milk\n☐ 2: call mum\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	if out := e.mustRun("ls"); out != want {
		t.Errorf("ls: got %q, want %q", out, want)
	}
}

func TestAddDashText(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("add", "-x", "--not-a-flag")
	if out != "☐ 1: -x\n☐ 2: --not-a-flag\n" {
		t.Errorf("got %q", out)
	}
}

func TestCheckSortRemoveFlow(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a", "b", "c", "d")
	e.mustRun("-silent", "check", "1", "4")

	if out := e.mustRun("sort"); out != "☐ 1: b\n☐ 2: c\n☑ 3: a\n☑ 4: d\n" {
		t.Errorf("sort: got %q", out)
	}
	if out := e.mustRun("uncheck", "3"); out != "☐ 1: b\n☐ 2: c\n☐ 3: a\n☑ 4: d\n" {
		t.Errorf("uncheck: got %q", out)
	}
	if out := e.mustRun("remove", "completed"); out != "☐ 1: b\n☐ 2: c\n☐ 3: a\n" {
		t.Errorf("remove completed: got %q", out)
	}
	if out := e.mustRun("rm", "1", "3"); out != "☐ 1: c\n" {
		t.Errorf("rm: got %q", out)
	}
	if out := e.mustRun("check", "all"); out != "☑ 1: c\n" {
		t.Errorf("check all: got %q", out)
	}
	if out := e.mustRun("clear"); out != ui.EmptyMessage+"\n" {
		t.Errorf("clear: got %q", out)
	}
}

func TestFailedCommandsLeaveFileUnchanged(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a", "b")
	before := e.readData()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"check out of range", []string{"check", "5"}, exitcode.UserError},
		{"remove partly out of range", []string{"remove", "1", "9"}, exitcode.UserError},
		{"uncheck zero", []string{"uncheck", "0"}, exitcode.UserError},
		{"remove not a number", []string{"remove", "two"}, exitcode.UserError},
		{"check checked keyword", []string{"check", "checked"}, exitcode.UserError},
		{"remove nothing", []string{"remove"}, exitcode.UserError},
		{"add nothing", []string{"add"}, exitcode.UserError},
		{"edit out of range", []string{"edit", "3", "x"}, exitcode.UserError},
		{"check overflowing position", []string{"check", "99999999999999999999"}, exitcode.UserError},
		{"edit overflowing position", []string{"edit", "99999999999999999999", "x"}, exitcode.UserError},
		{"edit blank", []string{"edit", "1", " "}, exitcode.UserError},
		{"sort with args", []string{"sort", "1"}, exitcode.UserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.run(tt.args...)
			if r.err == nil {
				t.Fatal("expected error")
			}
			if code := exitcode.For(r.err); code != tt.want {
				t.Errorf("exit code: got %d, want %d (%v)", code, tt.want, r.err)
			}
			if r.stdout != "" {
				t.Errorf("failed command printed output: %q", r.stdout)
			}
			if after := e.readData(); !bytes.Equal(after, before) {
				t.Errorf("data file changed:\n%s", after)
			}
		})
	}
}

func TestOutOfRangeMessage(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a", "b")
	r := e.run("check", "5")
	var oor *todo.OutOfRangeError
	if !errors.As(r.err, &oor) {
		t.Fatalf("got %v, want OutOfRangeError", r.err)
	}
	if !strings.Contains(r.err.Error(), "check: position 5 is out of range (1-2)") {
		t.Errorf("message: %q", r.err.Error())
	}
}

func TestOverflowingPositionIsOutOfRange(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a")
	r := e.run("check", "99999999999999999999")
	var oor *todo.OutOfRangeError
	if !errors.As(r.err, &oor) {
		t.Fatalf("got %v, want OutOfRangeError", r.err)
	}
}

func TestSubcommandHelpSucceeds(t *testing.T) {
	for _, args := range [][]string{
		{"doctor", "-h"},
		{"doctor", "-help"},
		{"export", "-h"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			e := newTestEnv(t)
			r := e.run(args...)
			if r.err != nil {
				t.Fatalf("got %v, want nil", r.err)
			}
			if code := exitcode.For(r.err); code != exitcode.Success {
				t.Errorf("exit code: got %d, want %d", code, exitcode.Success)
			}
			if !strings.Contains(r.stderr, "Usage of todo "+args[0]) {
				t.Errorf("usage not printed:\n%s", r.stderr)
			}
		})
	}
}

func TestSpecialCharactersRoundTrip(t *testing.T) {
	e := newTestEnv(t)
	texts := []string{`say "hi"`, "tab\there", "naïve ☕ 日本", `back\slash`}
	e.mustRun(append([]string{"-silent", "add"}, texts...)...)

	f, err := todo.Load(e.dataPath())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i, want := range texts {
		if f.Tasks[i].Text != want {
			t.Errorf("task %d: got %q, want %q", i+1, f.Tasks[i].Text, want)
		}
	}
}

func TestSilentSetting(t *testing.T) {
	e := newTestEnv(t)
	if out := e.mustRun("-silent", "add", "a"); out != "" {
		t.Errorf("-silent add printed %q", out)
	}

	out := e.mustRun("set", "silent", "on")
	if out != "Successfully changed setting \"silent\" to \"on\".\n" {
		t.Errorf("set: got %q", out)
	}
	if out := e.mustRun("add", "b"); out != "" {
		t.Errorf("add with silent on printed %q", out)
	}
	if out := e.mustRun("list"); out != "☐ 1: a\n☐ 2: b\n" {
		t.Errorf("list must still print when silent: got %q", out)
	}

	e.mustRun("set", "silent", "off")
	if out := e.mustRun("add", "c"); !strings.Contains(out, "☐ 3: c") {
		t.Errorf("add with silent off: got %q", out)
	}
}

func TestSetHelpAndErrors(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("set", "help")
	if !strings.Contains(out, "silent") || !strings.Contains(out, "<on | off>") {
		t.Errorf("set help:\n%s", out)
	}

	for _, args := range [][]string{
		{"set"},
		{"set", "silent"},
		{"set", "silent", "maybe"},
		{"set", "volume", "11"},
	} {
		r := e.run(args...)
		if r.err == nil {
			t.Errorf("%v: expected error", args)
			continue
		}
		if code := exitcode.For(r.err); code != exitcode.UserError {
			t.Errorf("%v: exit code %d, want %d (%v)", args, code, exitcode.UserError, r.err)
		}
	}
}

func TestEditWithText(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a", "b")
	e.mustRun("-silent", "check", "2")
	if out := e.mustRun("edit", "2", "bee", "sting"); out != "☐ 1: a\n☑ 2: bee sting\n" {
		t.Errorf("got %q", out)
	}
}

func TestEditPromptsWithoutText(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "buy milk")
	e.stdin = "buy oat milk\n"

	out := e.mustRun("edit", "1")
	if !strings.HasPrefix(out, "Original: buy milk\nNew: ") {
		t.Errorf("prompt: got %q", out)
	}
	if !strings.HasSuffix(out, "☐ 1: buy oat milk\n") {
		t.Errorf("list after edit: got %q", out)
	}
}

func TestEditPromptEOFCancels(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "keep")
	before := e.readData()

	r := e.run("edit", "1")
	if !errors.Is(r.err, ui.ErrPromptCancelled) {
		t.Fatalf("got %v, want ErrPromptCancelled", r.err)
	}
	if !bytes.Equal(e.readData(), before) {
		t.Error("cancelled edit changed the data file")
	}
}

func TestCorruptDataFile(t *testing.T) {
	e := newTestEnv(t)
	if err := os.WriteFile(e.dataPath(), []byte("not json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := e.run("add", "x")
	if code := exitcode.For(r.err); code != exitcode.IOError {
		t.Errorf("exit code: got %d, want %d (%v)", code, exitcode.IOError, r.err)
	}
	if data := e.readData(); string(data) != "not json\n" {
		t.Errorf("corrupt file was overwritten: %q", data)
	}
}

func TestCancelledContextDoesNotSave(t *testing.T) {
	e := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := e.runCtx(ctx, "add", "x")
	if code := exitcode.For(r.err); code != exitcode.Interrupted {
		t.Errorf("exit code: got %d, want %d (%v)", code, exitcode.Interrupted, r.err)
	}
	if _, err := os.Stat(e.dataPath()); !errors.Is(err, os.ErrNotExist) {
		t.Error("cancelled command wrote the data file")
	}
}

func TestDataFlag(t *testing.T) {
	e := newTestEnv(t)
	other := filepath.Join(t.TempDir(), "work.json")
	e.mustRun("-data", other, "-silent", "add", "ship it")

	f, err := todo.Load(other)
	if err != nil || f.Len() != 1 {
		t.Fatalf("data flag not honoured: %v, %v", f, err)
	}
	if _, err := os.Stat(e.dataPath()); !errors.Is(err, os.ErrNotExist) {
		t.Error("default data file should be untouched")
	}
}

func TestExport(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a", "b")
	e.mustRun("-silent", "check", "1")

	out := e.mustRun("export", "-format", "md")
	if out != "# Todo\n\n- [x] a\n- [ ] b\n" {
		t.Errorf("markdown: got %q", out)
	}

	pdfPath := filepath.Join(t.TempDir(), "todo.pdf")
	e.mustRun("export", "-f", "pdf", "-o", pdfPath)
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("pdf not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}

	r := e.run("export", "-format", "docx")
	if code := exitcode.For(r.err); code != exitcode.UserError {
		t.Errorf("unknown format exit code: got %d (%v)", code, r.err)
	}
}

func TestDoctor(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("-silent", "add", "a", "b")
	e.mustRun("-silent", "check", "2")

	out := e.mustRun("doctor", "-v")
	for _, want := range []string{"2 tasks: 1 open, 1 done", "All checks passed", "silent"} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}

	if err := os.WriteFile(e.dataPath(), []byte(`{"schema_version":1,"tasks":[{"text":"a","done":"no"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	r := e.run("doctor")
	if r.err == nil {
		t.Fatal("doctor should fail on an invalid data file")
	}
	if !strings.Contains(r.stdout, "tasks[0].done") {
		t.Errorf("doctor should name the bad field:\n%s", r.stdout)
	}
}

func TestDoctorPrintsSchema(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("doctor", "-schema")
	if out != todo.SchemaJSON() {
		t.Errorf("got %q, want the embedded schema", out)
	}
}

func TestExportUsageListsFormats(t *testing.T) {
	e := newTestEnv(t)
	r := e.run("export", "-h")
	if !strings.Contains(r.stderr, "json, yaml, markdown, csv, pdf") {
		t.Errorf("export usage should list formats:\n%s", r.stderr)
	}
}

func TestTUIRequiresTerminal(t *testing.T) {
	e := newTestEnv(t)
	r := e.run("tui")
	if !errors.Is(r.err, ui.ErrNotTTY) {
		t.Errorf("got %v, want ErrNotTTY", r.err)
	}
}

func TestUnknownSettingWarns(t *testing.T) {
	e := newTestEnv(t)
	if err := os.WriteFile(filepath.Join(e.dir, "todo.toml"), []byte("theme = \"dark\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := e.run("list")
	if r.err != nil {
		t.Fatalf("list failed: %v", r.err)
	}
	if !strings.Contains(r.stderr, "theme") {
		t.Errorf("expected a warning about theme on stderr, got %q", r.stderr)
	}
}

func TestDebugLogging(t *testing.T) {
	e := newTestEnv(t)
	r := e.run("-log-level", "debug", "-silent", "add", "a")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stderr, "saved") {
		t.Errorf("debug log missing save line:\n%s", r.stderr)
	}
	if r.stdout != "" {
		t.Errorf("logs leaked to stdout: %q", r.stdout)
	}
}
