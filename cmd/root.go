// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ErrUnknownCommand is returned for a command name that does not exist.
var ErrUnknownCommand = errors.New("unknown command")

// App runs commands against a set of standard streams.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the todo CLI on the process streams.
func Run(ctx context.Context, args []string) error {
	app := &App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	return app.Run(ctx, args)
}

// session carries what every command needs after global flags are parsed.
type session struct {
	*App
	cfg    *config.Config
	log    *log.Logger
	render *ui.Renderer
}

// Run executes one command.
func (a *App) Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.Usage = func() {
		printUsage(fs, a.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, a.Stdout)
		return nil
	}
	if *showVersion {
		return a.versionCommand()
	}

	s := &session{
		App:    a,
		cfg:    cfg,
		log:    logging.NewFromConfig(a.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps),
		render: ui.NewRenderer(a.Stdout, cfg.Color),
	}
	for _, w := range cfg.Warnings {
		s.log.Warn(w)
	}

	// Determine the subcommand; list is the default
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}
	s.log.Debug("dispatching", "command", subcommand, "args", len(remainingArgs), "data_file", cfg.DataFile)

	// Execute the subcommand
	switch subcommand {
	case "add":
		return s.addCommand(ctx, remainingArgs)
	case "remove", "rm":
		return s.removeCommand(ctx, remainingArgs)
	case "clear":
		return s.clearCommand(ctx, remainingArgs)
	case "check":
		return s.checkCommand(ctx, remainingArgs, true)
	case "uncheck":
		return s.checkCommand(ctx, remainingArgs, false)
	case "sort":
		return s.sortCommand(ctx, remainingArgs)
	case "list", "ls":
		return s.listCommand(remainingArgs)
	case "edit":
		return s.editCommand(ctx, remainingArgs)
	case "set":
		return s.setCommand(remainingArgs)
	case "export":
		return s.exportCommand(remainingArgs)
	case "tui":
		return s.tuiCommand(ctx, remainingArgs)
	case "doctor":
		return s.doctorCommand(remainingArgs)
	case "version":
		return a.versionCommand()
	case "help":
		printUsage(fs, a.Stdout)
		return nil
	default:
		fmt.Fprintf(a.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, a.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, subcommand)
	}
}

// versionCommand prints version information.
func (a *App) versionCommand() error {
	fmt.Fprintf(a.Stdout, "todo version %s\n", Version)
	return nil
}

func noArgs(command string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: unexpected arguments: %v", command, args)
	}
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todo - a personal checklist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                                  Print the list (default command, alias: ls)")
	fmt.Fprintln(w, "  add <text>...                         Add one task per argument")
	fmt.Fprintln(w, "  remove <pos>... | all | checked       Remove tasks (alias: rm; completed = checked)")
	fmt.Fprintln(w, "  clear                                 Remove all tasks (same as remove all)")
	fmt.Fprintln(w, "  check <pos>... | all                  Mark tasks as done")
	fmt.Fprintln(w, "  uncheck <pos>... | all                Mark tasks as not done")
	fmt.Fprintln(w, "  sort                                  Move done tasks after open ones, keeping order")
	fmt.Fprintln(w, "  edit <pos> [text...]                  Replace a task's text (prompts when text is omitted)")
	fmt.Fprintln(w, "  set <setting> <value>                 Change a setting (see `todo set help`)")
	fmt.Fprintln(w, "  export [-format f] [-o file]          Export as json, yaml, markdown, csv or pdf")
	fmt.Fprintln(w, "  tui                                   Browse and edit the list interactively")
	fmt.Fprintln(w, "  doctor [-v] [-schema]                 Check settings and data file validity")
	fmt.Fprintln(w, "  version                               Show version information")
	fmt.Fprintln(w, "  help                                  Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Positions are the numbers shown by `todo list`, starting at 1.")
	fmt.Fprintln(w, "A command that fails leaves the list unchanged.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TODO_CONFIG_DIR, TODO_DATA_FILE, TODO_SILENT, TODO_COLOR, NO_COLOR,")
	fmt.Fprintln(w, "  TODO_LOG_LEVEL, TODO_LOG_FORMAT, TODO_LOG_TIMESTAMPS")
}
