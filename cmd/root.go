// Package cmd implements the CLI command structure for mytasks.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/mytasks-go/internal/config"
	"github.com/nibzard/mytasks-go/internal/logging"
	"github.com/nibzard/mytasks-go/internal/script"
	"github.com/nibzard/mytasks-go/internal/todo"
	"github.com/nibzard/mytasks-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the mytasks CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mytasks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	// No args or a leading flag means "tui".
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cws.Config, remainingArgs, stdout)
	case "replay":
		return replayCommand(cws.Config, remainingArgs, stdout, stderr)
	case "config":
		return configCommand(cws, remainingArgs, stdout)
	case "tail":
		return tailCommand(ctx, cws.Config, remainingArgs, stdout)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand runs the interactive task screen on stdout.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mytasks tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Fail before a session log exists so tail never picks up an empty run.
	if !ui.IsTTY(stdout) {
		return ui.ErrNoTTY
	}

	ids, err := todo.NewIDGenerator(cfg.IDStrategy)
	if err != nil {
		return err
	}

	session, err := logging.OpenSessionLog(cfg.LogDir, cfg.WorkDir)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer session.Close()

	logger := newLogger(cfg, session.Writer())
	logger.Info("session started", "version", Version, "ids", cfg.IDStrategy)

	store := newStore(cfg, ids, logger)
	model := ui.NewModel(store,
		ui.WithTitle(cfg.Title),
		ui.WithPlaceholder(cfg.Placeholder),
		ui.WithModelLogger(logger),
	)

	err = ui.Run(ctx, model, ui.WithAltScreen(cfg.AltScreen), ui.WithOutput(stdout))
	counts := todo.CountTasks(store.State())
	logger.Info("session ended", "tasks", counts.Total, "completed", counts.Completed)
	return err
}

// replayCommand replays an intent script and prints the resulting screen.
func replayCommand(cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mytasks replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "Print only the screen, not the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("replay needs exactly one script file")
	}

	s, err := script.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	logger := newLogger(cfg, stderr)
	store := newStore(cfg, todo.NewSequenceGenerator("T"), logger)
	summary, err := script.Replay(store, s)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	opts := ui.DefaultRenderOptions()
	opts.Title = cfg.Title
	opts.Placeholder = cfg.Placeholder
	if s.Title != "" {
		opts.Title = s.Title
	}
	fmt.Fprint(stdout, ui.Render(store.State(), opts))
	if !*quiet {
		fmt.Fprintf(stdout, "\n%d intents applied, %d ignored\n", summary.Applied, summary.Ignored)
	}
	return nil
}

// configCommand prints the effective configuration and where each value came from.
func configCommand(cws *config.ConfigWithSources, args []string, stdout io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	if len(cws.Files) == 0 {
		fmt.Fprintln(stdout, "Config files: none")
	} else {
		fmt.Fprintf(stdout, "Config files: %s\n", strings.Join(cws.Files, ", "))
	}
	fmt.Fprintln(stdout)

	width := 0
	for _, field := range config.Fields() {
		width = max(width, len(field))
	}
	for _, field := range config.Fields() {
		fmt.Fprintf(stdout, "  %-*s  %-20q  (%s)\n", width, field, cws.Config.Value(field), cws.Sources[field])
	}
	return nil
}

// tailCommand prints the latest session log.
func tailCommand(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mytasks tail", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logDir, err := logging.FindLogDir(cfg.LogDir, cfg.WorkDir)
	if err != nil {
		return fmt.Errorf("finding log directory: %w", err)
	}
	logPath, err := logging.FindLatestLog(logDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(stdout, "No log files found.")
		return nil
	}

	fmt.Fprintf(stdout, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(stdout, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(stdout)

	return logging.TailLog(ctx, stdout, logPath, *n, *follow)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "mytasks version %s\n", Version)
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.New(w, logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
}

func newStore(cfg *config.Config, ids todo.IDGenerator, logger *log.Logger) *todo.Store {
	return todo.NewStore(
		todo.WithIDGenerator(ids),
		todo.WithLogger(logger),
		todo.WithState(todo.State{FilterEnabled: cfg.StartFiltered}),
	)
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "mytasks - a small todo list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mytasks [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui              Open the task screen (default command)")
	fmt.Fprintln(w, "  replay <file>    Replay an intent script and print the screen")
	fmt.Fprintln(w, "  config           Show the effective configuration")
	fmt.Fprintln(w, "  tail             Print the latest session log")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replay Options:")
	fmt.Fprintln(w, "  -q    Print only the screen, not the summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options:")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  enter        Add the typed task")
	fmt.Fprintln(w, "  tab / esc    Move between the input and the list")
	fmt.Fprintln(w, "  space        Toggle the selected task")
	fmt.Fprintln(w, "  d            Delete the selected task")
	fmt.Fprintln(w, "  f / ctrl+f   Hide or show completed tasks")
	fmt.Fprintln(w, "  q / ctrl+c   Quit")
}
