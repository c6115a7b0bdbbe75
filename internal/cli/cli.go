// Package cli provides command-line interface functionality for devtask.
package cli

import (
	"fmt"
	"strings"

	"github.com/rauta/devtask/internal/errors"
	"github.com/rauta/devtask/internal/output"
	"github.com/rauta/devtask/internal/project"
	"github.com/rauta/devtask/internal/task"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	widthTaskName      = 10 // Width for task names like "release"
	widthFlagWithValue = 14 // Width for flags like "--dry-run"
)

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		fmt.Printf("devtask %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	// Re-extract command after flag parsing
	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	// Utility commands
	case "tasks":
		return cmdTasks(cmdArgs)
	case "config":
		return cmdConfig(cmdArgs)
	case "github":
		return cmdGitHub(cmdArgs, opts)
	case "completion":
		return cmdCompletion(cmdArgs)

	default:
		// Anything else is a task name resolved against the registry.
		return cmdRunTask(cmd, cmdArgs, opts)
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
	DryRun  bool
	Force   bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Pass-through arguments after -- must be preserved verbatim
// - Custom error messages with usage hints are needed
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--dry-run":
			opts.DryRun = true
			i++
		case arg == "--force":
			opts.Force = true
			i++
		case arg == "--":
			// Everything after -- is passed through
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	// Apply verbosity settings to global output writer.
	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)

	return opts, remaining, nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("devtask - development-task harness for the rauta crate")

	w.HelpSection("Usage:")
	w.HelpUsage("devtask <task> [-- <args>]   Run a task (extra args appended verbatim)")
	w.HelpUsage("devtask <command>            Run a utility command")

	w.HelpSection("Tasks:")
	for _, t := range usageTasks() {
		w.HelpCommand(t.Name, t.Description, widthTaskName)
	}

	w.HelpSection("Utility Commands:")
	w.HelpCommand("tasks", "List registered tasks and their invocations", widthTaskName)
	w.HelpCommand("config validate", "Validate .devtask/tasks.json", 15)
	w.HelpCommand("github", "Generate GitHub Actions CI workflow", widthTaskName)
	w.HelpCommand("completion", "Generate shell completion (bash, zsh, fish)", widthTaskName)
	w.HelpCommand("version", "Show version information", widthTaskName)

	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", widthFlagWithValue)
	w.HelpFlag("-v, --verbose", "Maximum detail", widthFlagWithValue)
	w.HelpFlag("--dry-run", "Print the invocation without running it", widthFlagWithValue)
	w.HelpFlag("-h, --help", "Show this help", widthFlagWithValue)
	w.HelpFlag("--version", "Show version", widthFlagWithValue)

	w.HelpSection("Examples:")
	w.HelpExample("devtask release", "Build in release mode")
	w.HelpExample("devtask debug", "Run with backtraces and rauta=debug logging")
	w.HelpExample("devtask run -- --config irc.toml", "Run with extra arguments")
	w.Println("")
}

// usageTasks returns the task list for help output: the project's registry
// when inside a project, the built-in table otherwise.
func usageTasks() []task.Task {
	if proj, err := project.LoadProject(); err == nil {
		return proj.Registry.All()
	}
	registry, err := task.NewRegistry(nil)
	if err != nil {
		return nil
	}
	return registry.All()
}

// splitPassThrough separates a task's extra arguments from its command
// arguments. Only arguments after -- are forwarded; anything else is an
// error since tasks take no flags of their own.
func splitPassThrough(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if args[0] == "--" {
		return args[1:], nil
	}
	return nil, fmt.Errorf("unexpected argument %q (use -- to pass arguments to the task)", args[0])
}

// reportWarnings prints configuration warnings once per invocation.
func reportWarnings(warnings []string) {
	for _, w := range warnings {
		out.Warning("%s", w)
	}
}

// knownShells lists supported completion shells.
var knownShells = []string{"bash", "zsh", "fish"}

func isKnownShell(shell string) bool {
	for _, s := range knownShells {
		if s == shell {
			return true
		}
	}
	return false
}

// joinShells formats the shell list for error messages.
func joinShells() string {
	return strings.Join(knownShells, ", ")
}
