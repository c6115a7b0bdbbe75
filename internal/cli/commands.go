package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rauta/devtask/internal/config"
	"github.com/rauta/devtask/internal/errors"
	"github.com/rauta/devtask/internal/project"
	"github.com/rauta/devtask/internal/runner"
	"github.com/rauta/devtask/internal/schema"
	"github.com/rauta/devtask/internal/workflow"
)

// cmdRunTask resolves name against the project registry and dispatches it to
// a child process, forwarding SIGINT/SIGTERM through context cancellation.
func cmdRunTask(name string, args []string, opts *GlobalOptions) int {
	extra, err := splitPassThrough(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	proj, err := loadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	reportWarnings(proj.Warnings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(proj.Registry, proj.Root)
	if err := r.Run(ctx, name, runner.RunOptions{
		Args:   extra,
		DryRun: opts.DryRun,
		Quiet:  opts.Quiet,
	}); err != nil {
		if stderrors.Is(err, context.Canceled) {
			out.ErrorPrefix("[%s] interrupted", name)
			return errors.ExitRuntimeError
		}
		if errors.IsChildExit(err) {
			// The child already reported its own failure on stderr.
			if !opts.Quiet {
				out.TaskFailed(name, err)
			}
		} else {
			out.ErrorPrefix("%v", err)
		}
		return errors.GetExitCode(err)
	}

	return errors.ExitSuccess
}

// cmdTasks lists the registered tasks with their invocations.
func cmdTasks(args []string) int {
	if len(args) > 0 {
		out.ErrorPrefix("tasks takes no arguments")
		return errors.ExitConfigError
	}

	proj, err := loadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	reportWarnings(proj.Warnings)

	width := 0
	for _, t := range proj.Registry.All() {
		if len(t.Name) > width {
			width = len(t.Name)
		}
	}

	out.Println("Tasks for %s:", proj.Name())
	for _, t := range proj.Registry.All() {
		out.Println("  %-*s  %s", width, t.Name, t.Invocation())
		if t.Description != "" {
			out.Verbose("  %-*s  %s", width, "", t.Description)
		}
	}
	return errors.ExitSuccess
}

// cmdConfig handles config subcommands.
func cmdConfig(args []string) int {
	if len(args) == 0 {
		out.ErrorPrefix("config requires a subcommand (validate)")
		return errors.ExitConfigError
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate(args[1:])
	default:
		out.ErrorPrefix("unknown config subcommand %q", args[0])
		return errors.ExitConfigError
	}
}

// cmdConfigValidate checks .devtask/tasks.json against the schema and the
// semantic validation rules.
func cmdConfigValidate(args []string) int {
	if len(args) > 0 {
		out.ErrorPrefix("config validate takes no arguments")
		return errors.ExitConfigError
	}

	root, err := project.FindRoot()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitEnvironmentError
	}

	configPath := filepath.Join(root, project.ConfigDirName, project.ConfigFileName)
	relPath := filepath.Join(project.ConfigDirName, project.ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			out.Info("no %s found; built-in tasks apply", relPath)
			return errors.ExitSuccess
		}
		out.ErrorPrefix("cannot read %s: %v", relPath, err)
		return errors.ExitEnvironmentError
	}

	if err := schema.ValidateTasks(data); err != nil {
		out.ErrorPrefix("%s: %v", relPath, err)
		return errors.ExitConfigError
	}

	_, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		out.ErrorPrefix("%s: %v", relPath, err)
		return errors.ExitConfigError
	}
	reportWarnings(warnings)

	out.ValidationSuccess("%s is valid", relPath)
	return errors.ExitSuccess
}

// cmdGitHub generates the GitHub Actions CI workflow for the project.
func cmdGitHub(args []string, opts *GlobalOptions) int {
	if len(args) > 0 {
		out.ErrorPrefix("github takes no arguments")
		return errors.ExitConfigError
	}

	proj, err := loadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	reportWarnings(proj.Warnings)

	created, err := workflow.Write(proj.Root, proj.Registry, opts.Force)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}

	if !created {
		out.Info("%s already exists (use --force to overwrite)", workflow.OutputPath())
		return errors.ExitSuccess
	}
	out.Success("generated %s", workflow.OutputPath())
	return errors.ExitSuccess
}

// loadProject loads the enclosing project, mapping a missing project root to
// an environment error so the exit code reflects the broken surroundings.
func loadProject() (*project.Project, error) {
	proj, err := project.LoadProject()
	if err != nil {
		if stderrors.Is(err, project.ErrNoProjectRoot) {
			return nil, errors.Environmentf("%v", err)
		}
		return nil, err
	}
	return proj, nil
}
