// Package runner dispatches a named task to a single child process.
//
// Exactly one child is launched per harness invocation. The child inherits
// the parent's standard streams, runs in the project root, and its exit
// status is propagated unchanged. Environment overrides are applied to the
// child only; the parent environment is never mutated.
package runner

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/rauta/devtask/internal/errors"
	"github.com/rauta/devtask/internal/output"
	"github.com/rauta/devtask/internal/task"
)

var out = output.New()

// Runner resolves task names against a registry and executes them from the
// project root.
type Runner struct {
	registry *task.Registry
	root     string
}

// RunOptions configures a single task execution.
type RunOptions struct {
	Args   []string // Extra arguments appended to the task's argument list
	DryRun bool     // Print the invocation instead of launching it
	Quiet  bool     // Suppress the task banner
}

// New creates a new Runner.
func New(registry *task.Registry, root string) *Runner {
	return &Runner{registry: registry, root: root}
}

// Run executes the named task and blocks until the child exits.
//
// Error taxonomy:
//   - unknown name: not-found error, no process spawned
//   - executable missing or spawn failure: environment error with the OS cause
//   - child exited non-zero: ChildExitError carrying the exact status
func (r *Runner) Run(ctx context.Context, name string, opts RunOptions) error {
	t, ok := r.registry.Get(name)
	if !ok {
		return errors.UnknownTask(name)
	}

	if len(opts.Args) > 0 {
		t.Args = append(t.Args, opts.Args...)
	}

	if opts.DryRun {
		out.DryRun(t.Invocation())
		return nil
	}

	// Pre-check so a missing toolchain is reported as a launch failure rather
	// than a cryptic exec error. LookPath also resolves relative paths.
	if _, err := exec.LookPath(t.Exec); err != nil {
		return errors.Launch(name, t.Exec, err)
	}

	if !opts.Quiet {
		out.TaskStart(name, t.Invocation())
	}

	cmd := exec.CommandContext(ctx, t.Exec, t.Args...)
	cmd.Dir = r.root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = childEnv(os.Environ(), t.Env)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &errors.ChildExitError{Task: name, Status: exitErr.ExitCode()}
		}
		return errors.Launch(name, t.Exec, err)
	}

	return nil
}

// childEnv builds the child environment: the inherited environment with any
// pre-existing values of the override keys removed, then the overrides
// appended. Filtering first makes the task's values the only ones the child
// sees even on platforms where duplicate entries are resolved first-wins.
func childEnv(environ []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return environ
	}

	env := make([]string, 0, len(environ)+len(overrides))
	for _, kv := range environ {
		key, _, found := strings.Cut(kv, "=")
		if found {
			if _, overridden := overrides[key]; overridden {
				continue
			}
		}
		env = append(env, kv)
	}

	for _, name := range sortedNames(overrides) {
		env = append(env, name+"="+overrides[name])
	}
	return env
}

// sortedNames returns map keys in sorted order so the appended override
// segment of the child environment is deterministic.
func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
