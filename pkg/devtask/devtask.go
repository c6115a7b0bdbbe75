// Package devtask provides public constants for external tools integrating
// with the devtask harness.
package devtask

// Exit codes returned by the devtask CLI when the harness itself fails.
// When a task's child process exits non-zero, its status is propagated
// unchanged instead of these values.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unknown task, internal error).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid tasks.json, validation failure).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (toolchain executable missing, spawn failure).
	ExitEnvError = 3
)
