// Package errors provides structured error types and exit codes for devtask.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the harness itself. A failed child process overrides
// these: its exit status is propagated verbatim (see ChildExitError).
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (unknown task, internal failure)
	ExitConfigError      = 2 // Configuration error (invalid tasks.json, validation failure)
	ExitEnvironmentError = 3 // Environment error (executable missing, spawn failure)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// DevtaskError is the base error type for the harness.
type DevtaskError struct {
	Kind    ErrorKind
	Message string
	Task    string // Task name if applicable
	Cause   error  // Underlying error
}

func (e *DevtaskError) Error() string {
	if e.Task != "" {
		return fmt.Sprintf("[%s] %s", e.Task, e.Message)
	}
	return e.Message
}

func (e *DevtaskError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *DevtaskError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// ChildExitError reports that the child process ran and exited with a non-zero
// status. The harness surfaces the status unchanged as its own exit status; it
// is kept separate from DevtaskError because it is not a harness failure.
type ChildExitError struct {
	Task   string
	Status int
}

func (e *ChildExitError) Error() string {
	return fmt.Sprintf("[%s] exited with status %d", e.Task, e.Status)
}

// ExitCode returns the child's exit status.
func (e *ChildExitError) ExitCode() int {
	return e.Status
}

// New creates a new runtime error.
func New(message string) *DevtaskError {
	return &DevtaskError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *DevtaskError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *DevtaskError {
	return &DevtaskError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *DevtaskError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *DevtaskError {
	return &DevtaskError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *DevtaskError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *DevtaskError {
	return &DevtaskError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// Launch creates an environment error for a task whose executable could not be
// started, preserving the underlying OS error.
func Launch(task, executable string, cause error) *DevtaskError {
	return &DevtaskError{
		Kind:    KindEnvironment,
		Task:    task,
		Message: fmt.Sprintf("cannot launch %q: %v", executable, cause),
		Cause:   cause,
	}
}

// UnknownTask creates a not found error for an unrecognized task name.
func UnknownTask(name string) *DevtaskError {
	return &DevtaskError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("unknown task: %q", name),
	}
}

// GetExitCode returns the exit code for an error. A ChildExitError takes
// precedence so the child's status is never rewritten.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var child *ChildExitError
	if stderrors.As(err, &child) {
		return child.ExitCode()
	}
	var de *DevtaskError
	if stderrors.As(err, &de) {
		return de.ExitCode()
	}
	return ExitRuntimeError
}

// IsChildExit returns true if the error is or wraps a ChildExitError.
func IsChildExit(err error) bool {
	var child *ChildExitError
	return stderrors.As(err, &child)
}
