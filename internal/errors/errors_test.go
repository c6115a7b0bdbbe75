package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDevtaskError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DevtaskError
		expected string
	}{
		{
			name:     "message only",
			err:      &DevtaskError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with task",
			err:      &DevtaskError{Task: "debug", Message: "launch failed"},
			expected: "[debug] launch failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDevtaskError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &DevtaskError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := &DevtaskError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestDevtaskError_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		expected int
	}{
		{"runtime", KindRuntime, ExitRuntimeError},
		{"config", KindConfig, ExitConfigError},
		{"validation", KindValidation, ExitConfigError},
		{"not found", KindNotFound, ExitRuntimeError},
		{"environment", KindEnvironment, ExitEnvironmentError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &DevtaskError{Kind: tt.kind}
			if got := err.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestChildExitError(t *testing.T) {
	err := &ChildExitError{Task: "run", Status: 2}

	if got := err.Error(); got != "[run] exited with status 2" {
		t.Errorf("Error() = %q", got)
	}
	if got := err.ExitCode(); got != 2 {
		t.Errorf("ExitCode() = %d, want 2", got)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"runtime", New("boom"), ExitRuntimeError},
		{"config", Config("bad"), ExitConfigError},
		{"environment", Environment("missing"), ExitEnvironmentError},
		{"unknown task", UnknownTask("bogus"), ExitRuntimeError},
		{"child status preserved", &ChildExitError{Task: "run", Status: 42}, 42},
		{"wrapped child status", fmt.Errorf("context: %w", &ChildExitError{Task: "run", Status: 7}), 7},
		{"plain error", errors.New("plain"), ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLaunch(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Launch("release", "cargo", cause)

	if err.Kind != KindEnvironment {
		t.Errorf("Kind = %v, want %v", err.Kind, KindEnvironment)
	}
	if err.Task != "release" {
		t.Errorf("Task = %q, want %q", err.Task, "release")
	}
	if !errors.Is(err, cause) {
		t.Error("Launch() should wrap the cause")
	}
	if got := GetExitCode(err); got != ExitEnvironmentError {
		t.Errorf("GetExitCode() = %d, want %d", got, ExitEnvironmentError)
	}
}

func TestUnknownTask(t *testing.T) {
	err := UnknownTask("bogus")

	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	if got := err.Error(); got != `unknown task: "bogus"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsChildExit(t *testing.T) {
	if !IsChildExit(&ChildExitError{Task: "run", Status: 1}) {
		t.Error("IsChildExit() = false for ChildExitError")
	}
	if !IsChildExit(fmt.Errorf("wrap: %w", &ChildExitError{Task: "run", Status: 1})) {
		t.Error("IsChildExit() = false for wrapped ChildExitError")
	}
	if IsChildExit(New("boom")) {
		t.Error("IsChildExit() = true for DevtaskError")
	}
	if IsChildExit(nil) {
		t.Error("IsChildExit() = true for nil")
	}
}
