package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation patterns.
var (
	// Project name: must start with lowercase letter, may contain lowercase, digits, hyphens.
	// Hyphens must not be consecutive or trailing.
	projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

	// Task name: lowercase letters, digits, and hyphens.
	taskNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// Env variable name: uppercase letters, digits, underscores.
	envNamePattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
)

// builtinTaskNames are the task names that always have a built-in definition.
// A TaskConfig for one of these may omit exec; any other task must set it.
var builtinTaskNames = map[string]bool{
	"release": true,
	"run":     true,
	"debug":   true,
	"check":   true,
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateProjectName(cfg.Project.Name); err != nil {
		return nil, err
	}

	for name, task := range cfg.Tasks {
		if err := validateTaskName(name); err != nil {
			return nil, err
		}
		if err := validateTaskConfig(name, task); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

func validateProjectName(name string) error {
	if name == "" {
		return &ValidationError{Field: "project.name", Message: "is required"}
	}
	if len(name) > 128 {
		return &ValidationError{Field: "project.name", Message: "must be 128 characters or less"}
	}
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "project.name",
			Message: "must match pattern ^[a-z][a-z0-9]*(-[a-z0-9]+)*$ (lowercase letters, digits, non-consecutive hyphens)",
		}
	}
	return nil
}

func validateTaskName(name string) error {
	if !taskNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   fmt.Sprintf("tasks.%s", name),
			Message: "task name must match pattern ^[a-z][a-z0-9-]*$ (lowercase letters, digits, hyphens)",
		}
	}
	return nil
}

func validateTaskConfig(name string, task TaskConfig) error {
	if task.Exec == "" && !builtinTaskNames[name] {
		return &ValidationError{
			Field:   fmt.Sprintf("tasks.%s.exec", name),
			Message: "is required for tasks without a built-in definition",
		}
	}

	if strings.TrimSpace(task.Exec) != task.Exec {
		return &ValidationError{
			Field:   fmt.Sprintf("tasks.%s.exec", name),
			Message: "must not have leading or trailing whitespace",
		}
	}

	for envName := range task.Env {
		if !envNamePattern.MatchString(envName) {
			return &ValidationError{
				Field:   fmt.Sprintf("tasks.%s.env.%s", name, envName),
				Message: "environment variable name must match pattern ^[A-Z_][A-Z0-9_]*$",
			}
		}
	}

	return nil
}

// IsBuiltinTaskName reports whether name has a built-in task definition.
func IsBuiltinTaskName(name string) bool {
	return builtinTaskNames[name]
}
