// Package config provides configuration loading and validation for tasks.json.
package config

// Config represents the complete .devtask/tasks.json configuration.
type Config struct {
	Project ProjectConfig         `json:"project"`
	Tasks   map[string]TaskConfig `json:"tasks,omitempty"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TaskConfig defines a task override or a new task.
//
// For a built-in task name, set fields override the built-in definition and
// unset fields keep it. For a new task name, Exec is required.
type TaskConfig struct {
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Exec        string            `json:"exec,omitempty"`
	Args        []string          `json:"args,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
}
