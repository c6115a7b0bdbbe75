package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rauta/devtask/internal/config"
	"github.com/rauta/devtask/internal/task"
)

// Project represents a loaded devtask project.
type Project struct {
	Root     string
	Config   *config.Config
	Registry *task.Registry
	Warnings []string
}

// LoadProject finds and loads a project from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified root directory.
// A missing tasks.json is not an error: the built-in task table applies.
func LoadProjectFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, ConfigDirName, ConfigFileName)

	var cfg *config.Config
	var warnings []string

	if _, err := os.Stat(configPath); err == nil {
		loaded, w, err := config.LoadAndValidate(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		warnings = w
	}

	var overrides map[string]config.TaskConfig
	if cfg != nil {
		overrides = cfg.Tasks
	}

	registry, err := task.NewRegistry(overrides)
	if err != nil {
		return nil, err
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Registry: registry,
		Warnings: warnings,
	}, nil
}

// ConfigPath returns the full path to the project configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, ConfigDirName, ConfigFileName)
}

// Name returns the project name from configuration, or the default.
func (p *Project) Name() string {
	if p.Config != nil && p.Config.Project.Name != "" {
		return p.Config.Project.Name
	}
	return config.DefaultProjectName
}
