// Package workflow generates a GitHub Actions CI workflow from the task set.
package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rauta/devtask/internal/task"
)

// ciTaskNames are the tasks the generated workflow runs. Only non-interactive
// tasks belong here: run/debug start the daemon and would hang a CI job.
var ciTaskNames = []string{"check", "release"}

// WorkflowConfig represents the generated GitHub Actions workflow.
type WorkflowConfig struct {
	Name string                 `yaml:"name"`
	On   WorkflowTrigger        `yaml:"on"`
	Jobs map[string]WorkflowJob `yaml:"jobs"`
}

// WorkflowTrigger defines workflow triggers.
type WorkflowTrigger struct {
	Push        TriggerBranches `yaml:"push"`
	PullRequest TriggerBranches `yaml:"pull_request"`
}

// TriggerBranches defines branch patterns for triggers.
type TriggerBranches struct {
	Branches []string `yaml:"branches"`
}

// WorkflowJob defines a job in the workflow.
type WorkflowJob struct {
	Name   string            `yaml:"name"`
	RunsOn string            `yaml:"runs-on"`
	Env    map[string]string `yaml:"env,omitempty"`
	Steps  []WorkflowStep    `yaml:"steps"`
}

// WorkflowStep defines a step in a job.
type WorkflowStep struct {
	Name string `yaml:"name,omitempty"`
	Uses string `yaml:"uses,omitempty"`
	Run  string `yaml:"run,omitempty"`
}

// Generate builds the CI workflow YAML for the given registry.
func Generate(registry *task.Registry) (string, error) {
	wf := WorkflowConfig{
		Name: "CI",
		On: WorkflowTrigger{
			Push:        TriggerBranches{Branches: []string{"main"}},
			PullRequest: TriggerBranches{Branches: []string{"main"}},
		},
		Jobs: make(map[string]WorkflowJob),
	}

	titleCase := cases.Title(language.English)
	for _, name := range ciTaskNames {
		t, ok := registry.Get(name)
		if !ok {
			continue
		}
		title := t.Title
		if title == "" {
			title = titleCase.String(name)
		}
		wf.Jobs[name] = WorkflowJob{
			Name:   title,
			RunsOn: "ubuntu-latest",
			Env:    t.Env,
			Steps: []WorkflowStep{
				{Uses: "actions/checkout@v4"},
				{Uses: "dtolnay/rust-toolchain@stable"},
				{Name: title, Run: t.Exec + joinArgs(t.Args)},
			},
		}
	}

	if len(wf.Jobs) == 0 {
		return "", fmt.Errorf("no CI-runnable tasks registered")
	}

	data, err := yaml.Marshal(&wf)
	if err != nil {
		return "", fmt.Errorf("failed to marshal workflow: %w", err)
	}
	return string(data), nil
}

func joinArgs(args []string) string {
	out := ""
	for _, a := range args {
		out += " " + a
	}
	return out
}

// Write generates and writes the workflow file under projectRoot.
// Returns true if a new file was created, false if it already exists.
// Use force=true to overwrite an existing file.
func Write(projectRoot string, registry *task.Registry, force bool) (bool, error) {
	workflowDir := filepath.Join(projectRoot, ".github", "workflows")
	if err := os.MkdirAll(workflowDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create workflows directory: %w", err)
	}

	outputPath := filepath.Join(workflowDir, "ci.yml")

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return false, nil
		}
	}

	content, err := Generate(registry)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write workflow file: %w", err)
	}

	return true, nil
}

// OutputPath returns the workflow file path relative to the project root.
func OutputPath() string {
	return filepath.Join(".github", "workflows", "ci.yml")
}
