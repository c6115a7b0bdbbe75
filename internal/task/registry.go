package task

import (
	"sort"

	"github.com/rauta/devtask/internal/config"
	"github.com/rauta/devtask/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry is an immutable collection of tasks, fixed at construction time.
type Registry struct {
	tasks map[string]Task
	order []string // built-in order first, then added tasks sorted by name
}

// NewRegistry builds a registry from the built-in task table merged with
// per-project overrides. Overrides for a built-in name replace only the fields
// they set; new names define new tasks (config validation guarantees Exec is
// set for those).
func NewRegistry(overrides map[string]config.TaskConfig) (*Registry, error) {
	r := &Registry{
		tasks: make(map[string]Task),
	}

	for _, t := range builtins() {
		r.tasks[t.Name] = t
		r.order = append(r.order, t.Name)
	}

	var added []string
	for name, tc := range overrides {
		base, exists := r.tasks[name]
		if !exists {
			if tc.Exec == "" {
				return nil, errors.Configf("task %q has no executable", name)
			}
			base = Task{Name: name}
			added = append(added, name)
		}
		r.tasks[name] = mergeTask(base, tc)
	}

	sort.Strings(added)
	r.order = append(r.order, added...)

	return r, nil
}

// mergeTask applies the set fields of tc over base.
func mergeTask(base Task, tc config.TaskConfig) Task {
	t := base.clone()
	if tc.Title != "" {
		t.Title = tc.Title
	}
	if tc.Description != "" {
		t.Description = tc.Description
	}
	if tc.Exec != "" {
		t.Exec = tc.Exec
	}
	if tc.Args != nil {
		t.Args = make([]string, len(tc.Args))
		copy(t.Args, tc.Args)
	}
	if tc.Env != nil {
		t.Env = copyMapNilIfEmpty(tc.Env)
	}
	if t.Title == "" {
		t.Title = cases.Title(language.English).String(t.Name)
	}
	return t
}

// Get retrieves a task by name. The returned task is a copy.
func (r *Registry) Get(name string) (Task, bool) {
	t, ok := r.tasks[name]
	if !ok {
		return Task{}, false
	}
	return t.clone(), true
}

// Names returns task names: built-ins in table order, then configured
// additions sorted by name.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// All returns all tasks in Names() order.
func (r *Registry) All() []Task {
	tasks := make([]Task, 0, len(r.order))
	for _, name := range r.order {
		tasks = append(tasks, r.tasks[name].clone())
	}
	return tasks
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}
