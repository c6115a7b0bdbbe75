// Package task defines the task model and the registry of named tasks.
//
// A task binds a symbolic name to exactly one subprocess invocation: an
// executable, an ordered argument list, and environment overrides that apply
// to the child process only.
package task

import (
	"sort"
	"strings"
)

// Task is one named invocation. Values handed out by the registry own their
// slices and maps; mutating them does not affect the registry.
type Task struct {
	Name        string
	Title       string
	Description string
	Exec        string
	Args        []string
	Env         map[string]string
}

// Invocation returns a human-readable rendering of the task's command line,
// including env overrides, e.g. "RUST_BACKTRACE=1 RUST_LOG=rauta=debug cargo run".
func (t Task) Invocation() string {
	parts := make([]string, 0, len(t.Env)+1+len(t.Args))
	for _, name := range sortedEnvNames(t.Env) {
		parts = append(parts, name+"="+t.Env[name])
	}
	parts = append(parts, t.Exec)
	parts = append(parts, t.Args...)
	return strings.Join(parts, " ")
}

// clone returns a deep copy of the task.
func (t Task) clone() Task {
	c := t
	if t.Args != nil {
		c.Args = make([]string, len(t.Args))
		copy(c.Args, t.Args)
	}
	c.Env = copyMapNilIfEmpty(t.Env)
	return c
}

func sortedEnvNames(env map[string]string) []string {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// copyMapNilIfEmpty copies the map, returning nil if the map is nil or empty.
// Normalizing empty to nil simplifies downstream nil checks; configuration does
// not distinguish "not configured" from "configured empty".
func copyMapNilIfEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	result := make(map[string]string, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
