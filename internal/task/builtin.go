package task

// CrateEntryPoint is the fixed entry-point source file used by the check task.
const CrateEntryPoint = "src/main.rs"

// LogNamespace is the crate's logging namespace targeted by the debug task's
// log filter.
const LogNamespace = "rauta"

// builtins returns the built-in task table. A fresh copy is returned on every
// call so merged registries never share state.
//
// The debug task sets both RUST_BACKTRACE and the RUST_LOG filter; the
// backtrace-enabled definition is the canonical one.
func builtins() []Task {
	return []Task{
		{
			Name:        "release",
			Title:       "Release",
			Description: "Build in release mode",
			Exec:        "cargo",
			Args:        []string{"build", "--release"},
		},
		{
			Name:        "run",
			Title:       "Run",
			Description: "Build and run (release mode)",
			Exec:        "cargo",
			Args:        []string{"run", "--release"},
		},
		{
			Name:        "debug",
			Title:       "Debug",
			Description: "Build and run with backtraces and debug logging",
			Exec:        "cargo",
			Args:        []string{"run"},
			Env: map[string]string{
				"RUST_BACKTRACE": "1",
				"RUST_LOG":       LogNamespace + "=debug",
			},
		},
		{
			Name:        "check",
			Title:       "Check",
			Description: "Type-check the crate entry point without building",
			Exec:        "rustc",
			Args:        []string{"--emit=metadata", CrateEntryPoint},
		},
	}
}

// BuiltinNames returns the built-in task names in listing order.
func BuiltinNames() []string {
	tasks := builtins()
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return names
}
