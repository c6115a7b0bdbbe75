package config

// DefaultProjectName is used when tasks.json omits project.name.
// It matches the crate the harness was built around.
const DefaultProjectName = "rauta"

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Project.Name == "" {
		cfg.Project.Name = DefaultProjectName
	}
}
