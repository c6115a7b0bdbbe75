package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"project": {"name": "rauta"},
		"tasks": {
			"debug": {"env": {"RUST_LOG": "rauta=trace"}}
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Project.Name != "rauta" {
		t.Errorf("Project.Name = %q, want %q", cfg.Project.Name, "rauta")
	}
	if got := cfg.Tasks["debug"].Env["RUST_LOG"]; got != "rauta=trace" {
		t.Errorf("debug env RUST_LOG = %q, want %q", got, "rauta=trace")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("error = %v, want parse failure", err)
	}
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `{
		"project": {"name": "rauta"},
		"tasks": {
			"fmt": {"title": "Format", "exec": "cargo", "args": ["fmt"]}
		}
	}`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if got := cfg.Tasks["fmt"].Exec; got != "cargo" {
		t.Errorf("fmt exec = %q, want %q", got, "cargo")
	}
}

func TestLoadAndValidate_DefaultProjectName(t *testing.T) {
	path := writeConfig(t, `{"project": {}}`)

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Project.Name != DefaultProjectName {
		t.Errorf("Project.Name = %q, want default %q", cfg.Project.Name, DefaultProjectName)
	}
}

func TestLoadAndValidate_InvalidTask(t *testing.T) {
	path := writeConfig(t, `{
		"project": {"name": "rauta"},
		"tasks": {
			"fmt": {"title": "Format"}
		}
	}`)

	_, _, err := LoadAndValidate(path)
	if err == nil {
		t.Fatal("LoadAndValidate() expected error for new task without exec")
	}
	if !strings.Contains(err.Error(), "tasks.fmt.exec") {
		t.Errorf("error = %v, want tasks.fmt.exec failure", err)
	}
}

func TestLoadAndValidate_UnknownFieldWarnings(t *testing.T) {
	path := writeConfig(t, `{
		"project": {"name": "rauta"},
		"unknown_thing": true,
		"tasks": {
			"debug": {"timeout": 5}
		}
	}`)

	_, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", warnings)
	}
}
