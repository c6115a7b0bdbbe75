// Package project provides project discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirName is the name of the devtask configuration directory.
const ConfigDirName = ".devtask"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "tasks.json"

// CrateMarkerName is the crate manifest that marks a project root when no
// devtask configuration exists.
const CrateMarkerName = "Cargo.toml"

// ErrNoProjectRoot is returned when neither .devtask/tasks.json nor Cargo.toml is found.
var ErrNoProjectRoot = errors.New("not inside a project: no .devtask/tasks.json or Cargo.toml found (here or in any parent up to the root)")

// FindRoot walks up from the current working directory until it finds a
// project root marker.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds a project
// root marker: .devtask/tasks.json first, then Cargo.toml. The config marker
// wins at every level so a configured parent is preferred over a bare crate.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}
		cratePath := filepath.Join(dir, CrateMarkerName)
		if _, err := os.Stat(cratePath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
