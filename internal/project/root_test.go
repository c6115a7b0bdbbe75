package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestFindRootFrom_ConfigMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigDirName, ConfigFileName), `{"project":{"name":"rauta"}}`)
	nested := filepath.Join(root, "src", "message")
	mkdirAll(t, nested)

	got, err := FindRootFrom(nested)
	if err != nil {
		t.Fatalf("FindRootFrom() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRootFrom() = %q, want %q", got, root)
	}
}

func TestFindRootFrom_CrateMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, CrateMarkerName), "[package]\nname = \"rauta\"\n")
	nested := filepath.Join(root, "src")
	mkdirAll(t, nested)

	got, err := FindRootFrom(nested)
	if err != nil {
		t.Fatalf("FindRootFrom() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRootFrom() = %q, want %q", got, root)
	}
}

func TestFindRootFrom_ConfigWinsAtSameLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigDirName, ConfigFileName), `{}`)
	writeFile(t, filepath.Join(root, CrateMarkerName), "")

	got, err := FindRootFrom(root)
	if err != nil {
		t.Fatalf("FindRootFrom() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRootFrom() = %q, want %q", got, root)
	}
}

func TestFindRootFrom_NearestMarkerWins(t *testing.T) {
	// A crate nested inside a configured workspace resolves to the crate.
	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ConfigDirName, ConfigFileName), `{}`)
	inner := filepath.Join(outer, "vendor", "crate")
	writeFile(t, filepath.Join(inner, CrateMarkerName), "")

	got, err := FindRootFrom(inner)
	if err != nil {
		t.Fatalf("FindRootFrom() error = %v", err)
	}
	if got != inner {
		t.Errorf("FindRootFrom() = %q, want nearest root %q", got, inner)
	}
}

func TestFindRootFrom_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := FindRootFrom(dir)
	if !errors.Is(err, ErrNoProjectRoot) {
		t.Errorf("FindRootFrom() error = %v, want ErrNoProjectRoot", err)
	}
}
