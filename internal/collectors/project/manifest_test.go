package project

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	enverrors "github.com/envdrift/envdrift/internal/errors"
)

func TestReadManifest_Absent(t *testing.T) {
	m, err := readManifest(t.TempDir())
	if err != nil {
		t.Fatalf("absent manifest must not error: %v", err)
	}
	if m.Scripts.Len() != 0 || len(m.Dependencies) != 0 || len(m.DevDependencies) != 0 {
		t.Errorf("absent manifest must yield empty sections: %+v", m)
	}
}

func TestReadManifest_Sections(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{
  "name": "demo",
  "scripts": {"build": "webpack", "test": "jest"},
  "dependencies": {"react": "^18.0.0"},
  "devDependencies": {"jest": "^29.0.0"}
}`)

	m, err := readManifest(root)
	if err != nil {
		t.Fatalf("readManifest failed: %v", err)
	}

	if !reflect.DeepEqual(m.Scripts.Keys(), []string{"build", "test"}) {
		t.Errorf("scripts lost declaration order: %v", m.Scripts.Keys())
	}
	if cmd, _ := m.Scripts.Get("build"); cmd != "webpack" {
		t.Errorf("unexpected build command: %q", cmd)
	}
	if m.Dependencies["react"] != "^18.0.0" {
		t.Errorf("unexpected dependencies: %v", m.Dependencies)
	}
	if m.DevDependencies["jest"] != "^29.0.0" {
		t.Errorf("unexpected devDependencies: %v", m.DevDependencies)
	}
}

func TestReadManifest_MissingSectionsDefaultEmpty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "bare"}`)

	m, err := readManifest(root)
	if err != nil {
		t.Fatalf("readManifest failed: %v", err)
	}
	if m.Scripts.Len() != 0 {
		t.Errorf("expected no scripts, got %v", m.Scripts.Keys())
	}
	if m.Dependencies == nil || m.DevDependencies == nil {
		t.Error("missing sections must default to empty maps, not nil")
	}
}

func TestReadManifest_MalformedIsFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"scripts": {"build": "webpack"`)

	_, err := readManifest(root)
	if err == nil {
		t.Fatal("malformed manifest must fail collection")
	}

	var parseErr *enverrors.ManifestParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ManifestParseError, got %T: %v", err, err)
	}
}
