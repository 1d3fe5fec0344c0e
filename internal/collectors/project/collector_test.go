package project

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/envdrift/envdrift/internal/collectors"
)

func TestProjectCollector_Collect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{
  "scripts": {"build": "webpack"},
  "dependencies": {"react": "^18.0.0"}
}`)
	writeFile(t, filepath.Join(root, ".env"), "API_KEY=secret\n")
	if err := os.Mkdir(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	c := NewProjectCollectorWithRuntime(&StaticResolver{Value: "v18.15.0"})
	snapshot, err := c.Collect(context.Background(), collectors.CollectorConfig{RootPath: root})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if snapshot.NodeVersion != "v18.15.0" {
		t.Errorf("unexpected node version: %q", snapshot.NodeVersion)
	}
	if cmd, _ := snapshot.Scripts.Get("build"); cmd != "webpack" {
		t.Errorf("unexpected build script: %q", cmd)
	}
	if snapshot.Dependencies["react"] != "^18.0.0" {
		t.Errorf("unexpected dependencies: %v", snapshot.Dependencies)
	}
	if !reflect.DeepEqual(snapshot.EnvKeys, []string{"API_KEY"}) {
		t.Errorf("unexpected env keys: %v", snapshot.EnvKeys)
	}
	if !reflect.DeepEqual(snapshot.Folders, []string{"src"}) {
		t.Errorf("unexpected folders: %v", snapshot.Folders)
	}
}

func TestProjectCollector_CollectEmptyProject(t *testing.T) {
	c := NewProjectCollectorWithRuntime(&StaticResolver{Value: ""})
	snapshot, err := c.Collect(context.Background(), collectors.CollectorConfig{RootPath: t.TempDir()})
	if err != nil {
		t.Fatalf("empty project must still collect: %v", err)
	}

	if snapshot.Scripts.Len() != 0 || len(snapshot.EnvKeys) != 0 || len(snapshot.Folders) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snapshot)
	}
}

func TestProjectCollector_MalformedManifestFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), "not json at all")

	c := NewProjectCollectorWithRuntime(&StaticResolver{Value: "v20.0.0"})
	if _, err := c.Collect(context.Background(), collectors.CollectorConfig{RootPath: root}); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestProjectCollector_NameAndStatus(t *testing.T) {
	c := NewProjectCollector()
	if c.Name() != "project" {
		t.Errorf("unexpected name: %s", c.Name())
	}
	if c.Status() != "ready" {
		t.Errorf("unexpected status: %s", c.Status())
	}
	if err := c.Validate(collectors.CollectorConfig{}); err != nil {
		t.Errorf("empty config must validate: %v", err)
	}
}
