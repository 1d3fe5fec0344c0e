package output_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envdrift/envdrift/internal/collectors"
	"github.com/envdrift/envdrift/internal/collectors/project"
	"github.com/envdrift/envdrift/internal/differ"
	"github.com/envdrift/envdrift/internal/output"
	"github.com/envdrift/envdrift/internal/storage"
)

// Exercises the full pipeline: collect a baseline, persist it, mutate the
// project, collect again, compare, and render.
func TestPipeline_CollectStoreCompareRender(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{
  "scripts": {"build": "webpack"},
  "dependencies": {"react": "^18.0.0"}
}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("API_KEY=abc\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0o755))

	collector := project.NewProjectCollectorWithRuntime(&project.StaticResolver{Value: "v18.15.0"})
	cfg := collectors.CollectorConfig{RootPath: root}

	baseline, err := collector.Collect(context.Background(), cfg)
	require.NoError(t, err)

	store := storage.NewProjectStore(root)
	require.NoError(t, store.Save(baseline))

	// Drift: node upgrade, script change, new env key, new folder.
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{
  "scripts": {"build": "webpack --mode production"},
  "dependencies": {"react": "^18.0.0"}
}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.local"), []byte("REDIS_URL=r\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "scripts"), 0o755))

	drifted := project.NewProjectCollectorWithRuntime(&project.StaticResolver{Value: "v20.1.0"})
	current, err := drifted.Collect(context.Background(), cfg)
	require.NoError(t, err)

	stored, err := store.Load()
	require.NoError(t, err)

	report := differ.New().Compare(stored, current)
	require.True(t, report.HasDrift())

	lines := output.RenderLines(report)
	assert.Equal(t, []string{
		"Drift detected:",
		"",
		"Node version: v18.15.0 → v20.1.0",
		"Env keys added: REDIS_URL",
		"Folders added: scripts",
		"Scripts changed: build",
	}, lines)
}

func TestPipeline_NoDriftRoundTrip(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"scripts": {"test": "jest"}}`), 0o644))

	collector := project.NewProjectCollectorWithRuntime(&project.StaticResolver{Value: "v18.15.0"})
	cfg := collectors.CollectorConfig{RootPath: root}

	store := storage.NewMemoryStore()

	baseline, err := collector.Collect(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, store.Save(baseline))

	current, err := collector.Collect(context.Background(), cfg)
	require.NoError(t, err)

	stored, err := store.Load()
	require.NoError(t, err)

	report := differ.New().Compare(stored, current)
	assert.False(t, report.HasDrift())
	assert.Equal(t, []string{"No drift detected."}, output.RenderLines(report))
}
