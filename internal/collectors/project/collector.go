// Package project implements the collector that snapshots a local project:
// runtime version, manifest scripts and dependencies, env variable names,
// and top-level folders. All reads are local and the collector never writes.
package project

import (
	"context"

	"github.com/envdrift/envdrift/internal/collectors"
	"github.com/envdrift/envdrift/internal/logger"
	"github.com/envdrift/envdrift/pkg/types"
)

// ProjectCollector builds snapshots of the working project.
type ProjectCollector struct {
	runtime VersionResolver
	log     logger.Logger
}

var _ collectors.Collector = (*ProjectCollector)(nil)

// NewProjectCollector creates a collector with the default node runtime
// resolver.
func NewProjectCollector() *ProjectCollector {
	return &ProjectCollector{
		runtime: NewNodeResolver(),
		log:     logger.NewLogrus(),
	}
}

// NewProjectCollectorWithRuntime creates a collector with a custom runtime
// version resolver. Used by tests to avoid depending on an installed node.
func NewProjectCollectorWithRuntime(resolver VersionResolver) *ProjectCollector {
	return &ProjectCollector{
		runtime: resolver,
		log:     logger.NewLogrus(),
	}
}

// Name returns the collector name
func (c *ProjectCollector) Name() string {
	return "project"
}

// Status returns the collector readiness
func (c *ProjectCollector) Status() string {
	return "ready"
}

// Validate checks the collector configuration
func (c *ProjectCollector) Validate(config collectors.CollectorConfig) error {
	// Every value is optional; an empty config snapshots the working
	// directory.
	return nil
}

// Collect builds a snapshot of the project at config.RootPath. Missing
// optional inputs (manifest, env files) degrade to empty values; the only
// fatal condition is a manifest that exists but cannot be parsed.
func (c *ProjectCollector) Collect(ctx context.Context, config collectors.CollectorConfig) (*types.Snapshot, error) {
	root := config.RootPath
	if root == "" {
		root = "."
	}

	snapshot := types.NewSnapshot()
	snapshot.NodeVersion = c.runtime.Version(ctx)

	manifest, err := readManifest(root)
	if err != nil {
		return nil, err
	}
	snapshot.Scripts = manifest.Scripts
	snapshot.Dependencies = manifest.Dependencies
	snapshot.DevDependencies = manifest.DevDependencies

	snapshot.EnvKeys = collectEnvKeys(root, c.log)

	folders, err := listFolders(root)
	if err != nil {
		return nil, err
	}
	snapshot.Folders = folders

	snapshot.Normalize()

	c.log.WithFields(map[string]interface{}{
		"root":     root,
		"scripts":  snapshot.Scripts.Len(),
		"env_keys": len(snapshot.EnvKeys),
		"folders":  len(snapshot.Folders),
	}).Debug("collected project snapshot")

	return snapshot, nil
}
