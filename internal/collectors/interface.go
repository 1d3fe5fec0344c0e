package collectors

import (
	"context"

	"github.com/envdrift/envdrift/pkg/types"
)

// CollectorConfig holds configuration for a collector
type CollectorConfig struct {
	// RootPath is the project root to snapshot. Defaults to the current
	// working directory when empty.
	RootPath string `json:"root_path,omitempty"`

	// Collector-specific configuration
	Config map[string]interface{} `json:"config,omitempty"`
}

// Collector defines the interface for environment collectors
type Collector interface {
	Name() string
	Status() string

	Collect(ctx context.Context, config CollectorConfig) (*types.Snapshot, error)
	Validate(config CollectorConfig) error
}

// CollectorInfo provides metadata about a collector
type CollectorInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
