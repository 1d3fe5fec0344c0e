package storage

import (
	"time"

	"github.com/envdrift/envdrift/pkg/types"
)

// BaselineStore owns the single persisted baseline snapshot. The comparator
// and reporter never touch storage; they receive fully loaded values.
type BaselineStore interface {
	// Load returns the stored baseline, or *errors.AbsentBaselineError when
	// none exists.
	Load() (*types.Snapshot, error)

	// Save persists the snapshot as the baseline, replacing any previous one.
	Save(snapshot *types.Snapshot) error

	// Clear removes the baseline. Clearing an absent baseline returns
	// *errors.AbsentBaselineError.
	Clear() error

	// Exists reports whether a baseline is currently stored.
	Exists() bool

	// Info returns metadata about the stored baseline.
	Info() (BaselineInfo, error)
}

// BaselineInfo describes a stored baseline without loading it fully.
type BaselineInfo struct {
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}
