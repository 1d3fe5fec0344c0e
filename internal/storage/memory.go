package storage

import (
	"time"

	enverrors "github.com/envdrift/envdrift/internal/errors"
	"github.com/envdrift/envdrift/pkg/types"
)

// MemoryStore implements BaselineStore in memory. It exists so the pipeline
// can be exercised without touching the filesystem.
type MemoryStore struct {
	baseline  *types.Snapshot
	updatedAt time.Time
}

var _ BaselineStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*types.Snapshot, error) {
	if s.baseline == nil {
		return nil, &enverrors.AbsentBaselineError{Path: "(memory)"}
	}
	return s.baseline.Clone(), nil
}

func (s *MemoryStore) Save(snapshot *types.Snapshot) error {
	s.baseline = snapshot.Clone()
	s.updatedAt = time.Now()
	return nil
}

func (s *MemoryStore) Clear() error {
	if s.baseline == nil {
		return &enverrors.AbsentBaselineError{Path: "(memory)"}
	}
	s.baseline = nil
	return nil
}

func (s *MemoryStore) Exists() bool {
	return s.baseline != nil
}

func (s *MemoryStore) Info() (BaselineInfo, error) {
	if s.baseline == nil {
		return BaselineInfo{}, &enverrors.AbsentBaselineError{Path: "(memory)"}
	}
	return BaselineInfo{Path: "(memory)", UpdatedAt: s.updatedAt}, nil
}
