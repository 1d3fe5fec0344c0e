package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	enverrors "github.com/envdrift/envdrift/internal/errors"
	"github.com/envdrift/envdrift/pkg/types"
)

// DefaultBaselineFile is the baseline location relative to the project root.
// It is a plain file, not a directory: snapshots track top-level folders, so
// a directory created by the store itself would read as drift on the very
// next check.
const DefaultBaselineFile = ".envdrift.json"

// FileStore implements BaselineStore on the local filesystem. The path is
// explicit configuration, never process-global state.
type FileStore struct {
	path string
}

var _ BaselineStore = (*FileStore)(nil)

// NewFileStore creates a store for the baseline at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewProjectStore creates a store at the default location under root.
func NewProjectStore(root string) *FileStore {
	return &FileStore{path: filepath.Join(root, DefaultBaselineFile)}
}

// Path returns the baseline file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the baseline.
func (s *FileStore) Load() (*types.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, &enverrors.AbsentBaselineError{Path: s.path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	var snapshot types.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode baseline %s: %w", s.path, err)
	}

	return &snapshot, nil
}

// Save writes the snapshot as pretty-printed JSON, creating the parent
// directory if needed.
func (s *FileStore) Save(snapshot *types.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create baseline directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode baseline: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write baseline: %w", err)
	}
	return nil
}

// Clear removes the baseline file.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return &enverrors.AbsentBaselineError{Path: s.path}
	}
	if err != nil {
		return fmt.Errorf("failed to remove baseline: %w", err)
	}
	return nil
}

// Exists reports whether the baseline file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Info returns file metadata for the stored baseline.
func (s *FileStore) Info() (BaselineInfo, error) {
	stat, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return BaselineInfo{}, &enverrors.AbsentBaselineError{Path: s.path}
	}
	if err != nil {
		return BaselineInfo{}, fmt.Errorf("failed to stat baseline: %w", err)
	}

	return BaselineInfo{
		Path:      s.path,
		Size:      stat.Size(),
		UpdatedAt: stat.ModTime(),
	}, nil
}
