package types

import (
	"sort"
)

// Snapshot represents a point-in-time capture of a project's environment:
// runtime version, manifest scripts and dependencies, environment variable
// names, and top-level folders. A Snapshot is built fresh on every collection
// and never mutated afterwards.
type Snapshot struct {
	NodeVersion     string            `json:"nodeVersion" yaml:"nodeVersion"`
	Scripts         ScriptMap         `json:"scripts" yaml:"scripts"`
	Dependencies    map[string]string `json:"dependencies" yaml:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies" yaml:"devDependencies"`

	// EnvKeys holds variable names only. Values are discarded at collection
	// time and must never appear in a snapshot.
	EnvKeys []string `json:"envKeys" yaml:"envKeys"`

	// Folders holds the names of the immediate child directories of the
	// project root. Non-recursive.
	Folders []string `json:"folders" yaml:"folders"`
}

// NewSnapshot returns a snapshot with all collections initialized, ready for
// population by a collector.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Scripts:         NewScriptMap(),
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
		EnvKeys:         []string{},
		Folders:         []string{},
	}
}

// Normalize sorts and deduplicates the set-valued fields so serialization is
// reproducible. Comparison itself is order-independent.
func (s *Snapshot) Normalize() {
	s.EnvKeys = dedupeSorted(s.EnvKeys)
	s.Folders = dedupeSorted(s.Folders)
}

// HasEnvKey reports whether the snapshot contains the given variable name.
// Keys are case-sensitive.
func (s *Snapshot) HasEnvKey(key string) bool {
	for _, k := range s.EnvKeys {
		if k == key {
			return true
		}
	}
	return false
}

// HasFolder reports whether the snapshot contains the given directory name.
func (s *Snapshot) HasFolder(name string) bool {
	for _, f := range s.Folders {
		if f == name {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	clone := &Snapshot{
		NodeVersion:     s.NodeVersion,
		Scripts:         s.Scripts.Clone(),
		Dependencies:    make(map[string]string, len(s.Dependencies)),
		DevDependencies: make(map[string]string, len(s.DevDependencies)),
		EnvKeys:         append([]string{}, s.EnvKeys...),
		Folders:         append([]string{}, s.Folders...),
	}
	for k, v := range s.Dependencies {
		clone.Dependencies[k] = v
	}
	for k, v := range s.DevDependencies {
		clone.DevDependencies[k] = v
	}
	return clone
}

func dedupeSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
