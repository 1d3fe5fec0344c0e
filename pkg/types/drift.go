package types

// VersionChange records a runtime version transition between two snapshots.
type VersionChange struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// SetDiff records membership changes of a set-valued snapshot field. Both
// slices are sorted ascending for reproducible output.
type SetDiff struct {
	Added   []string `json:"added" yaml:"added"`
	Removed []string `json:"removed" yaml:"removed"`
}

// Empty reports whether the diff contains no changes on either side.
func (d *SetDiff) Empty() bool {
	return d == nil || (len(d.Added) == 0 && len(d.Removed) == 0)
}

// DriftReport describes the differences between a baseline snapshot and a
// current snapshot. Each field is nil when its category shows no drift; a
// report with every field nil means no drift at all.
//
// Dependencies and devDependencies are carried in snapshots but deliberately
// never diffed, so they have no field here.
type DriftReport struct {
	NodeVersionChange *VersionChange `json:"nodeVersionChange,omitempty" yaml:"nodeVersionChange,omitempty"`
	EnvDiff           *SetDiff       `json:"envDiff,omitempty" yaml:"envDiff,omitempty"`
	FolderDiff        *SetDiff       `json:"folderDiff,omitempty" yaml:"folderDiff,omitempty"`

	// ChangedScripts lists scripts whose command changed between baseline and
	// current, in the baseline manifest's declaration order. Scripts that were
	// added or removed outright are not listed: only value mutation counts.
	ChangedScripts []string `json:"changedScripts,omitempty" yaml:"changedScripts,omitempty"`
}

// HasDrift reports whether any category recorded a difference.
func (r *DriftReport) HasDrift() bool {
	return r.NodeVersionChange != nil ||
		!r.EnvDiff.Empty() ||
		!r.FolderDiff.Empty() ||
		len(r.ChangedScripts) > 0
}
