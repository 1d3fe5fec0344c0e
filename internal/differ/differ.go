// Package differ computes drift reports from pairs of snapshots. Comparison
// is pure and deterministic: the same two snapshots always produce the same
// report, element for element.
package differ

import (
	"sort"

	"github.com/envdrift/envdrift/pkg/types"
)

// Differ compares a baseline snapshot against a current snapshot.
type Differ struct{}

// New creates a new differ.
func New() *Differ {
	return &Differ{}
}

// Compare computes the drift between baseline and current. Both snapshots
// must be non-nil; resolving an absent baseline is the caller's job.
//
// Env keys and folders use symmetric set semantics: added is current minus
// baseline, removed is baseline minus current. Scripts do not — only scripts
// present in both snapshots with a different command are reported, in the
// baseline's declaration order. Added and removed scripts are ignored on
// purpose; do not fold scripts into the set-diff path. Dependencies and
// devDependencies are never compared.
func (d *Differ) Compare(baseline, current *types.Snapshot) *types.DriftReport {
	report := &types.DriftReport{}

	if baseline.NodeVersion != current.NodeVersion {
		report.NodeVersionChange = &types.VersionChange{
			From: baseline.NodeVersion,
			To:   current.NodeVersion,
		}
	}

	if diff := diffSets(baseline.EnvKeys, current.EnvKeys); !diff.Empty() {
		report.EnvDiff = diff
	}

	if diff := diffSets(baseline.Folders, current.Folders); !diff.Empty() {
		report.FolderDiff = diff
	}

	for _, name := range baseline.Scripts.Keys() {
		baseCmd, _ := baseline.Scripts.Get(name)
		if curCmd, ok := current.Scripts.Get(name); ok && curCmd != baseCmd {
			report.ChangedScripts = append(report.ChangedScripts, name)
		}
	}

	return report
}

// diffSets computes added (in current, not baseline) and removed (in
// baseline, not current), both sorted ascending.
func diffSets(baseline, current []string) *types.SetDiff {
	baseSet := toSet(baseline)
	curSet := toSet(current)

	diff := &types.SetDiff{Added: []string{}, Removed: []string{}}
	for item := range curSet {
		if _, ok := baseSet[item]; !ok {
			diff.Added = append(diff.Added, item)
		}
	}
	for item := range baseSet {
		if _, ok := curSet[item]; !ok {
			diff.Removed = append(diff.Removed, item)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	return diff
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
