package output

import (
	"fmt"
	"strings"

	"github.com/envdrift/envdrift/pkg/types"
)

// MarkdownFormatter renders reports for pasting into issues and PRs.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// FormatDriftReport formats a drift report as a markdown document. The
// category order matches the text renderer.
func (m *MarkdownFormatter) FormatDriftReport(report *types.DriftReport) ([]byte, error) {
	var out strings.Builder

	if !report.HasDrift() {
		out.WriteString("# Environment Drift\n\nNo drift detected.\n")
		return []byte(out.String()), nil
	}

	out.WriteString("# Environment Drift\n\n")

	if vc := report.NodeVersionChange; vc != nil {
		out.WriteString("## Node Version\n\n")
		out.WriteString(fmt.Sprintf("- `%s` → `%s`\n\n", vc.From, vc.To))
	}

	m.writeSetDiff(&out, "Env Keys", report.EnvDiff)
	m.writeSetDiff(&out, "Folders", report.FolderDiff)

	if len(report.ChangedScripts) > 0 {
		out.WriteString("## Changed Scripts\n\n")
		for _, name := range report.ChangedScripts {
			out.WriteString(fmt.Sprintf("- `%s`\n", name))
		}
		out.WriteString("\n")
	}

	return []byte(out.String()), nil
}

func (m *MarkdownFormatter) writeSetDiff(out *strings.Builder, title string, diff *types.SetDiff) {
	if diff.Empty() {
		return
	}

	out.WriteString(fmt.Sprintf("## %s\n\n", title))
	for _, item := range diff.Added {
		out.WriteString(fmt.Sprintf("- added: `%s`\n", item))
	}
	for _, item := range diff.Removed {
		out.WriteString(fmt.Sprintf("- removed: `%s`\n", item))
	}
	out.WriteString("\n")
}
