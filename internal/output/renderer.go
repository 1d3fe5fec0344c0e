// Package output renders drift reports and snapshots for display. Rendering
// is a pure projection of the report: no decisions, no filesystem access.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/envdrift/envdrift/pkg/types"
)

const listSeparator = ", "

// RenderLines projects a drift report onto an ordered sequence of display
// lines. Every call regenerates the sequence from scratch.
//
// An empty report renders as a single confirmation line. Otherwise the
// header and a blank line are followed by one line per present category, in
// fixed order: node version, env keys (added then removed), folders (added
// then removed), changed scripts. Dependencies are never rendered.
func RenderLines(report *types.DriftReport) []string {
	if !report.HasDrift() {
		return []string{"No drift detected."}
	}

	lines := []string{"Drift detected:", ""}

	if vc := report.NodeVersionChange; vc != nil {
		lines = append(lines, fmt.Sprintf("Node version: %s → %s", vc.From, vc.To))
	}

	lines = append(lines, setDiffLines("Env keys", report.EnvDiff)...)
	lines = append(lines, setDiffLines("Folders", report.FolderDiff)...)

	if len(report.ChangedScripts) > 0 {
		lines = append(lines, fmt.Sprintf("Scripts changed: %s", strings.Join(report.ChangedScripts, listSeparator)))
	}

	return lines
}

func setDiffLines(label string, diff *types.SetDiff) []string {
	if diff.Empty() {
		return nil
	}

	var lines []string
	if len(diff.Added) > 0 {
		lines = append(lines, fmt.Sprintf("%s added: %s", label, strings.Join(diff.Added, listSeparator)))
	}
	if len(diff.Removed) > 0 {
		lines = append(lines, fmt.Sprintf("%s removed: %s", label, strings.Join(diff.Removed, listSeparator)))
	}
	return lines
}

// Renderer writes drift report lines to a writer, optionally colorized.
type Renderer struct {
	w       io.Writer
	noColor bool
}

// NewRenderer creates a renderer for w. Color is applied only when enabled
// here and the fatih/color global state allows it.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return &Renderer{w: w, noColor: noColor}
}

// Render writes the report's display lines to the underlying writer.
func (r *Renderer) Render(report *types.DriftReport) error {
	lines := RenderLines(report)

	for _, line := range lines {
		if err := r.writeLine(line, report.HasDrift()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeLine(line string, drift bool) error {
	text := line
	if !r.noColor {
		switch {
		case line == "No drift detected.":
			text = color.GreenString(line)
		case line == "Drift detected:":
			text = color.New(color.FgYellow, color.Bold).Sprint(line)
		case strings.Contains(line, " added: "):
			text = color.GreenString(line)
		case strings.Contains(line, " removed: "):
			text = color.RedString(line)
		case drift && line != "":
			text = color.YellowString(line)
		}
	}
	_, err := fmt.Fprintln(r.w, text)
	return err
}
