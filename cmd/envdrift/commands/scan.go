package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/envdrift/envdrift/internal/collectors"
	enverrors "github.com/envdrift/envdrift/internal/errors"
	"github.com/envdrift/envdrift/internal/output"
	"github.com/envdrift/envdrift/pkg/types"
)

func newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan",
		Short:        "Snapshot the current project environment",
		SilenceUsage: true,
		Long: `Scan collects the current state of the project - runtime version, manifest
scripts and dependencies, env variable names, and top-level folders - and
prints it as a snapshot.

The scan is read-only. Env variable values are discarded during collection
and never appear in a snapshot.`,
		Example: `  # Snapshot the current directory
  envdrift scan

  # Snapshot another project as JSON
  envdrift scan --root ../service --output json

  # Snapshot and record it as the new baseline
  envdrift scan --save-baseline

  # Keep a copy of the snapshot
  envdrift scan --output-file snapshot.json`,
		RunE: runScan,
	}

	cmd.Flags().String("output-file", "", "save the snapshot to a file")
	cmd.Flags().Bool("save-baseline", false, "also record this snapshot as the baseline")
	cmd.Flags().BoolP("quiet", "q", false, "suppress snapshot output")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	outputFile, _ := cmd.Flags().GetString("output-file")
	saveBaseline, _ := cmd.Flags().GetBool("save-baseline")
	root := projectRoot(cmd)

	snapshot, err := collectSnapshot(cmd, root)
	if err != nil {
		return err
	}

	if !quiet {
		if err := printSnapshot(snapshot); err != nil {
			return err
		}
	}

	if outputFile != "" {
		formatter := output.NewJSONFormatter()
		data, err := formatter.FormatSnapshot(snapshot)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		if err := os.WriteFile(outputFile, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot file: %w", err)
		}
		if !quiet {
			fmt.Printf("\nSnapshot saved to: %s\n", outputFile)
		}
	}

	if saveBaseline {
		store := baselineStore(root)
		if err := store.Save(snapshot); err != nil {
			return enverrors.New(enverrors.ErrorTypeStorage, "Failed to save baseline").
				WithCause(err.Error()).
				WithSolutions("Check write permissions on the baseline directory").
				WithHelp("envdrift help baseline")
		}
		if !quiet {
			fmt.Printf("Baseline saved to: %s\n", store.Path())
		}
	}

	return nil
}

// collectSnapshot runs the project collector for root, translating collector
// failures into actionable errors.
func collectSnapshot(cmd *cobra.Command, root string) (*types.Snapshot, error) {
	registry := newCollectorRegistry()
	collector, err := registry.Get("project")
	if err != nil {
		return nil, err
	}

	cfg := collectors.CollectorConfig{RootPath: root}
	if err := collector.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid collector configuration: %w", err)
	}

	snapshot, err := collector.Collect(cmd.Context(), cfg)
	if err != nil {
		var parseErr *enverrors.ManifestParseError
		if errors.As(err, &parseErr) {
			return nil, enverrors.New(enverrors.ErrorTypeManifest, "Project manifest is not valid JSON").
				WithCause(parseErr.Error()).
				WithSolutions(
					"Fix the syntax error in package.json",
					"Validate it with: node -e \"require('./package.json')\"",
				).
				WithHelp("envdrift help scan")
		}
		return nil, fmt.Errorf("collection failed: %w", err)
	}

	return snapshot, nil
}

// printSnapshot writes a snapshot to stdout in the configured format.
func printSnapshot(snapshot *types.Snapshot) error {
	switch GetConfig().Output.Format {
	case "json":
		data, err := output.NewJSONFormatter().FormatSnapshot(snapshot)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := output.NewYAMLFormatter().FormatSnapshot(snapshot)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		printSnapshotText(snapshot)
	}
	return nil
}

func printSnapshotText(snapshot *types.Snapshot) {
	fmt.Println("Project snapshot:")
	fmt.Println()
	if snapshot.NodeVersion != "" {
		fmt.Printf("Node version: %s\n", snapshot.NodeVersion)
	} else {
		fmt.Println("Node version: (not detected)")
	}
	fmt.Printf("Scripts: %d\n", snapshot.Scripts.Len())
	for _, name := range snapshot.Scripts.Keys() {
		cmdLine, _ := snapshot.Scripts.Get(name)
		fmt.Printf("  %s: %s\n", name, cmdLine)
	}
	fmt.Printf("Dependencies: %d (not diffed)\n", len(snapshot.Dependencies))
	fmt.Printf("Dev dependencies: %d (not diffed)\n", len(snapshot.DevDependencies))
	fmt.Printf("Env keys: %d\n", len(snapshot.EnvKeys))
	for _, key := range snapshot.EnvKeys {
		fmt.Printf("  %s\n", key)
	}
	fmt.Printf("Folders: %d\n", len(snapshot.Folders))
	for _, folder := range snapshot.Folders {
		fmt.Printf("  %s/\n", folder)
	}
}
