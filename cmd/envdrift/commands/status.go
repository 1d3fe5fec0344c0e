package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show what envdrift sees in this project",
		SilenceUsage: true,
		Long: `Status reports the project root, whether a manifest is present, and the
state of the stored baseline. It does not compare anything; use 'check' for
drift detection.`,
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	root := projectRoot(cmd)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	fmt.Printf("Project root: %s\n", absRoot)

	if _, err := os.Stat(filepath.Join(root, "package.json")); err == nil {
		fmt.Println("Manifest: package.json found")
	} else {
		fmt.Println("Manifest: not found (scripts and dependencies default to empty)")
	}

	registry := newCollectorRegistry()
	for _, name := range registry.List() {
		collector, err := registry.Get(name)
		if err != nil {
			continue
		}
		fmt.Printf("Collector %s: %s\n", collector.Name(), collector.Status())
	}

	store := baselineStore(root)
	info, err := store.Info()
	if err != nil {
		fmt.Printf("Baseline: none (expected at %s)\n", store.Path())
		fmt.Println("\nRun 'envdrift baseline create' to record one.")
		return nil
	}

	fmt.Printf("Baseline: %s (%s, updated %s)\n",
		info.Path,
		humanize.Bytes(uint64(info.Size)),
		humanize.Time(info.UpdatedAt))
	fmt.Println("\nRun 'envdrift check' to compare against it.")
	return nil
}
