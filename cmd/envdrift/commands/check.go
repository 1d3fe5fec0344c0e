package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/envdrift/envdrift/internal/differ"
	enverrors "github.com/envdrift/envdrift/internal/errors"
	"github.com/envdrift/envdrift/internal/output"
	"github.com/envdrift/envdrift/pkg/types"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Compare the current environment against the baseline",
		SilenceUsage: true,
		Long: `Check collects the current project state and compares it against the stored
baseline, reporting drift in runtime version, env variable names, folders,
and changed script commands.

Script comparison tracks value changes only: scripts added or removed since
the baseline are not reported. Dependencies are recorded in snapshots but
never compared.

Exit codes: 0 = no drift, 1 = drift detected, 2 = failure.`,
		Example: `  # Check the current directory
  envdrift check

  # Machine-readable report
  envdrift check --output json

  # Use in scripts
  envdrift check --quiet || echo "drift!"`,
		RunE: runCheck,
	}

	cmd.Flags().BoolP("quiet", "q", false, "suppress output, exit status only")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	root := projectRoot(cmd)

	store := baselineStore(root)
	baseline, err := store.Load()
	if err != nil {
		var absent *enverrors.AbsentBaselineError
		if errors.As(err, &absent) {
			return enverrors.New(enverrors.ErrorTypeStorage, "No baseline to compare against").
				WithCause(absent.Error()).
				WithSolutions(
					"Create one with: envdrift baseline create",
					"Or snapshot and record in one step: envdrift scan --save-baseline",
				).
				WithHelp("envdrift help baseline")
		}
		return err
	}

	current, err := collectSnapshot(cmd, root)
	if err != nil {
		return err
	}

	report := differ.New().Compare(baseline, current)

	if !quiet {
		if err := printReport(report); err != nil {
			return err
		}
	}

	if report.HasDrift() {
		os.Exit(1)
	}
	return nil
}

// printReport writes a drift report to stdout in the configured format.
func printReport(report *types.DriftReport) error {
	outputCfg := GetConfig().Output

	switch outputCfg.Format {
	case "json":
		data, err := output.NewJSONFormatter().FormatDriftReport(report)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := output.NewYAMLFormatter().FormatDriftReport(report)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "markdown":
		data, err := output.NewMarkdownFormatter().FormatDriftReport(report)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		renderer := output.NewRenderer(os.Stdout, !output.ColorEnabled(outputCfg.NoColor))
		return renderer.Render(report)
	}
	return nil
}
