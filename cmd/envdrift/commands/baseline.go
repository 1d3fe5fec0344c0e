package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	enverrors "github.com/envdrift/envdrift/internal/errors"
)

func newBaselineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "baseline",
		Short:        "Manage the stored baseline snapshot",
		SilenceUsage: true,
		Long: `Manage the single baseline snapshot the project is compared against.

The baseline lives in the project at .envdrift.json by default; the location
can be changed through configuration (storage.baseline_path).`,
	}

	cmd.AddCommand(newBaselineCreateCommand())
	cmd.AddCommand(newBaselineShowCommand())
	cmd.AddCommand(newBaselineClearCommand())

	return cmd
}

func newBaselineCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "create",
		Short:        "Record the current environment as the baseline",
		SilenceUsage: true,
		Example: `  # Record the current directory's state
  envdrift baseline create

  # Record another project
  envdrift baseline create --root ../service`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := projectRoot(cmd)

			snapshot, err := collectSnapshot(cmd, root)
			if err != nil {
				return err
			}

			store := baselineStore(root)
			replaced := store.Exists()
			if err := store.Save(snapshot); err != nil {
				return enverrors.New(enverrors.ErrorTypeStorage, "Failed to save baseline").
					WithCause(err.Error()).
					WithSolutions("Check write permissions on the baseline directory").
					WithHelp("envdrift help baseline")
			}

			if replaced {
				fmt.Printf("Baseline replaced: %s\n", store.Path())
			} else {
				fmt.Printf("Baseline created: %s\n", store.Path())
			}
			return nil
		},
	}
}

func newBaselineShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "Display the stored baseline",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := baselineStore(projectRoot(cmd))

			baseline, err := store.Load()
			if err != nil {
				return describeAbsentBaseline(err)
			}

			info, err := store.Info()
			if err == nil {
				fmt.Printf("Baseline: %s (%s, updated %s)\n\n",
					info.Path,
					humanize.Bytes(uint64(info.Size)),
					humanize.Time(info.UpdatedAt))
			}

			return printSnapshot(baseline)
		},
	}
}

func newBaselineClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "clear",
		Short:        "Delete the stored baseline",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := baselineStore(projectRoot(cmd))

			if err := store.Clear(); err != nil {
				return describeAbsentBaseline(err)
			}

			fmt.Printf("Baseline removed: %s\n", store.Path())
			return nil
		},
	}
}

func describeAbsentBaseline(err error) error {
	var absent *enverrors.AbsentBaselineError
	if errors.As(err, &absent) {
		return enverrors.New(enverrors.ErrorTypeStorage, "No baseline stored").
			WithCause(absent.Error()).
			WithSolutions("Create one with: envdrift baseline create").
			WithHelp("envdrift help baseline")
	}
	return err
}
