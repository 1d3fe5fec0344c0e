package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/envdrift/envdrift/internal/collectors"
	"github.com/envdrift/envdrift/internal/collectors/project"
	"github.com/envdrift/envdrift/internal/storage"
	"github.com/envdrift/envdrift/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "envdrift",
	Short: "Detect environment drift in your project",
	Long: `envdrift detects environmental drift in a software project: differences
between a recorded baseline and the current runtime version, env variable
names, manifest scripts, and top-level folder layout.

Everything runs locally and on demand. Nothing watches in the background,
nothing is fixed automatically, and env variable values are never stored.

TYPICAL FLOW:
  envdrift baseline create   # record the known-good state
  envdrift check             # compare current state against it

Exit codes for 'check': 0 = no drift, 1 = drift detected, 2 = failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Hard failures exit 2; the check command exits 1 itself when
// drift is detected.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .envdrift.yaml)")
	rootCmd.PersistentFlags().String("root", ".", "project root to snapshot")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json, yaml, markdown)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("output.no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newBaselineCommand())
	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// newCollectorRegistry builds the registry with every available collector.
// Only the project collector exists today, but commands resolve collectors
// through the registry rather than constructing them directly.
func newCollectorRegistry() *collectors.CollectorRegistry {
	registry := collectors.NewRegistry()
	registry.Register(project.NewProjectCollector())
	return registry
}

// baselineStore resolves the baseline store for the given project root.
func baselineStore(root string) *storage.FileStore {
	return storage.NewFileStore(GetConfig().BaselinePath(root))
}

func projectRoot(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = "."
	}
	return root
}
