package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete envdrift configuration. It deliberately
// does not cover which files are snapshotted: the manifest name, env file
// list, and folder scan are fixed by the tool.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig contains baseline storage configuration
type StorageConfig struct {
	// BaselinePath is the baseline file location, relative to the project
	// root unless absolute. Empty means the default project-local path.
	BaselinePath string `mapstructure:"baseline_path"`
}

// OutputConfig contains output formatting configuration
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			BaselinePath: "",
		},
		Output: OutputConfig{
			Format:  "text",
			NoColor: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the config file and ENVDRIFT_* environment
// variables, falling back to defaults when no file exists.
func Load() (*Config, error) {
	config := DefaultConfig()

	viper.SetConfigName(".envdrift")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".envdrift"))
	}

	viper.SetEnvPrefix("ENVDRIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults apply.
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml", "markdown":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}
	return nil
}

// BaselinePath resolves the baseline location for a project root.
func (c *Config) BaselinePath(root string) string {
	path := c.Storage.BaselinePath
	if path == "" {
		path = ".envdrift.json"
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
