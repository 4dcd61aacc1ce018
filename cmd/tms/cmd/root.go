package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tms/pkg/core/config"
	"github.com/msto63/tms/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tms",
	Short: "tms - Multi-tape Turing machine simulator",
	Long: `tms simulates abstract multi-tape Turing machines described by
declarative models in JSON, TOML or YAML.

Commands:
  run      - Run a machine on an input string
  check    - Validate a machine model
  convert  - Convert a model between formats
  history  - Inspect the run journal`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig resolves the application configuration for a command.
func loadConfig() (config.Config, error) {
	return config.Resolve(cfgFile)
}

// newLogger builds the command logger from the configuration; --verbose
// lowers the level to debug.
func newLogger(cfg config.Config, name string) *logging.Logger {
	level := logging.ParseLevel(cfg.General.LogLevel)
	if verbose {
		level = logging.LevelDebug
	}
	return logging.NewWithConfig(logging.Config{
		Name:   name,
		Level:  level,
		Format: logging.ParseFormat(cfg.General.LogFormat),
	})
}
