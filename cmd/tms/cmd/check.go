package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tms/pkg/trm"
)

var (
	checkFile   string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a machine model",
	Long: `Check decodes and validates a machine model without running it. A
valid model reports its state and transition counts; an invalid one reports
the first validation error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		format, err := resolveFormat(checkFormat, checkFile, cfg.Machine.DefaultFormat)
		if err != nil {
			return err
		}

		text, err := os.ReadFile(checkFile)
		if err != nil {
			return fmt.Errorf("failed to read model file: %w", err)
		}

		machine, err := trm.New(string(text), format)
		if err != nil {
			var se *trm.SyntaxError
			if errors.As(err, &se) {
				return fmt.Errorf("model %s is invalid (%s): %s", checkFile, se.Kind, se.Message)
			}
			return fmt.Errorf("model %s is invalid: %w", checkFile, err)
		}

		model := machine.Model()
		transitions := 0
		for _, s := range model.State {
			transitions += len(s.Trans)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Model:       %s\n", checkFile)
		fmt.Fprintf(out, "Format:      %s\n", format)
		fmt.Fprintf(out, "States:      %d\n", len(model.State))
		fmt.Fprintf(out, "Transitions: %d\n", transitions)
		fmt.Fprintf(out, "Tapes:       %d\n", machine.TapeCount())
		fmt.Fprintln(out, "Model is valid.")
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "machine model file")
	checkCmd.Flags().StringVar(&checkFormat, "format", "", "model format (json|toml|yaml), default from file extension")
	checkCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(checkCmd)
}
