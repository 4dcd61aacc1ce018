package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tms/pkg/trm"
)

var (
	convertFile string
	convertOut  string
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a model between formats",
	Long: `Convert decodes a machine model, validates it and writes it back in
another format. Source and target formats default to the file extensions.
The output uses canonical field names regardless of the aliases used in the
source document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		from, err := resolveFormat(convertFrom, convertFile, cfg.Machine.DefaultFormat)
		if err != nil {
			return err
		}
		to, err := resolveFormat(convertTo, convertOut, "")
		if err != nil {
			return err
		}

		text, err := os.ReadFile(convertFile)
		if err != nil {
			return fmt.Errorf("failed to read model file: %w", err)
		}

		// Round-tripping through the machine validates the model and strips
		// alias field names.
		machine, err := trm.New(string(text), from)
		if err != nil {
			return fmt.Errorf("invalid model %s: %w", convertFile, err)
		}
		encoded, err := trm.EncodeModel(machine.Model(), to)
		if err != nil {
			return err
		}

		if err := os.WriteFile(convertOut, []byte(encoded), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", convertOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Converted %s (%s) to %s (%s)\n", convertFile, from, convertOut, to)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "source model file")
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "target model file")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source format (json|toml|yaml), default from file extension")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target format (json|toml|yaml), default from file extension")
	convertCmd.MarkFlagRequired("file")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}
