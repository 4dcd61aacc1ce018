package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/tms/internal/history"
	"github.com/msto63/tms/internal/runner"
	"github.com/msto63/tms/internal/watch"
	"github.com/msto63/tms/pkg/core/logging"
	"github.com/msto63/tms/pkg/trm"
)

var (
	runFile      string
	runFormat    string
	runInput     string
	runMaxSteps  int
	runWatch     bool
	runNoHistory bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a machine on an input string",
	Long: `Run loads a machine model, feeds it the input string and executes it
until it halts. Without --input the input is read from stdin. With --watch the
machine is re-run every time the model file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg, "tms")

		format, err := resolveFormat(runFormat, runFile, cfg.Machine.DefaultFormat)
		if err != nil {
			return err
		}

		input := runInput
		if !cmd.Flags().Changed("input") {
			input, err = readInputLine()
			if err != nil {
				return err
			}
		}

		maxSteps := runMaxSteps
		if !cmd.Flags().Changed("max-steps") {
			maxSteps = cfg.Machine.MaxSteps
		}

		var journal *history.Store
		if cfg.History.Enabled && !runNoHistory {
			journal, err = history.Open(cfg.History.Path)
			if err != nil {
				// The journal is an observation log; a broken one must not
				// block the run.
				logger.Warn("run journal unavailable", "path", cfg.History.Path, "error", err)
				journal = nil
			} else {
				defer journal.Close()
			}
		}

		doRun := func() error {
			return runModelFile(cmd, logger, journal, runFile, format, input, maxSteps)
		}

		if !runWatch {
			return doRun()
		}

		if err := doRun(); err != nil {
			// In watch mode a failing run is reported, not fatal: the next
			// file change may fix it.
			logger.Error("run failed", "error", err)
		}
		return watchAndRerun(logger, runFile, doRun)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "machine model file")
	runCmd.Flags().StringVar(&runFormat, "format", "", "model format (json|toml|yaml), default from file extension")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input string (default: read one line from stdin)")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", 0, "abort after N steps (0 = unbounded)")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "re-run whenever the model file changes")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "do not record this run in the journal")
	runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(runCmd)
}

// runModelFile loads, runs and reports a single execution.
func runModelFile(cmd *cobra.Command, logger *logging.Logger, journal *history.Store,
	file, format, input string, maxSteps int) error {

	text, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read model file: %w", err)
	}
	machine, err := trm.New(string(text), format)
	if err != nil {
		return fmt.Errorf("invalid model %s: %w", file, err)
	}

	r := runner.New(machine, logger)
	r.MaxSteps = maxSteps
	r.Trace = verbose

	result, err := r.Run(input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		for i, id := range result.Trace {
			fmt.Fprintf(out, "--- step %d ---\n", i+1)
			fmt.Fprint(out, runner.Format(id))
		}
	}
	fmt.Fprint(out, runner.Format(result.Final))
	verdict := "rejected"
	if result.Accepted {
		verdict = "accepted"
	}
	fmt.Fprintf(out, "Result: %s after %d steps (%s)\n", verdict, result.Steps, result.Duration)

	if journal != nil {
		entry := &history.Entry{
			RunID:      result.RunID,
			ModelPath:  file,
			Format:     format,
			Input:      input,
			FinalState: result.Final.CurrentState,
			Accepted:   result.Accepted,
			Steps:      result.Steps,
			Duration:   result.Duration,
		}
		if len(result.Final.Tape) > 0 {
			entry.Tape = result.Final.Tape[0].Tape
		}
		if err := journal.Record(cmd.Context(), entry); err != nil {
			logger.Warn("failed to record run", "run_id", result.RunID, "error", err)
		}
	}

	if !result.Accepted {
		return fmt.Errorf("input rejected in state %q", result.Final.CurrentState)
	}
	return nil
}

// watchAndRerun blocks, re-running the model on every file change, until
// interrupted.
func watchAndRerun(logger *logging.Logger, file string, doRun func() error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watch.New(file, logger, func() {
		if err := doRun(); err != nil {
			logger.Error("run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		w.Stop()
	}()

	return w.Start(ctx)
}

// resolveFormat picks the model format: explicit flag, then file extension,
// then the configured default.
func resolveFormat(flag, file, fallback string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if ext := trm.FormatFromPath(file); ext != "" {
		return ext, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("cannot determine model format for %s, use --format", file)
}

// readInputLine reads one input line from stdin.
func readInputLine() (string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", nil
	}
	return strings.TrimRight(scanner.Text(), "\r\n"), nil
}
